// Command vip030026 manages VIP-03-0026 credentials.
package main

import (
	"os"

	"github.com/agoralabs-sh/vip030026-go/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
