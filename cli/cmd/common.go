package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agoralabs-sh/vip030026-go/cli/cmd/common"
	"github.com/agoralabs-sh/vip030026-go/credential"
)

func printCredential(cmd *cobra.Command, c credential.Credential, format string) error {
	out, err := common.FormatCredential(c, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(out), "\n"))
	return nil
}

// resetCredential scrubs the key of private credentials.
func resetCredential(c credential.Credential) {
	if pc, ok := c.(*credential.PrivateKeyCredential); ok {
		pc.Reset()
	}
}
