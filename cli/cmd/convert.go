package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agoralabs-sh/vip030026-go/cli/cmd/common"
	"github.com/agoralabs-sh/vip030026-go/cli/config"
)

var convertCmd = &cobra.Command{
	Use:   "convert <credential>",
	Short: "Convert a credential between its record, string and hex forms",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Global()

		c, err := common.LoadCredential(args[0], common.IsPrivate())
		if err != nil {
			return err
		}
		defer resetCredential(c)

		return printCredential(cmd, c, common.GetOutput(cfg))
	},
}

func init() {
	convertCmd.Flags().AddFlagSet(common.PrivateFlag)
	convertCmd.Flags().AddFlagSet(common.OutputFlag)
}
