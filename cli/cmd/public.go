package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agoralabs-sh/vip030026-go/cli/cmd/common"
	"github.com/agoralabs-sh/vip030026-go/cli/config"
)

var publicCmd = &cobra.Command{
	Use:   "public <credential>",
	Short: "Derive the public key credential of a private key credential",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Global()

		pc, err := common.LoadPublicCredential(args[0], true)
		cobra.CheckErr(err)

		logger.With("id", pc.ID()).Info("derived public credential")

		cobra.CheckErr(printCredential(cmd, pc, common.GetOutput(cfg)))
	},
}

func init() {
	publicCmd.Flags().AddFlagSet(common.OutputFlag)
}
