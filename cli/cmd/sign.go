package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agoralabs-sh/vip030026-go/cli/cmd/common"
	"github.com/agoralabs-sh/vip030026-go/cli/config"
)

var signCmd = &cobra.Command{
	Use:   "sign <credential>",
	Short: "Sign a message with a private key credential",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Global()

		c, err := common.LoadPrivateCredential(args[0])
		if err != nil {
			return err
		}
		defer c.Reset()

		message, err := common.GetMessage()
		if err != nil {
			return err
		}

		sig, err := c.Sign(message)
		if err != nil {
			return err
		}

		encoded, err := common.EncodeSignature(sig, common.GetSignatureEncoding(cfg))
		if err != nil {
			return err
		}

		logger.With("id", c.ID()).Info("signed message",
			"message_size", len(message),
		)

		fmt.Fprintln(cmd.OutOrStdout(), encoded)
		return nil
	},
}

func init() {
	signCmd.Flags().AddFlagSet(common.MessageFlags)
	signCmd.Flags().AddFlagSet(common.SignatureEncodingFlag)
}
