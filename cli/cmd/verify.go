package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agoralabs-sh/vip030026-go/cli/cmd/common"
	"github.com/agoralabs-sh/vip030026-go/cli/config"
)

var (
	verifySignature string

	// exit terminates the process when verification fails.
	exit = os.Exit

	verifyCmd = &cobra.Command{
		Use:   "verify <credential>",
		Short: "Verify a message signature against a credential",
		Long:  "Verify a message signature against a credential. Exits with status 1 when the signature is invalid.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.Global()

			pc, err := common.LoadPublicCredential(args[0], common.IsPrivate())
			cobra.CheckErr(err)

			message, err := common.GetMessage()
			cobra.CheckErr(err)

			sig, err := common.DecodeSignature(verifySignature, common.GetSignatureEncoding(cfg))
			cobra.CheckErr(err)

			ok, err := pc.Verify(message, sig)
			cobra.CheckErr(err)

			log := logger.With("id", pc.ID())
			if !ok {
				log.Warn("signature verification failed",
					"message_size", len(message),
				)
				fmt.Fprintln(cmd.OutOrStdout(), "invalid")
				exit(1)
				return
			}
			log.Info("verified signature")
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
		},
	}
)

func init() {
	verifyCmd.Flags().StringVarP(&verifySignature, "signature", "s", "", "signature to verify")
	_ = verifyCmd.MarkFlagRequired("signature")
	verifyCmd.Flags().AddFlagSet(common.PrivateFlag)
	verifyCmd.Flags().AddFlagSet(common.MessageFlags)
	verifyCmd.Flags().AddFlagSet(common.SignatureEncodingFlag)
}
