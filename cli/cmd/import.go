package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agoralabs-sh/vip030026-go/cli/cmd/common"
	"github.com/agoralabs-sh/vip030026-go/cli/config"
	"github.com/agoralabs-sh/vip030026-go/credential"
)

var (
	importAlgorithm   string
	importID          string
	importKeyEncoding string

	importCmd = &cobra.Command{
		Use:   "import <private-key>",
		Short: "Wrap an existing raw private key into a private key credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Global()

			name := importAlgorithm
			if name == "" {
				name = cfg.Defaults.Algorithm
			}
			algorithm, err := credential.ParseAlgorithmID(name)
			if err != nil {
				return err
			}

			c, err := common.ImportPrivateKey(algorithm, importID, args[0], importKeyEncoding)
			if err != nil {
				return err
			}
			defer c.Reset()

			logger.With("id", c.ID()).Info("imported private key",
				"algorithm", algorithm,
			)

			return printCredential(cmd, c, common.GetOutput(cfg))
		},
	}
)

func init() {
	importCmd.Flags().StringVarP(&importAlgorithm, "algorithm", "a", "", "credential algorithm [Ed25519,ES256K]")
	importCmd.Flags().StringVar(&importID, "id", "", "credential identifier (UUID), random if not given")
	importCmd.Flags().StringVar(&importKeyEncoding, "key-encoding", common.KeyEncodingHex, "private key encoding [hex,base64]")
	importCmd.Flags().AddFlagSet(common.OutputFlag)
}
