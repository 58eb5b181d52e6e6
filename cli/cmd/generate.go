package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agoralabs-sh/vip030026-go/cli/cmd/common"
	"github.com/agoralabs-sh/vip030026-go/cli/config"
	"github.com/agoralabs-sh/vip030026-go/credential"
)

var (
	generateAlgorithm string
	generateID        string

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a new private key credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Global()

			name := generateAlgorithm
			if name == "" {
				name = cfg.Defaults.Algorithm
			}
			algorithm, err := credential.ParseAlgorithmID(name)
			if err != nil {
				return err
			}

			opts := []credential.GenerateOption{credential.WithAlgorithm(algorithm)}
			if generateID != "" {
				opts = append(opts, credential.WithID(generateID))
			}
			c, err := credential.Generate(opts...)
			if err != nil {
				return err
			}
			defer c.Reset()

			logger.With("id", c.ID()).Info("generated credential",
				"algorithm", algorithm,
			)

			return printCredential(cmd, c, common.GetOutput(cfg))
		},
	}
)

func init() {
	generateCmd.Flags().StringVarP(&generateAlgorithm, "algorithm", "a", "", "credential algorithm [Ed25519,ES256K]")
	generateCmd.Flags().StringVar(&generateID, "id", "", "credential identifier (UUID), random if not given")
	generateCmd.Flags().AddFlagSet(common.OutputFlag)
}
