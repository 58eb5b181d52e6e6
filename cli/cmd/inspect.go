package cmd

import (
	"encoding/base64"
	"encoding/hex"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agoralabs-sh/vip030026-go/cli/cmd/common"
	"github.com/agoralabs-sh/vip030026-go/cli/table"
	"github.com/agoralabs-sh/vip030026-go/credential"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <credential>",
	Short: "Show the fields of a credential",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := common.LoadCredential(args[0], common.IsPrivate())
		if err != nil {
			return err
		}
		defer resetCredential(c)

		output, err := inspectRows(c)
		if err != nil {
			return err
		}

		table := table.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Field", "Value"})
		table.AppendBulk(output)
		table.Render()
		return nil
	},
}

func inspectRows(c credential.Credential) ([][]string, error) {
	algorithm, err := c.Algorithm()
	if err != nil {
		return nil, err
	}
	publicKey, err := c.PublicKey()
	if err != nil {
		return nil, err
	}

	kind := "public"
	if _, ok := c.(*credential.PrivateKeyCredential); ok {
		kind = "private"
	}

	raw := c.Bytes()
	return [][]string{
		{"Kind", kind},
		{"Algorithm", algorithm.String()},
		{"ID", c.ID()},
		{"Tag", hex.EncodeToString(raw[credential.IDSize:credential.MinimumLength])},
		{"Length", strconv.Itoa(len(raw))},
		{"Key size", strconv.Itoa(len(raw) - credential.MinimumLength)},
		{"Public key", base64.StdEncoding.EncodeToString(publicKey)},
	}, nil
}

func init() {
	inspectCmd.Flags().AddFlagSet(common.PrivateFlag)
}
