package common

import (
	"encoding/hex"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/agoralabs-sh/vip030026-go/cli/config"
	"github.com/agoralabs-sh/vip030026-go/credential"
)

// FormatCredential renders a credential in the given output format.
func FormatCredential(c credential.Credential, format string) ([]byte, error) {
	switch format {
	case config.OutputJSON:
		return PrettyJSONMarshal(c)
	case config.OutputYAML:
		out, err := yaml.Marshal(c)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal to YAML: %w", err)
		}
		return out, nil
	case config.OutputString:
		return []byte(c.String()), nil
	case config.OutputHex:
		return []byte(hex.EncodeToString(c.Bytes())), nil
	default:
		return nil, fmt.Errorf("unsupported output format '%s'", format)
	}
}
