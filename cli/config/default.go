package config

import (
	"github.com/agoralabs-sh/vip030026-go/credential"
)

// Output formats.
const (
	OutputJSON   = "json"
	OutputYAML   = "yaml"
	OutputString = "string"
	OutputHex    = "hex"
)

// Signature encodings.
const (
	EncodingBase64 = "base64"
	EncodingHex    = "hex"
	EncodingBase58 = "base58"
)

var (
	// OutputFormats are the supported output formats.
	OutputFormats = []string{OutputJSON, OutputYAML, OutputString, OutputHex}
	// SignatureEncodings are the supported signature encodings.
	SignatureEncodings = []string{EncodingBase64, EncodingHex, EncodingBase58}
)

// Default is the default config that should be used in case no configuration file exists.
var Default = Config{
	Defaults: Defaults{
		Algorithm:         string(credential.AlgorithmEd25519),
		Output:            OutputJSON,
		SignatureEncoding: EncodingBase64,
	},
	Log: Log{
		Level:  "warn",
		Format: "logfmt",
	},
}
