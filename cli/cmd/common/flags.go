package common

import (
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/agoralabs-sh/vip030026-go/cli/config"
)

var (
	selectedOutput            string
	selectedPrivate           bool
	selectedMessage           string
	selectedMessageFile       string
	selectedMessageEncoding   string
	selectedSignatureEncoding string
)

var (
	// OutputFlag is the flag for selecting the output format.
	OutputFlag *flag.FlagSet
	// PrivateFlag is the flag marking a string form credential argument as private.
	PrivateFlag *flag.FlagSet
	// MessageFlags are the flags for specifying the message to sign or verify.
	MessageFlags *flag.FlagSet
	// SignatureEncodingFlag is the flag for selecting the signature encoding.
	SignatureEncodingFlag *flag.FlagSet
)

// GetOutput returns the user-selected output format, falling back to the configured
// default.
func GetOutput(cfg *config.Config) string {
	if selectedOutput != "" {
		return selectedOutput
	}
	return cfg.Defaults.Output
}

// IsPrivate returns true iff the credential argument was marked as private.
func IsPrivate() bool {
	return selectedPrivate
}

// GetMessage returns the user-selected message.
func GetMessage() ([]byte, error) {
	return ReadMessage(selectedMessage, selectedMessageFile, selectedMessageEncoding)
}

// GetSignatureEncoding returns the user-selected signature encoding, falling back to
// the configured default.
func GetSignatureEncoding(cfg *config.Config) string {
	if selectedSignatureEncoding != "" {
		return selectedSignatureEncoding
	}
	return cfg.Defaults.SignatureEncoding
}

func init() {
	OutputFlag = flag.NewFlagSet("", flag.ContinueOnError)
	OutputFlag.StringVarP(&selectedOutput, "output", "o", "", "output format ["+strings.Join(config.OutputFormats, ",")+"]")

	PrivateFlag = flag.NewFlagSet("", flag.ContinueOnError)
	PrivateFlag.BoolVar(&selectedPrivate, "private", false, "treat the credential as a private key credential")

	MessageFlags = flag.NewFlagSet("", flag.ContinueOnError)
	MessageFlags.StringVarP(&selectedMessage, "message", "m", "", "message")
	MessageFlags.StringVar(&selectedMessageFile, "message-file", "", "read the message from file")
	MessageFlags.StringVar(&selectedMessageEncoding, "message-encoding", MessageEncodingUTF8, "message encoding ["+strings.Join(MessageEncodings, ",")+"]")

	SignatureEncodingFlag = flag.NewFlagSet("", flag.ContinueOnError)
	SignatureEncodingFlag.StringVarP(&selectedSignatureEncoding, "encoding", "e", "", "signature encoding ["+strings.Join(config.SignatureEncodings, ",")+"]")
}
