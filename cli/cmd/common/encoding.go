package common

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/agoralabs-sh/vip030026-go/cli/config"
)

// Message encodings.
const (
	MessageEncodingUTF8   = "utf8"
	MessageEncodingHex    = "hex"
	MessageEncodingBase64 = "base64"
)

// MessageEncodings are the supported message encodings.
var MessageEncodings = []string{MessageEncodingUTF8, MessageEncodingHex, MessageEncodingBase64}

// ReadMessage returns the message to sign or verify, given either inline or as a file.
func ReadMessage(message, file, encoding string) ([]byte, error) {
	var text []byte
	switch {
	case message != "" && file != "":
		return nil, fmt.Errorf("only one of message and message file may be given")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read message file: %w", err)
		}
		text = data
	default:
		text = []byte(message)
	}

	switch encoding {
	case MessageEncodingUTF8, "":
		return text, nil
	case MessageEncodingHex:
		raw, err := hex.DecodeString(strings.TrimSpace(string(text)))
		if err != nil {
			return nil, fmt.Errorf("malformed hex message: %w", err)
		}
		return raw, nil
	case MessageEncodingBase64:
		raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(text)))
		if err != nil {
			return nil, fmt.Errorf("malformed base64 message: %w", err)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("unsupported message encoding '%s'", encoding)
	}
}

// EncodeSignature encodes a signature for display.
func EncodeSignature(sig []byte, encoding string) (string, error) {
	switch encoding {
	case config.EncodingBase64:
		return base64.StdEncoding.EncodeToString(sig), nil
	case config.EncodingHex:
		return hex.EncodeToString(sig), nil
	case config.EncodingBase58:
		return base58.Encode(sig), nil
	default:
		return "", fmt.Errorf("unsupported signature encoding '%s'", encoding)
	}
}

// DecodeSignature decodes a signature given on the command line.
func DecodeSignature(s, encoding string) ([]byte, error) {
	s = strings.TrimSpace(s)

	var (
		sig []byte
		err error
	)
	switch encoding {
	case config.EncodingBase64:
		sig, err = base64.StdEncoding.DecodeString(s)
	case config.EncodingHex:
		sig, err = hex.DecodeString(s)
	case config.EncodingBase58:
		sig, err = base58.Decode(s)
	default:
		return nil, fmt.Errorf("unsupported signature encoding '%s'", encoding)
	}
	if err != nil {
		return nil, fmt.Errorf("malformed %s signature: %w", encoding, err)
	}
	return sig, nil
}
