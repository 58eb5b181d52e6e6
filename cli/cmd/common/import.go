package common

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/agoralabs-sh/vip030026-go/credential"
)

// Key encodings accepted by ImportPrivateKey.
const (
	KeyEncodingHex    = "hex"
	KeyEncodingBase64 = "base64"
)

// DecodePrivateKey decodes a raw private key given as hex (optionally 0x-prefixed) or
// base64 and checks its size for the algorithm.
func DecodePrivateKey(algorithm credential.AlgorithmID, text, encoding string) ([]byte, error) {
	text = strings.TrimSpace(text)

	var (
		data []byte
		err  error
	)
	switch encoding {
	case KeyEncodingHex:
		data, err = hex.DecodeString(strings.TrimPrefix(text, "0x"))
	case KeyEncodingBase64:
		data, err = base64.StdEncoding.DecodeString(text)
	default:
		return nil, fmt.Errorf("unsupported key encoding '%s'", encoding)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", credential.ErrMalformedKey, err)
	}

	if size := algorithm.PrivateKeySize(); len(data) != size {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", credential.ErrMalformedKey, size, len(data))
	}
	return data, nil
}

// ImportPrivateKey wraps an existing raw private key into a private key credential. A
// random identifier is used when id is empty.
func ImportPrivateKey(algorithm credential.AlgorithmID, id, text, encoding string) (*credential.PrivateKeyCredential, error) {
	if !algorithm.IsSupported() {
		return nil, &credential.UnsupportedAlgorithmIDError{Algorithm: string(algorithm)}
	}
	raw, err := DecodePrivateKey(algorithm, text, encoding)
	if err != nil {
		return nil, err
	}
	if id == "" {
		id = uuid.NewString()
	}

	c, err := credential.PrivateKeyCredentialFromRecord(credential.PrivateRecord{
		PublicRecord: credential.PublicRecord{
			Algorithm: algorithm,
			ID:        id,
		},
		PrivateKey: base64.StdEncoding.EncodeToString(raw),
	})
	if err != nil {
		return nil, err
	}

	// Reject keys the curve cannot use right away.
	if _, err = c.PublicKey(); err != nil {
		return nil, err
	}
	return c, nil
}
