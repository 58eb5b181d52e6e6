package credential

import (
	"encoding/base64"
	"fmt"
)

// PublicRecord is the structured form of a public key credential.
type PublicRecord struct {
	// Algorithm is the credential algorithm name.
	Algorithm AlgorithmID `json:"algorithm" yaml:"algorithm"`

	// ID is the hyphenated UUID of the credential.
	ID string `json:"id" yaml:"id"`

	// PublicKey is the base64-encoded public key.
	PublicKey string `json:"publicKey" yaml:"publicKey"`
}

// PrivateRecord is the structured form of a private key credential.
type PrivateRecord struct {
	PublicRecord `yaml:",inline"`

	// PrivateKey is the base64-encoded private key.
	PrivateKey string `json:"privateKey" yaml:"privateKey"`
}

// Public returns the record with the private key stripped.
func (r PrivateRecord) Public() PublicRecord {
	return r.PublicRecord
}

// layoutFromRecord rebuilds the credential layout from record fields. The algorithm
// is validated first so foreign records fail before any decoding.
func layoutFromRecord(algorithm AlgorithmID, id, key string) (layout, error) {
	s, err := lookupScheme(algorithm)
	if err != nil {
		return nil, err
	}
	rawID, err := decodeID(id)
	if err != nil {
		return nil, err
	}
	rawKey, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}
	return composeLayout(rawID, s.tag, rawKey)
}
