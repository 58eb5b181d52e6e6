package credential

import (
	"bytes"

	"github.com/minio/sha256-simd"
)

// AlgorithmID is the canonical name of a credential signature algorithm.
type AlgorithmID string

const (
	// AlgorithmEd25519 is EdDSA using the Ed25519 curve.
	AlgorithmEd25519 AlgorithmID = "Ed25519"
	// AlgorithmES256K is ECDSA using the secp256k1 curve and SHA-256.
	AlgorithmES256K AlgorithmID = "ES256K"
)

// SupportedAlgorithms returns all supported algorithms.
func SupportedAlgorithms() []AlgorithmID {
	return []AlgorithmID{AlgorithmEd25519, AlgorithmES256K}
}

// String returns the canonical name of the algorithm.
func (a AlgorithmID) String() string {
	return string(a)
}

// IsSupported returns true iff the algorithm is one of the supported algorithms.
func (a AlgorithmID) IsSupported() bool {
	_, ok := schemes[a]
	return ok
}

// Tag returns the 4-byte algorithm tag: the first bytes of the SHA-256 digest of the
// algorithm name.
func (a AlgorithmID) Tag() []byte {
	digest := sha256.Sum256([]byte(a))
	return append([]byte{}, digest[:TagSize]...)
}

// ParseAlgorithmID parses a canonical algorithm name. Matching is case-sensitive.
func ParseAlgorithmID(name string) (AlgorithmID, error) {
	a := AlgorithmID(name)
	if !a.IsSupported() {
		return "", &UnsupportedAlgorithmIDError{Algorithm: name}
	}
	return a, nil
}

// AlgorithmFromTag returns the algorithm identified by the given tag.
//
// The comparison is not constant time and must only be used for tags.
func AlgorithmFromTag(tag []byte) (AlgorithmID, error) {
	for _, a := range SupportedAlgorithms() {
		if bytes.Equal(tag, schemes[a].tag) {
			return a, nil
		}
	}
	return "", &UnsupportedAlgorithmIDError{}
}

// PrivateKeySize returns the size of the algorithm's private key material in bytes, or
// zero for unsupported algorithms.
func (a AlgorithmID) PrivateKeySize() int {
	if s, ok := schemes[a]; ok {
		return s.privateKeySize
	}
	return 0
}

// PublicKeySize returns the size of the algorithm's public key material in bytes, or
// zero for unsupported algorithms.
func (a AlgorithmID) PublicKeySize() int {
	if s, ok := schemes[a]; ok {
		return s.publicKeySize
	}
	return 0
}
