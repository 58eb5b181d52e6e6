// Package signature contains the cryptographic signature types shared by the
// supported credential algorithms.
package signature

import "errors"

var (
	// ErrMalformedPrivateKey is the error returned when private key material cannot be
	// used by the curve implementation.
	ErrMalformedPrivateKey = errors.New("signature: malformed private key")

	// ErrMalformedPublicKey is the error returned when public key material cannot be
	// parsed by the curve implementation.
	ErrMalformedPublicKey = errors.New("signature: malformed public key")
)

// SignatureSize is the size of every signature produced by a Signer, in bytes.
const SignatureSize = 64

// PublicKey is a public key.
type PublicKey interface {
	// String returns a string representation of the public key.
	String() string

	// Equal compares vs another public key for equality.
	Equal(other PublicKey) bool

	// Verify returns true iff the signature is valid for the public key over the message.
	Verify(message, signature []byte) bool
}
