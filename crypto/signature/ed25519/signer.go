package ed25519

import (
	"io"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/agoralabs-sh/vip030026-go/crypto/signature"
)

var _ signature.Signer = (*Signer)(nil)

// Signer is an in-memory Ed25519 signer backed by a raw 32-byte seed.
type Signer struct {
	privateKey ed25519.PrivateKey
}

func (s *Signer) Public() signature.PublicKey {
	var pk PublicKey
	copy(pk[:], s.privateKey.Public().(ed25519.PublicKey))
	return pk
}

func (s *Signer) Sign(message []byte) ([]byte, error) {
	if len(s.privateKey) != ed25519.PrivateKeySize {
		return nil, signature.ErrMalformedPrivateKey
	}
	return ed25519.Sign(s.privateKey, message), nil
}

func (s *Signer) String() string {
	return s.Public().String()
}

func (s *Signer) Reset() {
	for idx := range s.privateKey {
		s.privateKey[idx] = 0
	}
}

// Seed returns a copy of the 32-byte private key seed.
func (s *Signer) Seed() []byte {
	return append([]byte{}, s.privateKey.Seed()...)
}

// NewSigner creates a new Ed25519 signer from the given 32-byte seed.
func NewSigner(seed []byte) (*Signer, error) {
	if len(seed) != SeedSize {
		return nil, signature.ErrMalformedPrivateKey
	}
	return &Signer{privateKey: ed25519.NewKeyFromSeed(seed)}, nil
}

// GenerateSigner creates a new Ed25519 signer from a fresh seed read from rng.
func GenerateSigner(rng io.Reader) (*Signer, error) {
	_, privateKey, err := ed25519.GenerateKey(rng)
	if err != nil {
		return nil, err
	}
	return &Signer{privateKey: privateKey}, nil
}
