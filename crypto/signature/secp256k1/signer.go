package secp256k1

import (
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/agoralabs-sh/vip030026-go/crypto/signature"
)

var _ signature.Signer = (*Signer)(nil)

type Signer struct {
	privateKey *btcec.PrivateKey
}

func (s *Signer) Public() signature.PublicKey {
	return PublicKey(*s.privateKey.PubKey())
}

// Sign signs the SHA-256 digest of the message and returns the 64-byte compact
// `[R | S]` encoding. Nonces are derived per RFC 6979 and S is always low.
func (s *Signer) Sign(message []byte) ([]byte, error) {
	sig := ecdsa.SignCompact(s.privateKey, PrepareSignerMessage(message), true)
	// Drop the leading public key recovery code.
	return sig[1:], nil
}

func (s *Signer) String() string {
	return s.Public().String()
}

func (s *Signer) Reset() {
	s.privateKey.Zero()
}

// PrivateKey returns the 32-byte private scalar.
func (s *Signer) PrivateKey() []byte {
	return s.privateKey.Serialize()
}

// NewSigner creates a new Secp256k1 signer using the given 32-byte private scalar.
func NewSigner(pk []byte) (*Signer, error) {
	if len(pk) != PrivateKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", signature.ErrMalformedPrivateKey, PrivateKeySize, len(pk))
	}

	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(pk); overflow || scalar.IsZero() {
		return nil, fmt.Errorf("%w: scalar out of range", signature.ErrMalformedPrivateKey)
	}
	scalar.Zero()

	privKey, _ := btcec.PrivKeyFromBytes(pk)
	return &Signer{privateKey: privKey}, nil
}

// GenerateSigner creates a new Secp256k1 signer from a private scalar sampled
// from rng.
func GenerateSigner(rng io.Reader) (*Signer, error) {
	var buf [PrivateKeySize]byte
	defer func() {
		for idx := range buf {
			buf[idx] = 0
		}
	}()

	for {
		if _, err := io.ReadFull(rng, buf[:]); err != nil {
			return nil, fmt.Errorf("failed to read entropy: %w", err)
		}
		signer, err := NewSigner(buf[:])
		if err != nil {
			// Out of range scalar, try again.
			continue
		}
		return signer, nil
	}
}
