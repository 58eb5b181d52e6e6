package credential

import (
	"encoding"
	"fmt"
	"io"

	"github.com/agoralabs-sh/vip030026-go/crypto/signature"
	"github.com/agoralabs-sh/vip030026-go/crypto/signature/ed25519"
	"github.com/agoralabs-sh/vip030026-go/crypto/signature/secp256k1"
)

// scheme holds everything algorithm-specific; adding an algorithm only requires a new
// entry in schemes.
type scheme struct {
	tag            []byte
	privateKeySize int
	publicKeySize  int

	generate     func(rng io.Reader) ([]byte, error)
	newSigner    func(privateKey []byte) (signature.Signer, error)
	newPublicKey func(publicKey []byte) (signature.PublicKey, error)
}

var schemes = map[AlgorithmID]*scheme{
	AlgorithmEd25519: {
		tag:            AlgorithmEd25519.Tag(),
		privateKeySize: ed25519.SeedSize,
		publicKeySize:  ed25519.PublicKeySize,
		generate: func(rng io.Reader) ([]byte, error) {
			signer, err := ed25519.GenerateSigner(rng)
			if err != nil {
				return nil, err
			}
			defer signer.Reset()
			return signer.Seed(), nil
		},
		newSigner: func(privateKey []byte) (signature.Signer, error) {
			return ed25519.NewSigner(privateKey)
		},
		newPublicKey: func(publicKey []byte) (signature.PublicKey, error) {
			return ed25519.PublicKeyFromBytes(publicKey)
		},
	},
	AlgorithmES256K: {
		tag:            AlgorithmES256K.Tag(),
		privateKeySize: secp256k1.PrivateKeySize,
		publicKeySize:  secp256k1.PublicKeySize,
		generate: func(rng io.Reader) ([]byte, error) {
			signer, err := secp256k1.GenerateSigner(rng)
			if err != nil {
				return nil, err
			}
			defer signer.Reset()
			return signer.PrivateKey(), nil
		},
		newSigner: func(privateKey []byte) (signature.Signer, error) {
			return secp256k1.NewSigner(privateKey)
		},
		newPublicKey: func(publicKey []byte) (signature.PublicKey, error) {
			return secp256k1.PublicKeyFromBytes(publicKey)
		},
	},
}

func lookupScheme(a AlgorithmID) (*scheme, error) {
	s, ok := schemes[a]
	if !ok {
		return nil, &UnsupportedAlgorithmIDError{Algorithm: string(a)}
	}
	return s, nil
}

func (s *scheme) signer(privateKey []byte) (signature.Signer, error) {
	signer, err := s.newSigner(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}
	return signer, nil
}

func (s *scheme) sign(privateKey, message []byte) ([]byte, error) {
	signer, err := s.signer(privateKey)
	if err != nil {
		return nil, err
	}
	defer signer.Reset()

	return signer.Sign(message)
}

func (s *scheme) verify(publicKey, message, sig []byte) bool {
	pk, err := s.newPublicKey(publicKey)
	if err != nil {
		return false
	}
	return pk.Verify(message, sig)
}

func (s *scheme) derivePublicKey(privateKey []byte) ([]byte, error) {
	signer, err := s.signer(privateKey)
	if err != nil {
		return nil, err
	}
	defer signer.Reset()

	return signer.Public().(encoding.BinaryMarshaler).MarshalBinary()
}
