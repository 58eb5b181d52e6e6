// Package ed25519 implements the Ed25519 signature scheme used by credentials.
package ed25519

import (
	"encoding"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/agoralabs-sh/vip030026-go/crypto/signature"
)

const (
	// PublicKeySize is the size of an Ed25519 public key in bytes.
	PublicKeySize = ed25519.PublicKeySize

	// SeedSize is the size of the private key seed in bytes.
	SeedSize = ed25519.SeedSize
)

var (
	_ encoding.BinaryMarshaler   = PublicKey{}
	_ encoding.BinaryUnmarshaler = (*PublicKey)(nil)
	_ encoding.TextMarshaler     = PublicKey{}
	_ encoding.TextUnmarshaler   = (*PublicKey)(nil)
	_ signature.PublicKey        = PublicKey{}
)

// PublicKey is an Ed25519 public key.
type PublicKey [PublicKeySize]byte

type serializedPublicKey struct {
	Ed25519 []byte `json:"ed25519"`
}

func (pk PublicKey) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(serializedPublicKey{Ed25519: pk[:]})
}

func (pk PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(serializedPublicKey{Ed25519: pk[:]})
}

// MarshalBinary encodes a public key into binary form.
func (pk PublicKey) MarshalBinary() ([]byte, error) {
	return append([]byte{}, pk[:]...), nil
}

// UnmarshalBinary decodes a binary marshaled public key.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	if len(data) != PublicKeySize {
		return fmt.Errorf("%w: expected %d bytes, got %d", signature.ErrMalformedPublicKey, PublicKeySize, len(data))
	}
	copy(pk[:], data)
	return nil
}

// MarshalText encodes a public key into text form.
func (pk PublicKey) MarshalText() ([]byte, error) {
	return []byte(base64.StdEncoding.EncodeToString(pk[:])), nil
}

// UnmarshalText decodes a text marshaled public key.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	data, err := base64.StdEncoding.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("%w: %w", signature.ErrMalformedPublicKey, err)
	}
	return pk.UnmarshalBinary(data)
}

// String returns a string representation of the public key.
func (pk PublicKey) String() string {
	str, _ := pk.MarshalText()
	return string(str)
}

// Equal compares vs another public key for equality.
func (pk PublicKey) Equal(other signature.PublicKey) bool {
	switch opk := other.(type) {
	case PublicKey:
		return pk == opk
	case *PublicKey:
		return opk != nil && pk == *opk
	default:
		return false
	}
}

// Verify returns true iff the signature is valid for the public key over the message.
func (pk PublicKey) Verify(message, sig []byte) bool {
	if len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pk[:]), message, sig)
}

// PublicKeyFromBytes creates a new public key from its raw binary form.
func PublicKeyFromBytes(data []byte) (PublicKey, error) {
	var pk PublicKey
	if err := pk.UnmarshalBinary(data); err != nil {
		return PublicKey{}, err
	}
	return pk, nil
}
