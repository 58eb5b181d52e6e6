// Package secp256k1 implements ECDSA over the secp256k1 curve with SHA-256
// prehashing and compact `[R | S]` signatures (ES256K).
package secp256k1

import (
	"encoding"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/fxamacker/cbor/v2"
	"github.com/minio/sha256-simd"

	"github.com/agoralabs-sh/vip030026-go/crypto/signature"
)

const (
	// PublicKeySize is the size of a compressed secp256k1 public key in bytes.
	PublicKeySize = btcec.PubKeyBytesLenCompressed

	// PrivateKeySize is the size of a secp256k1 private scalar in bytes.
	PrivateKeySize = btcec.PrivKeyBytesLen

	scalarSize = 32
)

var (
	_ encoding.BinaryMarshaler   = PublicKey{}
	_ encoding.BinaryUnmarshaler = (*PublicKey)(nil)
	_ encoding.TextMarshaler     = PublicKey{}
	_ encoding.TextUnmarshaler   = (*PublicKey)(nil)
	_ signature.PublicKey        = PublicKey{}
)

// PublicKey is a Secp256k1 public key.
type PublicKey btcec.PublicKey

type serializedPublicKey struct {
	Secp256k1 []byte `json:"secp256k1"`
}

func (pk PublicKey) MarshalCBOR() ([]byte, error) {
	bpk := btcec.PublicKey(pk)
	return cbor.Marshal(serializedPublicKey{Secp256k1: bpk.SerializeCompressed()})
}

func (pk PublicKey) MarshalJSON() ([]byte, error) {
	bpk := btcec.PublicKey(pk)
	return json.Marshal(serializedPublicKey{Secp256k1: bpk.SerializeCompressed()})
}

// MarshalBinary encodes a public key into compressed binary form.
func (pk PublicKey) MarshalBinary() ([]byte, error) {
	bpk := btcec.PublicKey(pk)
	return bpk.SerializeCompressed(), nil
}

// UnmarshalBinary decodes a binary marshaled public key. Both compressed and
// uncompressed encodings are accepted.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	parsedPK, err := btcec.ParsePubKey(data)
	if err != nil {
		return fmt.Errorf("%w: %w", signature.ErrMalformedPublicKey, err)
	}
	*pk = PublicKey(*parsedPK)
	return nil
}

// MarshalText encodes a public key into text form.
func (pk PublicKey) MarshalText() ([]byte, error) {
	serialized, _ := pk.MarshalBinary()
	return []byte(base64.StdEncoding.EncodeToString(serialized)), nil
}

// UnmarshalText decodes a text marshaled public key.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	decodedPK, err := base64.StdEncoding.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("%w: %w", signature.ErrMalformedPublicKey, err)
	}
	return pk.UnmarshalBinary(decodedPK)
}

// String returns a string representation of the public key.
func (pk PublicKey) String() string {
	str, _ := pk.MarshalText()
	return string(str)
}

// Equal compares vs another public key for equality.
func (pk PublicKey) Equal(other signature.PublicKey) bool {
	var obpk btcec.PublicKey
	switch opk := other.(type) {
	case PublicKey:
		obpk = btcec.PublicKey(opk)
	case *PublicKey:
		if opk == nil {
			return false
		}
		obpk = btcec.PublicKey(*opk)
	default:
		return false
	}
	bpk := btcec.PublicKey(pk)
	return bpk.IsEqual(&obpk)
}

// Verify returns true iff the compact signature is valid for the public key over
// the SHA-256 digest of the message. High-S signatures are rejected.
func (pk PublicKey) Verify(message, sig []byte) bool {
	if len(sig) != signature.SignatureSize {
		return false
	}

	var r, s btcec.ModNScalar
	if overflow := r.SetByteSlice(sig[:scalarSize]); overflow || r.IsZero() {
		return false
	}
	if overflow := s.SetByteSlice(sig[scalarSize:]); overflow || s.IsZero() || s.IsOverHalfOrder() {
		return false
	}

	bpk := btcec.PublicKey(pk)
	return ecdsa.NewSignature(&r, &s).Verify(PrepareSignerMessage(message), &bpk)
}

// PublicKeyFromBytes creates a new public key from its raw binary form.
func PublicKeyFromBytes(data []byte) (PublicKey, error) {
	var pk PublicKey
	if err := pk.UnmarshalBinary(data); err != nil {
		return PublicKey{}, err
	}
	return pk, nil
}

// PrepareSignerMessage prepares a message for signing by a Signer.
func PrepareSignerMessage(message []byte) []byte {
	digest := sha256.Sum256(message)
	return digest[:]
}
