// Package credential implements VIP-03-0026 credentials: a compact binary format that
// carries an identifier, an algorithm tag and key material, with signing over the
// private variant and verification over either variant.
//
// A credential is laid out as
//
//	[0:16)  id            UUID bytes
//	[16:20) algorithm tag first 4 bytes of SHA-256(algorithm name)
//	[20:N)  key material  private scalar or public point
//
// Credentials are immutable and safe for concurrent use.
package credential

import (
	"encoding/base64"

	"github.com/fxamacker/cbor/v2"
)

// Credential is the behavior shared by public and private key credentials.
type Credential interface {
	// Algorithm returns the algorithm identified by the credential tag.
	Algorithm() (AlgorithmID, error)

	// ID returns the lower-case hyphenated credential identifier.
	ID() string

	// PublicKey returns the raw public key bytes.
	PublicKey() ([]byte, error)

	// PublicRecord returns the structured public form of the credential.
	PublicRecord() (PublicRecord, error)

	// Bytes returns a copy of the raw credential layout.
	Bytes() []byte

	// String returns the base64 encoding of the raw credential layout.
	String() string

	// Verify returns true iff the signature is valid for the credential public key over
	// the message. A mismatch is not an error; an error is only returned when the
	// algorithm cannot be identified.
	Verify(message, signature []byte) (bool, error)
}

var (
	_ Credential = (*PublicKeyCredential)(nil)
	_ Credential = (*PrivateKeyCredential)(nil)
)

// base is embedded by both credential variants.
type base struct {
	raw layout
}

func newBase(raw []byte) (base, error) {
	if err := checkLength(raw); err != nil {
		return base{}, err
	}
	return base{raw: append(layout{}, raw...)}, nil
}

func (b base) Algorithm() (AlgorithmID, error) {
	return AlgorithmFromTag(b.raw.tag())
}

func (b base) scheme() (*scheme, error) {
	a, err := b.Algorithm()
	if err != nil {
		return nil, err
	}
	return lookupScheme(a)
}

func (b base) ID() string {
	return encodeID(b.raw.id())
}

func (b base) Bytes() []byte {
	return append([]byte{}, b.raw...)
}

func (b base) String() string {
	return base64.StdEncoding.EncodeToString(b.raw)
}

// MarshalBinary encodes the credential into its raw layout.
func (b base) MarshalBinary() ([]byte, error) {
	return b.Bytes(), nil
}

// MarshalText encodes the credential into its base64 string form.
func (b base) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// MarshalCBOR encodes the credential as a CBOR byte string of its raw layout.
func (b base) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal([]byte(b.raw))
}

func (b base) publicRecord(publicKey []byte) (PublicRecord, error) {
	a, err := b.Algorithm()
	if err != nil {
		return PublicRecord{}, err
	}
	return PublicRecord{
		Algorithm: a,
		ID:        b.ID(),
		PublicKey: base64.StdEncoding.EncodeToString(publicKey),
	}, nil
}

func decodeString(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

func decodeCBOR(data []byte) ([]byte, error) {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
