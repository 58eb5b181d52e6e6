package credential

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/agoralabs-sh/vip030026-go/crypto/signature"
)

// PublicKeyCredential is a credential carrying a public key. Clients use it to verify
// the integrity of provider responses.
type PublicKeyCredential struct {
	base
}

// NewPublicKeyCredential creates a public key credential from its raw layout.
func NewPublicKeyCredential(raw []byte) (*PublicKeyCredential, error) {
	b, err := newBase(raw)
	if err != nil {
		return nil, err
	}
	return &PublicKeyCredential{base: b}, nil
}

// PublicKeyCredentialFromString creates a public key credential from its base64 string
// form.
func PublicKeyCredentialFromString(s string) (*PublicKeyCredential, error) {
	raw, err := decodeString(s)
	if err != nil {
		return nil, fmt.Errorf("credential: malformed string form: %w", err)
	}
	return NewPublicKeyCredential(raw)
}

// PublicKeyCredentialFromRecord creates a public key credential from its structured form.
func PublicKeyCredentialFromRecord(r PublicRecord) (*PublicKeyCredential, error) {
	raw, err := layoutFromRecord(r.Algorithm, r.ID, r.PublicKey)
	if err != nil {
		return nil, err
	}
	return &PublicKeyCredential{base: base{raw: raw}}, nil
}

// PublicKey returns a copy of the stored public key bytes.
func (c *PublicKeyCredential) PublicKey() ([]byte, error) {
	return append([]byte{}, c.raw.key()...), nil
}

// PublicRecord returns the structured form of the credential.
func (c *PublicKeyCredential) PublicRecord() (PublicRecord, error) {
	return c.publicRecord(c.raw.key())
}

// Record is an alias for PublicRecord.
func (c *PublicKeyCredential) Record() (PublicRecord, error) {
	return c.PublicRecord()
}

// Verifier returns the credential public key as a signature.PublicKey.
func (c *PublicKeyCredential) Verifier() (signature.PublicKey, error) {
	s, err := c.scheme()
	if err != nil {
		return nil, err
	}
	pk, err := s.newPublicKey(c.raw.key())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}
	return pk, nil
}

func (c *PublicKeyCredential) Verify(message, sig []byte) (bool, error) {
	s, err := c.scheme()
	if err != nil {
		return false, err
	}
	return s.verify(c.raw.key(), message, sig), nil
}

// Equal returns true iff both credentials have the same layout.
func (c *PublicKeyCredential) Equal(other *PublicKeyCredential) bool {
	if other == nil {
		return false
	}
	return string(c.raw) == string(other.raw)
}

// UnmarshalBinary decodes a raw credential layout.
func (c *PublicKeyCredential) UnmarshalBinary(data []byte) error {
	decoded, err := NewPublicKeyCredential(data)
	if err != nil {
		return err
	}
	*c = *decoded
	return nil
}

// UnmarshalText decodes a base64 string form.
func (c *PublicKeyCredential) UnmarshalText(text []byte) error {
	decoded, err := PublicKeyCredentialFromString(string(text))
	if err != nil {
		return err
	}
	*c = *decoded
	return nil
}

// UnmarshalCBOR decodes a CBOR byte string holding the raw credential layout.
func (c *PublicKeyCredential) UnmarshalCBOR(data []byte) error {
	raw, err := decodeCBOR(data)
	if err != nil {
		return err
	}
	return c.UnmarshalBinary(raw)
}

// MarshalJSON encodes the credential as a JSON public record.
func (c PublicKeyCredential) MarshalJSON() ([]byte, error) {
	r, err := c.PublicRecord()
	if err != nil {
		return nil, err
	}
	return json.Marshal(r)
}

// UnmarshalJSON decodes a JSON public record, or a JSON string holding the base64
// string form.
func (c *PublicKeyCredential) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		return c.UnmarshalText([]byte(s))
	}

	var r PublicRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	decoded, err := PublicKeyCredentialFromRecord(r)
	if err != nil {
		return err
	}
	*c = *decoded
	return nil
}

// MarshalYAML encodes the credential as a YAML public record.
func (c PublicKeyCredential) MarshalYAML() (interface{}, error) {
	return c.PublicRecord()
}

// UnmarshalYAML decodes a YAML public record, or a scalar holding the base64 string
// form.
func (c *PublicKeyCredential) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return c.UnmarshalText([]byte(value.Value))
	}

	var r PublicRecord
	if err := value.Decode(&r); err != nil {
		return err
	}
	decoded, err := PublicKeyCredentialFromRecord(r)
	if err != nil {
		return err
	}
	*c = *decoded
	return nil
}
