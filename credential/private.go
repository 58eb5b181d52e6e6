package credential

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/agoralabs-sh/vip030026-go/crypto/signature"
)

// PrivateKeyCredential is a credential carrying a private key. Providers use it to sign
// responses; it must never be handed to clients.
type PrivateKeyCredential struct {
	base
}

type generateOptions struct {
	algorithm AlgorithmID
	id        string
	rng       io.Reader
}

// GenerateOption configures Generate.
type GenerateOption func(*generateOptions)

// WithAlgorithm sets the algorithm of the generated credential. The default is
// AlgorithmEd25519.
func WithAlgorithm(algorithm AlgorithmID) GenerateOption {
	return func(o *generateOptions) {
		o.algorithm = algorithm
	}
}

// WithID sets the hyphenated UUID of the generated credential. By default a fresh
// random version 4 UUID is used.
func WithID(id string) GenerateOption {
	return func(o *generateOptions) {
		o.id = id
	}
}

// WithRandom sets the entropy source used for key and id generation. The default is
// crypto/rand.Reader.
func WithRandom(rng io.Reader) GenerateOption {
	return func(o *generateOptions) {
		o.rng = rng
	}
}

// Generate creates a new private key credential with a fresh private key.
func Generate(opts ...GenerateOption) (*PrivateKeyCredential, error) {
	o := generateOptions{
		algorithm: AlgorithmEd25519,
		rng:       rand.Reader,
	}
	for _, opt := range opts {
		opt(&o)
	}

	s, err := lookupScheme(o.algorithm)
	if err != nil {
		return nil, err
	}

	var rawID []byte
	switch o.id {
	case "":
		rawID, err = newID(o.rng)
	default:
		rawID, err = decodeID(o.id)
	}
	if err != nil {
		return nil, err
	}

	privateKey, err := s.generate(o.rng)
	if err != nil {
		return nil, fmt.Errorf("credential: failed to generate %s private key: %w", o.algorithm, err)
	}
	defer zero(privateKey)

	raw, err := composeLayout(rawID, s.tag, privateKey)
	if err != nil {
		return nil, err
	}
	return &PrivateKeyCredential{base: base{raw: raw}}, nil
}

// NewPrivateKeyCredential creates a private key credential from its raw layout.
func NewPrivateKeyCredential(raw []byte) (*PrivateKeyCredential, error) {
	b, err := newBase(raw)
	if err != nil {
		return nil, err
	}
	return &PrivateKeyCredential{base: b}, nil
}

// PrivateKeyCredentialFromString creates a private key credential from its base64
// string form.
func PrivateKeyCredentialFromString(s string) (*PrivateKeyCredential, error) {
	raw, err := decodeString(s)
	if err != nil {
		return nil, fmt.Errorf("credential: malformed string form: %w", err)
	}
	defer zero(raw)

	return NewPrivateKeyCredential(raw)
}

// PrivateKeyCredentialFromRecord creates a private key credential from its structured
// form. The public key field is not consulted, the public key is always derived.
func PrivateKeyCredentialFromRecord(r PrivateRecord) (*PrivateKeyCredential, error) {
	if !r.Algorithm.IsSupported() {
		return nil, &UnsupportedAlgorithmIDError{Algorithm: string(r.Algorithm)}
	}
	if r.PrivateKey == "" {
		return nil, fmt.Errorf("%w: missing private key", ErrMalformedKey)
	}
	raw, err := layoutFromRecord(r.Algorithm, r.ID, r.PrivateKey)
	if err != nil {
		return nil, err
	}
	return &PrivateKeyCredential{base: base{raw: raw}}, nil
}

// PrivateKey returns a copy of the raw private key bytes.
func (c *PrivateKeyCredential) PrivateKey() []byte {
	return append([]byte{}, c.raw.key()...)
}

// PublicKey derives the raw public key from the private key. The result is never
// cached.
func (c *PrivateKeyCredential) PublicKey() ([]byte, error) {
	s, err := c.scheme()
	if err != nil {
		return nil, err
	}
	return s.derivePublicKey(c.raw.key())
}

// Sign signs the message. Ed25519 signs the message itself, ES256K signs its SHA-256
// digest. The signature is always 64 bytes.
func (c *PrivateKeyCredential) Sign(message []byte) ([]byte, error) {
	s, err := c.scheme()
	if err != nil {
		return nil, err
	}
	return s.sign(c.raw.key(), message)
}

func (c *PrivateKeyCredential) Verify(message, sig []byte) (bool, error) {
	s, err := c.scheme()
	if err != nil {
		return false, err
	}
	publicKey, err := s.derivePublicKey(c.raw.key())
	if err != nil {
		return false, nil
	}
	return s.verify(publicKey, message, sig), nil
}

// PublicRecord returns the structured public form of the credential.
func (c *PrivateKeyCredential) PublicRecord() (PublicRecord, error) {
	publicKey, err := c.PublicKey()
	if err != nil {
		return PublicRecord{}, err
	}
	return c.publicRecord(publicKey)
}

// Record returns the structured form of the credential, including the private key.
func (c *PrivateKeyCredential) Record() (PrivateRecord, error) {
	pr, err := c.PublicRecord()
	if err != nil {
		return PrivateRecord{}, err
	}
	return PrivateRecord{
		PublicRecord: pr,
		PrivateKey:   base64.StdEncoding.EncodeToString(c.raw.key()),
	}, nil
}

// PublicKeyCredential returns the public counterpart of the credential.
func (c *PrivateKeyCredential) PublicKeyCredential() (*PublicKeyCredential, error) {
	pr, err := c.PublicRecord()
	if err != nil {
		return nil, err
	}
	return PublicKeyCredentialFromRecord(pr)
}

// Signer returns a signature.Signer over the credential private key. The caller should
// Reset it when done.
func (c *PrivateKeyCredential) Signer() (signature.Signer, error) {
	s, err := c.scheme()
	if err != nil {
		return nil, err
	}
	return s.signer(c.raw.key())
}

// Reset obliterates the private key held by the credential. The credential must not be
// used afterwards.
func (c *PrivateKeyCredential) Reset() {
	zero(c.raw.key())
}

// GoString never includes key material.
func (c *PrivateKeyCredential) GoString() string {
	return fmt.Sprintf("credential.PrivateKeyCredential{id: %q}", c.ID())
}

// UnmarshalBinary decodes a raw credential layout.
func (c *PrivateKeyCredential) UnmarshalBinary(data []byte) error {
	decoded, err := NewPrivateKeyCredential(data)
	if err != nil {
		return err
	}
	*c = *decoded
	return nil
}

// UnmarshalText decodes a base64 string form.
func (c *PrivateKeyCredential) UnmarshalText(text []byte) error {
	decoded, err := PrivateKeyCredentialFromString(string(text))
	if err != nil {
		return err
	}
	*c = *decoded
	return nil
}

// UnmarshalCBOR decodes a CBOR byte string holding the raw credential layout.
func (c *PrivateKeyCredential) UnmarshalCBOR(data []byte) error {
	raw, err := decodeCBOR(data)
	if err != nil {
		return err
	}
	defer zero(raw)

	return c.UnmarshalBinary(raw)
}

// MarshalJSON encodes the credential as a JSON private record.
func (c PrivateKeyCredential) MarshalJSON() ([]byte, error) {
	r, err := c.Record()
	if err != nil {
		return nil, err
	}
	return json.Marshal(r)
}

// UnmarshalJSON decodes a JSON private record, or a JSON string holding the base64
// string form.
func (c *PrivateKeyCredential) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		return c.UnmarshalText([]byte(s))
	}

	var r PrivateRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	decoded, err := PrivateKeyCredentialFromRecord(r)
	if err != nil {
		return err
	}
	*c = *decoded
	return nil
}

// MarshalYAML encodes the credential as a YAML private record.
func (c PrivateKeyCredential) MarshalYAML() (interface{}, error) {
	return c.Record()
}

// UnmarshalYAML decodes a YAML private record, or a scalar holding the base64 string
// form.
func (c *PrivateKeyCredential) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return c.UnmarshalText([]byte(value.Value))
	}

	var r PrivateRecord
	if err := value.Decode(&r); err != nil {
		return err
	}
	decoded, err := PrivateKeyCredentialFromRecord(r)
	if err != nil {
		return err
	}
	*c = *decoded
	return nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
