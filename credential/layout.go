package credential

import "bytes"

const (
	// IDSize is the size of the identifier field in bytes.
	IDSize = 16
	// TagSize is the size of the algorithm tag field in bytes.
	TagSize = 4
	// MinimumLength is the minimum size of any credential in bytes.
	MinimumLength = IDSize + TagSize
)

// layout is the raw credential byte sequence:
//
//	[0:16)  id
//	[16:20) algorithm tag
//	[20:N)  key material
type layout []byte

func composeLayout(id, tag, key []byte) (layout, error) {
	raw := layout(bytes.Join([][]byte{id, tag, key}, nil))
	if err := checkLength(raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func checkLength(raw []byte) error {
	if len(raw) < MinimumLength {
		return &InvalidCredentialLengthError{Length: len(raw)}
	}
	return nil
}

func (l layout) id() []byte {
	return l[:IDSize]
}

func (l layout) tag() []byte {
	return l[IDSize:MinimumLength]
}

func (l layout) key() []byte {
	return l[MinimumLength:]
}
