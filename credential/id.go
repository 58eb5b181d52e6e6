package credential

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// decodeID parses a hyphenated UUID string, in any letter case, into its 16 bytes.
func decodeID(id string) ([]byte, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedID, err)
	}
	return u[:], nil
}

// encodeID formats the 16 id bytes as a lower-case hyphenated UUID string.
func encodeID(raw []byte) string {
	u, err := uuid.FromBytes(raw)
	if err != nil {
		// Unreachable, layouts always carry IDSize id bytes.
		return ""
	}
	return u.String()
}

// newID returns the bytes of a fresh random version 4 UUID.
func newID(rng io.Reader) ([]byte, error) {
	u, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return nil, fmt.Errorf("credential: failed to generate id: %w", err)
	}
	return u[:], nil
}
