package credential

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedAlgorithmID is the error returned when an algorithm tag or name does
	// not identify a supported algorithm.
	ErrUnsupportedAlgorithmID = errors.New("credential: unsupported algorithm")

	// ErrInvalidCredentialLength is the error returned when a credential is shorter than
	// the id and algorithm tag header.
	ErrInvalidCredentialLength = errors.New("credential: invalid credential length")

	// ErrMalformedID is the error returned when an identifier is not a valid UUID.
	ErrMalformedID = errors.New("credential: malformed id")

	// ErrMalformedKey is the error returned when key material cannot be decoded or is
	// rejected by the curve implementation.
	ErrMalformedKey = errors.New("credential: malformed key")
)

// UnsupportedAlgorithmIDError is returned when an algorithm is not supported. Algorithm is
// empty when the algorithm could not be determined, e.g. for an unknown tag.
type UnsupportedAlgorithmIDError struct {
	Algorithm string
}

func (e *UnsupportedAlgorithmIDError) Error() string {
	if e.Algorithm == "" {
		return ErrUnsupportedAlgorithmID.Error()
	}
	return fmt.Sprintf("%s %q", ErrUnsupportedAlgorithmID, e.Algorithm)
}

// Is makes the error match ErrUnsupportedAlgorithmID.
func (e *UnsupportedAlgorithmIDError) Is(target error) bool {
	return target == ErrUnsupportedAlgorithmID
}

// InvalidCredentialLengthError is returned when a credential has fewer than MinimumLength
// bytes.
type InvalidCredentialLengthError struct {
	Length int
}

func (e *InvalidCredentialLengthError) Error() string {
	return fmt.Sprintf("%s: expected at least %d bytes, actual %d bytes", ErrInvalidCredentialLength, MinimumLength, e.Length)
}

// Is makes the error match ErrInvalidCredentialLength.
func (e *InvalidCredentialLengthError) Is(target error) bool {
	return target == ErrInvalidCredentialLength
}
