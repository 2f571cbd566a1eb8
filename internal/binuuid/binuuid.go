// Package binuuid converts between the canonical hyphenated UUID string form
// and the raw 16-byte form the stores use for keys and joins.
package binuuid

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Size is the length of a binary id in bytes.
const Size = 16

// ErrInvalidFormat is returned when a textual id is not valid hexadecimal with
// the expected 8-4-4-4-12 grouping, or when a binary id has the wrong length.
var ErrInvalidFormat = errors.New("invalid identifier format")

// Encode parses a canonical id string into its 16-byte binary form.
func Encode(s string) ([]byte, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	b := make([]byte, Size)
	copy(b, id[:])

	return b, nil
}

// Decode renders a 16-byte binary id back into the canonical hyphenated form.
func Decode(b []byte) (string, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: got %d bytes", ErrInvalidFormat, len(b))
	}

	return id.String(), nil
}
