// Package uuid provides the opaque identifier value type handled natively by
// the codec, with canonical dash-formatted text round-tripping and version 4
// generation.
package uuid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

const dash byte = '-'

// UUID is a 16-byte universally unique identifier.
type UUID [16]byte

// Nil is the zero UUID.
var Nil UUID

// String returns the canonical text representation of the UUID.
// This implementation is optimized to not use fmt.
// Example: 82e42f16-b6cc-4d5b-95f5-d403c4befd3d
func (u UUID) String() string {
	// https://en.wikipedia.org/wiki/Universally_unique_identifier#Version_4_.28random.29

	var scratch [36]byte

	hex.Encode(scratch[:8], u[0:4])
	scratch[8] = dash
	hex.Encode(scratch[9:13], u[4:6])
	scratch[13] = dash
	hex.Encode(scratch[14:18], u[6:8])
	scratch[18] = dash
	hex.Encode(scratch[19:23], u[8:10])
	scratch[23] = dash
	hex.Encode(scratch[24:], u[10:])

	return string(scratch[:])
}

// IsZero reports whether the UUID is the zero value.
func (u UUID) IsZero() bool {
	return u == Nil
}

// Parse decodes the canonical dash-formatted text representation.
func Parse(s string) (UUID, error) {
	if len(s) != 36 || s[8] != dash || s[13] != dash || s[18] != dash || s[23] != dash {
		return Nil, fmt.Errorf("invalid UUID format, %q", s)
	}

	var u UUID
	for _, span := range [...][3]int{
		{0, 8, 0}, {9, 13, 4}, {14, 18, 6}, {19, 23, 8}, {24, 36, 10},
	} {
		if _, err := hex.Decode(u[span[2]:], []byte(s[span[0]:span[1]])); err != nil {
			return Nil, fmt.Errorf("invalid UUID format, %q", s)
		}
	}
	return u, nil
}

// New returns a random version 4 UUID using crypto/rand entropy.
func New() (UUID, error) {
	return NewFrom(rand.Reader)
}

// NewFrom returns a random version 4 UUID reading entropy from r.
func NewFrom(r io.Reader) (UUID, error) {
	var u UUID
	if _, err := io.ReadFull(r, u[:]); err != nil {
		return Nil, err
	}

	// Set the version and variant bits per RFC 4122 section 4.4.
	u[6] = (u[6] & 0x0f) | 0x40
	u[8] = (u[8] & 0x3f) | 0x80

	return u, nil
}
