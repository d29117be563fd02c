// Package timefmt holds the canonical timestamp format used by the codec.
package timefmt

import (
	"time"
)

// Format renders value in its round-trip form. The UTC offset is preserved,
// so re-parsing the result reproduces the same instant and zone offset.
func Format(value time.Time) string {
	return value.Format(time.RFC3339Nano)
}

// Parse reads an RFC 3339 timestamp, with either a Z suffix or a numeric
// offset. https://tools.ietf.org/html/rfc3339
func Parse(value string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, value)
}
