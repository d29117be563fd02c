// Package scan implements the text-level primitives of the codec: the
// whitespace condenser, the depth- and quote-aware top-level splitter, and the
// string literal codec. The splitter and condenser never fail; malformed input
// produces a best-effort result.
package scan

import (
	"sync"

	"github.com/valyala/bytebufferpool"
)

// Condense returns data with all whitespace outside of quoted strings removed.
// Quoted content is copied through opaquely, including escaped quotes. The
// parser runs on condensed text so that structural bytes are always adjacent.
func Condense(data []byte) string {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	inQuote := false
	for i := 0; i < len(data); i++ {
		c := data[i]
		if inQuote {
			bb.B = append(bb.B, c)
			if c == '\\' && i+1 < len(data) {
				i++
				bb.B = append(bb.B, data[i])
			} else if c == '"' {
				inQuote = false
			}
			continue
		}
		switch c {
		case ' ', '\t', '\n', '\r':
		case '"':
			inQuote = true
			bb.B = append(bb.B, c)
		default:
			bb.B = append(bb.B, c)
		}
	}
	return string(bb.B)
}

var segmentPool = sync.Pool{
	New: func() interface{} {
		segs := make([]string, 0, 8)
		return &segs
	},
}

// Split separates container text bounded by {} or [] into its ordered
// top-level segments, cutting on ',' and ':' only at nesting depth zero and
// never inside quoted text. An empty container (length <= 2) yields no
// segments. Unbalanced bracketing still returns a best-effort split.
//
// The returned slice is borrowed from a pool; callers hand it back with
// Recycle once the segments are no longer referenced.
func Split(s string) []string {
	sp := segmentPool.Get().(*[]string)
	segs := (*sp)[:0]

	if len(s) <= 2 {
		return segs
	}

	end := len(s)
	if c := s[end-1]; c == '}' || c == ']' {
		end--
	}

	depth := 0
	inQuote := false
	start := 1
	for i := 1; i < end; i++ {
		switch c := s[i]; {
		case inQuote:
			if c == '\\' {
				i++
			} else if c == '"' {
				inQuote = false
			}
		case c == '"':
			inQuote = true
		case c == '{' || c == '[':
			depth++
		case c == '}' || c == ']':
			depth--
		case (c == ',' || c == ':') && depth == 0:
			segs = append(segs, s[start:i])
			start = i + 1
		}
	}
	segs = append(segs, s[start:end])
	return segs
}

// Recycle returns a segment slice obtained from Split to the pool.
func Recycle(segs []string) {
	if cap(segs) == 0 {
		return
	}
	segs = segs[:0]
	segmentPool.Put(&segs)
}
