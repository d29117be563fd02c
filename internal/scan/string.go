package scan

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/valyala/bytebufferpool"
)

// Unquote decodes a quoted segment into its unescaped text. Two-character
// escapes map per the JSON grammar, \uXXXX decodes four hex digits to one
// UTF-16 code unit (adjacent surrogate halves are combined), and an
// unrecognized backslash sequence passes through literally. A segment of
// length <= 2 decodes to the empty string.
func Unquote(seg string) string {
	if len(seg) <= 2 {
		return ""
	}

	end := len(seg)
	if seg[end-1] == '"' {
		end--
	}

	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	for i := 1; i < end; i++ {
		c := seg[i]
		if c != '\\' || i+1 >= end {
			bb.B = append(bb.B, c)
			continue
		}
		i++
		switch seg[i] {
		case '"':
			bb.B = append(bb.B, '"')
		case '\\':
			bb.B = append(bb.B, '\\')
		case '/':
			bb.B = append(bb.B, '/')
		case 'n':
			bb.B = append(bb.B, '\n')
		case 'r':
			bb.B = append(bb.B, '\r')
		case 't':
			bb.B = append(bb.B, '\t')
		case 'b':
			bb.B = append(bb.B, '\b')
		case 'f':
			bb.B = append(bb.B, '\f')
		case 'u':
			r, n, ok := decodeUnicodeEscape(seg[i-1 : end])
			if !ok {
				bb.B = append(bb.B, '\\', 'u')
				continue
			}
			bb.B = utf8.AppendRune(bb.B, r)
			i += n - 2
		default:
			bb.B = append(bb.B, '\\', seg[i])
		}
	}
	return string(bb.B)
}

// decodeUnicodeEscape decodes a leading \uXXXX sequence, consuming a trailing
// low surrogate when the first code unit is a high surrogate. Returns the
// rune, the number of bytes consumed, and whether the hex digits were valid.
func decodeUnicodeEscape(s string) (rune, int, bool) {
	u1, ok := hex4(s[2:])
	if !ok {
		return 0, 0, false
	}
	r := rune(u1)
	n := 6
	if utf16.IsSurrogate(r) && len(s) >= 12 && s[6] == '\\' && s[7] == 'u' {
		if u2, ok := hex4(s[8:]); ok {
			if dec := utf16.DecodeRune(r, rune(u2)); dec != utf8.RuneError {
				return dec, 12, true
			}
		}
	}
	if utf16.IsSurrogate(r) {
		r = utf8.RuneError
	}
	return r, n, true
}

func hex4(s string) (uint16, bool) {
	if len(s) < 4 {
		return 0, false
	}
	var v uint16
	for i := 0; i < 4; i++ {
		v <<= 4
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			v |= uint16(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint16(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= uint16(c-'A') + 10
		default:
			return 0, false
		}
	}
	return v, true
}

// AppendQuoted appends s to dst as a quoted JSON string literal. Quote,
// backslash and the named control characters use their two-character escapes;
// other characters below 0x20 encode as \u00XX; everything else copies
// verbatim.
func AppendQuoted(dst []byte, s string) []byte {
	const hexDigits = "0123456789abcdef"

	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		default:
			if c < 0x20 {
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
			} else {
				dst = append(dst, c)
			}
		}
	}
	return append(dst, '"')
}
