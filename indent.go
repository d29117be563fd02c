package placid

// Indent rewrites compact JSON text into its tab-indented form. The rewrite
// is purely textual and does not re-walk the value graph: an opening
// bracket/brace following a comma, or an opening brace following an opening
// bracket, starts a new line one level deeper; every closing bracket/brace
// starts a new line one level shallower; a quoted key directly after an
// opener or a comma starts a new line at the current depth, while a quoted
// value after a colon stays inline. Quoted content is copied by locating its
// true terminating quote rather than re-scanning it for structure.
func Indent(compact []byte) []byte {
	out := make([]byte, 0, len(compact)*2)
	depth := 0
	var prev byte

	newline := func(n int) {
		out = append(out, '\n')
		for i := 0; i < n; i++ {
			out = append(out, '\t')
		}
	}

	for i := 0; i < len(compact); i++ {
		c := compact[i]
		switch c {
		case '{', '[':
			if prev == ',' || (c == '{' && prev == '[') {
				newline(depth)
			}
			out = append(out, c)
			depth++

		case '}', ']':
			if depth > 0 {
				depth--
			}
			newline(depth)
			out = append(out, c)

		case '"':
			if prev == '{' || prev == '[' || prev == ',' {
				newline(depth)
			}
			end := quoteEnd(compact, i)
			out = append(out, compact[i:end]...)
			i = end - 1

		default:
			out = append(out, c)
		}
		prev = c
	}
	return out
}

// quoteEnd returns the index one past the terminating quote of the string
// literal starting at start, skipping escaped quotes.
func quoteEnd(s []byte, start int) int {
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(s)
}
