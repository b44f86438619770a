package cookfmt

import "strings"

// writeSubscript appends s to b with ASCII digits mapped to their
// Unicode subscript glyphs. Non-digits pass through unchanged.
func writeSubscript(b *strings.Builder, s string) {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune('₀' + (r - '0'))
			continue
		}
		b.WriteRune(r)
	}
}

func subscript(s string) string {
	var b strings.Builder
	writeSubscript(&b, s)
	return b.String()
}
