package cookfmt

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

// WordSeparator splits text into wrappable units. When a separator
// keeps trailing separator text attached to its units, line assembly
// adds no glue of its own between them.
type WordSeparator func(string) []string

// SeparatorWhitespace splits on runs of whitespace. This is the default
// rule for narrative text; joined output is single-spaced.
func SeparatorWhitespace(text string) []string {
	return strings.Fields(text)
}

// SeparatorAfterCommaSpace splits after every literal ", " sequence.
// The step ingredient legend wraps with this rule so an entry never
// breaks before its trailing comma, even when display names or notes
// contain internal spaces.
func SeparatorAfterCommaSpace(text string) []string {
	if text == "" {
		return nil
	}
	return strings.SplitAfter(text, ", ")
}

type wrapOptions struct {
	initialIndent    string
	subsequentIndent string
	separator        WordSeparator
	glue             string
}

// wrapLines lays text out so that no line, indent included, exceeds
// width. Widths are printable widths: ANSI escape sequences embedded in
// the text count as zero columns. Empty input yields zero lines, not a
// single empty one. Units wider than a whole line are hard-broken at
// printable rune boundaries.
func wrapLines(text string, width int, opts wrapOptions) []string {
	separator := opts.separator
	glue := opts.glue
	if separator == nil {
		separator = SeparatorWhitespace
		glue = " "
	}
	words := separator(text)

	var out []string
	var line strings.Builder
	lineWidth := 0
	onLine := 0
	indent := opts.initialIndent

	open := func() {
		line.WriteString(indent)
		lineWidth = ansi.PrintableRuneWidth(indent)
		onLine = 0
	}
	flush := func() {
		out = append(out, line.String())
		line.Reset()
		indent = opts.subsequentIndent
		open()
	}

	open()
	glueWidth := ansi.PrintableRuneWidth(glue)
	for _, word := range words {
		if word == "" {
			continue
		}
		wordWidth := ansi.PrintableRuneWidth(word)
		if onLine > 0 && lineWidth+glueWidth+wordWidth > width {
			flush()
		}
		for onLine == 0 && lineWidth+wordWidth > width {
			avail := width - lineWidth
			if avail <= 0 {
				break
			}
			head, tail := splitAtWidth(word, avail)
			if head == "" {
				break
			}
			line.WriteString(head)
			flush()
			word = tail
			wordWidth = ansi.PrintableRuneWidth(word)
		}
		if word == "" {
			continue
		}
		if onLine > 0 {
			line.WriteString(glue)
			lineWidth += glueWidth
		}
		line.WriteString(word)
		lineWidth += wordWidth
		onLine++
	}
	if onLine > 0 {
		out = append(out, line.String())
	}
	return out
}

// splitAtWidth breaks s at the last rune boundary whose cumulative
// printable width fits limit, treating ANSI escape sequences as zero
// width and never breaking inside one.
func splitAtWidth(s string, limit int) (head, tail string) {
	if limit <= 0 {
		return "", s
	}
	width := 0
	inEscape := false
	for i, r := range s {
		if inEscape {
			if ansi.IsTerminator(r) {
				inEscape = false
			}
			continue
		}
		if r == ansi.Marker {
			inEscape = true
			continue
		}
		w := ansi.PrintableRuneWidth(string(r))
		if width+w > limit {
			return s[:i], s[i:]
		}
		width += w
	}
	return s, ""
}

// centerLine pads text with leading spaces so its printable width sits
// centered within width. Text wider than width is returned unchanged;
// no trailing padding is emitted.
func centerLine(text string, width int) string {
	pad := (width - ansi.PrintableRuneWidth(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}
