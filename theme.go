package cookfmt

import (
	"sort"
	"strings"

	"pkt.systems/cookfmt/internal/palette"
)

const ansiReset = "\x1b[0m"

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Paint wraps text in the style's prefix and a reset. An empty style
// returns the text unchanged so the boring theme stays byte-clean.
func (s Style) Paint(text string) string {
	if s.Prefix == "" || text == "" {
		return text
	}
	return s.Prefix + text + ansiReset
}

// Styles groups the semantic styles used by the renderer.
type Styles struct {
	Title            Style
	Ingredient       Style
	Cookware         Style
	Timer            Style
	InlineQuantity   Style
	Unit             Style
	MetaKey          Style
	SectionName      Style
	OptMarker        Style
	IntermediateRef  Style
	StepQuantity     Style
	SelectedServings Style
	StruckServings   Style
	TargetServings   Style
	FixedMarker      Style
	ErrorMarker      Style
	Tags             [7]Style
}

// Theme provides named styles for recipe rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	s := Styles{
		Title:            style(p.Title),
		Ingredient:       style(p.Ingredient),
		Cookware:         style(p.Cookware),
		Timer:            style(p.Timer),
		InlineQuantity:   style(p.InlineQuantity),
		Unit:             style(p.Unit),
		MetaKey:          style(p.MetaKey),
		SectionName:      style(p.SectionName),
		OptMarker:        style(p.OptMarker),
		IntermediateRef:  style(p.IntermediateRef),
		StepQuantity:     style(p.StepQuantity),
		SelectedServings: style(p.SelectedServings),
		StruckServings:   style(p.StruckServings),
		TargetServings:   style(p.TargetServings),
		FixedMarker:      style(p.FixedMarker),
		ErrorMarker:      style(p.ErrorMarker),
	}
	for i, tag := range p.Tags {
		s.Tags[i] = style(tag)
	}
	return s
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"boring":  theme{name: "boring", styles: Styles{}},
	"gruvbox": theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteGruvbox)},
	"nord":    theme{name: "nord", styles: stylesFromPalette(palette.PaletteNord)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// tagStyleIndex hashes a tag into one of the 7 tag palette slots: the
// wrapping sum of codepoint*position reduced modulo 7. The same tag maps
// to the same slot within and across runs.
func tagStyleIndex(tag string) int {
	var hash uint
	var pos uint
	for _, r := range tag {
		hash += uint(r) * pos
		pos++
	}
	return int(hash % 7)
}
