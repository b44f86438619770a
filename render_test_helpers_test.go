package cookfmt

import (
	"bytes"
	"regexp"
	"testing"
)

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func renderToString(t *testing.T, recipe *Recipe, name string, width int, theme Theme) string {
	t.Helper()
	var buf bytes.Buffer
	err := Render(RenderRequest{
		Recipe: recipe,
		Name:   name,
		Writer: &buf,
		Width:  width,
		Theme:  theme,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func boringTheme(t *testing.T) Theme {
	t.Helper()
	theme, ok := ThemeByName("boring")
	if !ok {
		t.Fatalf("boring theme missing")
	}
	return theme
}

func boringRenderer() *renderer {
	return &renderer{width: DefaultWidth, st: Styles{}}
}

func qty(value float64, unit string) *Quantity {
	return &Quantity{Value: value, Unit: unit}
}
