package cookfmt

import (
	"sort"
	"strings"
	"testing"
)

func TestStylePaint(t *testing.T) {
	s := Style{Prefix: "\x1b[1m"}
	if got := s.Paint("hello"); got != "\x1b[1mhello\x1b[0m" {
		t.Fatalf("Paint = %q", got)
	}
	if got := (Style{}).Paint("hello"); got != "hello" {
		t.Fatalf("empty style should pass through, got %q", got)
	}
	if got := s.Paint(""); got != "" {
		t.Fatalf("empty text should stay empty, got %q", got)
	}
}

func TestThemeByName(t *testing.T) {
	theme, ok := ThemeByName("")
	if !ok || theme.Name() != "default" {
		t.Fatalf("empty name should resolve the default theme, got %v %v", theme, ok)
	}
	theme, ok = ThemeByName(" Nord ")
	if !ok || theme.Name() != "nord" {
		t.Fatalf("lookup should normalize case and spacing, got %v %v", theme, ok)
	}
	if _, ok := ThemeByName("neon"); ok {
		t.Fatalf("unknown theme should not resolve")
	}
}

func TestAvailableThemes(t *testing.T) {
	names := AvailableThemes()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	for _, want := range []string{"boring", "default", "gruvbox", "nord"} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("theme %q missing from %v", want, names)
		}
	}
}

func TestBoringThemeEmitsNoEscapes(t *testing.T) {
	recipe := &Recipe{
		Metadata: Metadata{Tags: []string{"breakfast", "quick"}},
		Ingredients: []Ingredient{
			{Name: "flour", Quantity: qty(200, "g"), Outcome: ScaleFixed},
		},
		Sections: []Section{{Content: []Content{
			{Kind: ContentStep, Step: itemsStep(1, Item{Kind: ItemText, Text: "Sift "}, ingredientItem(0))},
		}}},
	}
	out := renderToString(t, recipe, "Bread", 0, boringTheme(t))
	if strings.Contains(out, "\x1b") {
		t.Fatalf("boring theme leaked escape sequences:\n%q", out)
	}
}

func TestTagStyleIndex(t *testing.T) {
	if got := tagStyleIndex("breakfast"); got != 3 {
		t.Fatalf("tagStyleIndex(breakfast) = %d, want 3", got)
	}
	if got := tagStyleIndex(""); got != 0 {
		t.Fatalf("tagStyleIndex(empty) = %d, want 0", got)
	}
	for _, tag := range []string{"vegan", "dessert", "snabbt", "日本料理"} {
		idx := tagStyleIndex(tag)
		if idx < 0 || idx > 6 {
			t.Fatalf("tagStyleIndex(%q) = %d out of range", tag, idx)
		}
		if idx != tagStyleIndex(tag) {
			t.Fatalf("tagStyleIndex(%q) unstable", tag)
		}
	}
}

func TestTagsUseHashedPaletteSlot(t *testing.T) {
	st := Styles{}
	st.Tags[3] = Style{Prefix: "\x1b[33m"}
	recipe := &Recipe{Metadata: Metadata{Tags: []string{"breakfast"}}}
	out := renderToString(t, recipe, "Bread", 0, NewTheme("test", st))
	if !strings.Contains(out, "\x1b[33m#breakfast\x1b[0m") {
		t.Fatalf("tag slot 3 style not applied:\n%q", out)
	}
}
