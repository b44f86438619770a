package cookfmt

import (
	"errors"
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
)

func pancakes() *Recipe {
	return &Recipe{
		Metadata: Metadata{
			Emoji:       "🥞",
			Tags:        []string{"breakfast"},
			Description: "Fluffy pancakes.",
			Author:      "Ada",
			Time:        &RecipeTime{Prep: 10, Cook: 20},
			Servings:    []int{2, 4},
			Extra:       []MetaPair{{Key: "difficulty", Value: "easy"}},
		},
		Scaled: &ScaledData{TargetServings: 4, Index: 1},
		Ingredients: []Ingredient{
			{Name: "flour", Quantity: qty(200, "g")},
			{Name: "milk", Quantity: qty(30, "cl")},
			{Name: "salt"},
		},
		Cookware: []Cookware{{Name: "bowl", Quantity: qty(1, "")}},
		Timers:   []Timer{{Name: "rest", Quantity: qty(10, "min")}},
		Sections: []Section{{Content: []Content{
			{Kind: ContentStep, Step: itemsStep(1,
				Item{Kind: ItemText, Text: "Mix "},
				ingredientItem(0),
				Item{Kind: ItemText, Text: " with "},
				ingredientItem(1),
			)},
			{Kind: ContentStep, Step: itemsStep(2,
				Item{Kind: ItemText, Text: "Rest "},
				Item{Kind: ItemTimer, Index: 0},
			)},
		}}},
	}
}

func TestRenderFullDocument(t *testing.T) {
	out := renderToString(t, pancakes(), "Pancakes", 0, boringTheme(t))
	want := []string{
		" 🥞 Pancakes ",
		"#breakfast",
		"",
		"│ Fluffy pancakes.",
		"",
		"author: Ada",
		"prep time: 10m",
		"cook time: 20m",
		"total time: 30m",
		"servings: 2|[4]",
		"difficulty: easy",
		"",
		"Ingredients:",
		"  flour    200 g",
		"  milk     30 cl",
		"  salt",
		"",
		"Cookware:",
		"  bowl    1",
		"",
		"Steps:",
		" 1. Mix flour with milk",
		"     [flour: 200 g, milk: 30 cl]",
		" 2. Rest 10 min (rest)",
		"     [-]",
		"",
	}
	got := strings.Split(out, "\n")
	if len(got) != len(want) {
		t.Fatalf("line count = %d, want %d\n%q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d\nwant: %q\n got: %q", i+1, want[i], got[i])
		}
	}
}

func TestRenderNilChecks(t *testing.T) {
	var buf strings.Builder
	if err := Render(RenderRequest{Writer: &buf}); err == nil {
		t.Fatalf("nil recipe should be rejected")
	}
	if err := Render(RenderRequest{Recipe: &Recipe{}}); err == nil {
		t.Fatalf("nil writer should be rejected")
	}
}

func TestRenderSingleSectionHasNoDivider(t *testing.T) {
	out := renderToString(t, pancakes(), "Pancakes", 0, boringTheme(t))
	if strings.Contains(out, "§") {
		t.Fatalf("single-section recipe should not draw dividers:\n%s", out)
	}
}

func TestRenderMultiSectionDividers(t *testing.T) {
	recipe := &Recipe{
		Sections: []Section{
			{Name: "Dough", Content: []Content{
				{Kind: ContentStep, Step: itemsStep(1, Item{Kind: ItemText, Text: "Knead."})},
			}},
			{Name: "Filling", Content: []Content{
				{Kind: ContentStep, Step: itemsStep(1, Item{Kind: ItemText, Text: "Stir."})},
			}},
		},
	}
	out := renderToString(t, recipe, "Pie", 40, boringTheme(t))
	lines := strings.Split(out, "\n")
	var dividers []string
	for _, line := range lines {
		if strings.Contains(line, "§") {
			dividers = append(dividers, line)
		}
	}
	if len(dividers) != 2 {
		t.Fatalf("expected 2 dividers, got %q", dividers)
	}
	// "─── § 1 ───" is 11 printable cells; centered in 40 leaves 14
	// cells of left padding and no trailing padding.
	if dividers[0] != strings.Repeat(" ", 14)+"─── § 1 ───" {
		t.Fatalf("divider = %q", dividers[0])
	}
	if !strings.Contains(out, "Dough:") || !strings.Contains(out, "Filling:") {
		t.Fatalf("section names missing:\n%s", out)
	}
}

func TestRenderServingsDefaultHighlight(t *testing.T) {
	recipe := &Recipe{Metadata: Metadata{Servings: []int{2, 4}}}
	out := renderToString(t, recipe, "Soup", 0, boringTheme(t))
	if !strings.Contains(out, "servings: [2]|4") {
		t.Fatalf("unscaled recipe should highlight the first alternative:\n%s", out)
	}
}

func TestRenderServingsMissedTarget(t *testing.T) {
	recipe := &Recipe{
		Metadata: Metadata{Servings: []int{2, 4}},
		Scaled:   &ScaledData{TargetServings: 5, Index: -1},
	}
	out := renderToString(t, recipe, "Soup", 0, boringTheme(t))
	if !strings.Contains(out, "servings: 2|4 → 5") {
		t.Fatalf("missed target should strike the list and show the target:\n%s", out)
	}
}

func TestRenderScalingLegend(t *testing.T) {
	recipe := &Recipe{
		Ingredients: []Ingredient{
			{Name: "salt", Quantity: qty(1, "tsp"), Outcome: ScaleFixed},
			{Name: "salt", Quantity: qty(1, "pinch"), Outcome: ScaleFixed},
			{Name: "yeast", Quantity: qty(7, "g"), Outcome: ScaleError},
		},
	}
	out := renderToString(t, recipe, "Bread", 0, boringTheme(t))
	if got := strings.Count(out, fixedGlyph+" fixed value"); got != 1 {
		t.Fatalf("fixed legend should appear exactly once, got %d:\n%s", got, out)
	}
	if !strings.Contains(out, fixedGlyph+" fixed value | "+errorGlyph+" error scaling") {
		t.Fatalf("combined legend missing:\n%s", out)
	}
}

func TestRenderTextContent(t *testing.T) {
	recipe := &Recipe{
		Sections: []Section{{Content: []Content{
			{Kind: ContentStep, Step: itemsStep(1, Item{Kind: ItemText, Text: "Chop."})},
			{Kind: ContentText, Text: "Best served warm."},
		}}},
	}
	out := renderToString(t, recipe, "Salad", 0, boringTheme(t))
	if !strings.Contains(out, "\n\n  Best served warm.\n\n") {
		t.Fatalf("text content should render blank-padded and indented:\n%q", out)
	}
}

func TestRenderWidthBounds(t *testing.T) {
	recipe := &Recipe{
		Metadata: Metadata{
			Description: strings.Repeat("A rich and layered dish that rewards patience. ", 3),
		},
		Sections: []Section{{Content: []Content{
			{Kind: ContentStep, Step: itemsStep(1, Item{Kind: ItemText,
				Text: strings.Repeat("stir gently and wait for the mixture to thicken ", 4)})},
		}}},
	}
	for width := 20; width <= 80; width += 12 {
		out := renderToString(t, recipe, "Stew", width, boringTheme(t))
		for i, line := range strings.Split(out, "\n") {
			if ansi.PrintableRuneWidth(line) > width {
				t.Fatalf("width %d: line %d exceeds width: %q", width, i+1, line)
			}
		}
	}
}

type failWriter struct {
	writes int
	limit  int
}

func (w *failWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes > w.limit {
		return 0, errors.New("sink closed")
	}
	return len(p), nil
}

func TestRenderPropagatesWriteErrors(t *testing.T) {
	for limit := 0; limit < 8; limit++ {
		w := &failWriter{limit: limit}
		err := Render(RenderRequest{
			Recipe: pancakes(),
			Name:   "Pancakes",
			Writer: w,
			Theme:  boringTheme(t),
		})
		if err == nil {
			t.Fatalf("limit %d: expected write error", limit)
		}
	}
}
