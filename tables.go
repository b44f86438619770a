package cookfmt

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	fixedGlyph = "⚠" // ⚠ fixed value, needs manual adjustment
	errorGlyph = "⯃" // ⯃ error during scaling
)

type groupedIngredient struct {
	ingredient *Ingredient
	quantities []Quantity
	outcome    ScaleOutcome
}

// groupIngredients aggregates ingredient occurrences across the whole
// recipe by name, in first-seen order. Same-unit quantities are summed,
// differing units accumulate side by side; the group outcome is the
// most severe outcome of its occurrences.
func groupIngredients(recipe *Recipe) []groupedIngredient {
	var order []string
	byName := make(map[string]*groupedIngredient)
	for i := range recipe.Ingredients {
		ig := &recipe.Ingredients[i]
		entry, ok := byName[ig.Name]
		if !ok {
			entry = &groupedIngredient{ingredient: ig}
			byName[ig.Name] = entry
			order = append(order, ig.Name)
		}
		if ig.Quantity != nil {
			entry.quantities = addQuantity(entry.quantities, *ig.Quantity)
		}
		if ig.Outcome > entry.outcome {
			entry.outcome = ig.Outcome
		}
	}
	out := make([]groupedIngredient, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	return out
}

type groupedCookware struct {
	cookware *Cookware
	amounts  []Quantity
}

// groupCookware combines cookware amounts across occurrences of the
// same name. Cookware carries no scale outcome; amounts are never
// scaled.
func groupCookware(recipe *Recipe) []groupedCookware {
	var order []string
	byName := make(map[string]*groupedCookware)
	for i := range recipe.Cookware {
		cw := &recipe.Cookware[i]
		entry, ok := byName[cw.Name]
		if !ok {
			entry = &groupedCookware{cookware: cw}
			byName[cw.Name] = entry
			order = append(order, cw.Name)
		}
		if cw.Quantity != nil {
			entry.amounts = addQuantity(entry.amounts, *cw.Quantity)
		}
	}
	out := make([]groupedCookware, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	return out
}

func addQuantity(list []Quantity, q Quantity) []Quantity {
	for i := range list {
		if list[i].Unit == q.Unit {
			list[i].Value += q.Value
			return list
		}
	}
	return append(list, q)
}

// ingredientRows builds the ingredient table rows and reports which
// outcome glyphs occurred so the caller can emit the matching legend.
func (r *renderer) ingredientRows(recipe *Recipe) (rows [][]string, fixed, errored bool) {
	for _, entry := range groupIngredients(recipe) {
		ig := entry.ingredient
		if !ig.shouldBeListed() {
			continue
		}
		var outcomeStyle Style
		glyph := ""
		switch entry.outcome {
		case ScaleFixed:
			outcomeStyle = r.st.FixedMarker
			glyph = " " + fixedGlyph
			fixed = true
		case ScaleError:
			outcomeStyle = r.st.ErrorMarker
			glyph = " " + errorGlyph
			errored = true
		}
		optional := ""
		if ig.Modifiers.IsOptional() {
			optional = r.st.OptMarker.Paint("(optional)")
		}
		parts := make([]string, 0, len(entry.quantities))
		for _, q := range entry.quantities {
			parts = append(parts, outcomeStyle.Paint(r.quantityFmt(q)))
		}
		quantities := strings.Join(parts, ", ") + outcomeStyle.Paint(glyph)
		note := ""
		if ig.Note != "" {
			note = "(" + ig.Note + ")"
		}
		rows = append(rows, []string{ig.displayName(), optional, quantities, note})
	}
	return rows, fixed, errored
}

// cookwareRows builds the cookware table rows.
func (r *renderer) cookwareRows(recipe *Recipe) [][]string {
	var rows [][]string
	for _, entry := range groupCookware(recipe) {
		cw := entry.cookware
		if !cw.shouldBeListed() {
			continue
		}
		optional := ""
		if cw.Modifiers.IsOptional() {
			optional = "(optional)"
		}
		parts := make([]string, 0, len(entry.amounts))
		for _, q := range entry.amounts {
			parts = append(parts, r.quantityFmt(q))
		}
		note := ""
		if cw.Note != "" {
			note = "(" + cw.Note + ")"
		}
		rows = append(rows, []string{cw.displayName(), optional, strings.Join(parts, ", "), note})
	}
	return rows
}

// renderColumns lays rows out as borderless left-aligned columns with a
// two-space left margin. Cell widths are printable widths; embedded
// ANSI sequences do not skew alignment.
func renderColumns(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}
	tw := table.NewWriter()
	style := table.StyleDefault
	style.Options = table.OptionsNoBordersAndSeparators
	style.Box.PaddingLeft = ""
	style.Box.PaddingRight = "  "
	tw.SetStyle(style)
	for _, row := range rows {
		cells := make(table.Row, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		tw.AppendRow(cells)
	}
	rendered := strings.Split(tw.Render(), "\n")
	out := make([]string, 0, len(rendered))
	for _, line := range rendered {
		out = append(out, "  "+strings.TrimRight(line, " "))
	}
	return out
}
