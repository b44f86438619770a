package cookfmt

import (
	"strconv"
	"strings"
)

type legendEntry struct {
	ingredient *Ingredient
	pos        int
}

// stepText walks a step's items in order and produces the narrative
// text with embedded styled tokens plus the legend line listing the
// deduplicated ingredients the step uses. A step that queues no
// ingredient renders the literal "[-]" legend.
func (r *renderer) stepText(recipe *Recipe, section *Section, step *Step) (string, string) {
	var text strings.Builder
	groups := groupStepIngredients(recipe, step)
	var legend []legendEntry

	for _, item := range step.Items {
		switch item.Kind {
		case ItemText:
			text.WriteString(item.Text)
		case ItemIngredient:
			ig := &recipe.Ingredients[item.Index]
			text.WriteString(r.st.Ingredient.Paint(ig.displayName()))
			pos := groups.subscriptPos(ig.Name, item.Index)
			if pos > 0 {
				writeSubscript(&text, strconv.Itoa(pos))
			}
			if groups.inLegend(ig.Name, item.Index) {
				legend = append(legend, legendEntry{ingredient: ig, pos: pos})
			}
		case ItemCookware:
			cw := &recipe.Cookware[item.Index]
			text.WriteString(r.st.Cookware.Paint(cw.displayName()))
		case ItemTimer:
			r.writeTimer(&text, &recipe.Timers[item.Index])
		case ItemInlineQuantity:
			q := recipe.InlineQuantities[item.Index]
			text.WriteString(r.st.InlineQuantity.Paint(r.quantityFmt(q)))
		default:
			panic("cookfmt: unknown step item kind")
		}
	}

	return text.String(), r.legendText(legend, section)
}

// legendText renders the bracketed ingredient legend. Entry fields keep
// a fixed order: display name, subscript, "(opt)" marker, intermediate
// reference, quantity.
func (r *renderer) legendText(legend []legendEntry, section *Section) string {
	if len(legend) == 0 {
		return "[-]"
	}
	var b strings.Builder
	b.WriteString("[")
	for i, entry := range legend {
		ig := entry.ingredient
		b.WriteString(ig.displayName())
		if entry.pos > 0 {
			writeSubscript(&b, strconv.Itoa(entry.pos))
		}
		if ig.Modifiers.IsOptional() {
			b.WriteString(r.st.OptMarker.Paint(" (opt)"))
		}
		if ref, ok := intermediateRefText(ig, section); ok {
			b.WriteString(r.st.IntermediateRef.Paint(" from " + ref))
		}
		if ig.Quantity != nil {
			b.WriteString(": ")
			b.WriteString(r.st.StepQuantity.Paint(r.quantityFmt(*ig.Quantity)))
		}
		if i != len(legend)-1 {
			b.WriteString(", ")
		}
	}
	b.WriteString("]")
	return b.String()
}

// writeTimer renders a timer inline. At least one of quantity and name
// is guaranteed upstream; a timer with neither never reaches the
// renderer.
func (r *renderer) writeTimer(b *strings.Builder, t *Timer) {
	switch {
	case t.Quantity != nil && t.Name != "":
		b.WriteString(r.st.Timer.Paint(r.quantityFmt(*t.Quantity)))
		b.WriteString(" (")
		b.WriteString(r.st.Timer.Paint(t.Name))
		b.WriteString(")")
	case t.Quantity != nil:
		b.WriteString(r.st.Timer.Paint(r.quantityFmt(*t.Quantity)))
	case t.Name != "":
		b.WriteString(r.st.Timer.Paint(t.Name))
	default:
		panic("cookfmt: timer with neither quantity nor name")
	}
}

// quantityFmt renders a quantity as "value" or "value unit" with the
// unit styled distinctly from the value.
func (r *renderer) quantityFmt(q Quantity) string {
	value := formatValue(q.Value)
	if q.Unit != "" {
		return value + " " + r.st.Unit.Paint(q.Unit)
	}
	return value
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
