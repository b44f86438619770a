package cookfmt

import "fmt"

// stepGroups resolves ingredient deduplication for one step. original
// holds every occurrence index per ingredient name in appearance order;
// kept holds the subset that carries new information and therefore
// belongs in the step's legend line.
type stepGroups struct {
	original map[string][]int
	kept     map[string][]int
}

// groupStepIngredients groups a step's ingredient occurrences by name.
// An occurrence is kept for the legend when it has a quantity or is an
// intermediate reference; a group whose members all get filtered keeps
// its first occurrence so the ingredient still appears in the legend.
func groupStepIngredients(recipe *Recipe, step *Step) stepGroups {
	g := stepGroups{
		original: make(map[string][]int),
		kept:     make(map[string][]int),
	}
	for _, item := range step.Items {
		if item.Kind != ItemIngredient {
			continue
		}
		name := recipe.Ingredients[item.Index].Name
		g.original[name] = append(g.original[name], item.Index)
	}
	for name, group := range g.original {
		kept := make([]int, 0, len(group))
		for _, idx := range group {
			ig := &recipe.Ingredients[idx]
			if ig.Quantity != nil || ig.Relation.IsIntermediate() {
				kept = append(kept, idx)
			}
		}
		if len(kept) == 0 {
			kept = append(kept, group[0])
		}
		g.kept[name] = kept
	}
	return g
}

// subscriptPos returns the 1-based position of index within the
// original group, or 0 when the name occurs only once in the step.
// Subscripts number every original occurrence, including ones later
// filtered from the legend, so repeated mentions keep stable numbers.
func (g stepGroups) subscriptPos(name string, index int) int {
	group := g.original[name]
	if len(group) <= 1 {
		return 0
	}
	for i, idx := range group {
		if idx == index {
			return i + 1
		}
	}
	return 0
}

// inLegend reports whether the occurrence survived filtering and should
// appear in the step's legend line.
func (g stepGroups) inLegend(name string, index int) bool {
	for _, idx := range g.kept[name] {
		if idx == index {
			return true
		}
	}
	return false
}

// intermediateRefText renders the "section N" / "step N" target of an
// intermediate reference. Step targets index the content of the section
// the referencing occurrence lives in; pointing a step reference at
// non-step content is an upstream contract violation.
func intermediateRefText(ig *Ingredient, section *Section) (string, bool) {
	switch ig.Relation.Kind {
	case RefSection:
		return fmt.Sprintf("section %d", ig.Relation.Target+1), true
	case RefStep:
		content := section.Content[ig.Relation.Target]
		if content.Kind != ContentStep || content.Step == nil {
			panic("cookfmt: step reference targets non-step content")
		}
		return fmt.Sprintf("step %d", content.Step.Number), true
	}
	return "", false
}
