package cookfmt

// Recipe is a fully parsed and scaled recipe, ready for rendering. All
// fields are produced upstream (parser, scaler, metadata extractor) and
// are read-only for the duration of a render. Ingredients, cookware,
// timers and inline quantities live in flat slices; step items address
// them by position. Index validity is an upstream contract, enforced
// once at the decode boundary (see package recipefile), never re-checked
// per access.
type Recipe struct {
	Sections         []Section
	Ingredients      []Ingredient
	Cookware         []Cookware
	Timers           []Timer
	InlineQuantities []Quantity
	Metadata         Metadata
	Scaled           *ScaledData
}

// ScaledData describes the scaling target the scaler applied. Index is
// the position of the matched entry in Metadata.Servings, or -1 when
// the exact target was not one of the declared alternatives.
type ScaledData struct {
	TargetServings int
	Index          int
}

// Section is a named (or anonymous) run of steps and free text.
type Section struct {
	Name    string
	Content []Content
}

// ContentKind tags the Content sum type.
type ContentKind uint8

const (
	// ContentStep is a numbered step.
	ContentStep ContentKind = iota
	// ContentText is a freeform paragraph between steps.
	ContentText
)

// Content is one entry of a section: either a step or free text.
type Content struct {
	Kind ContentKind
	Step *Step
	Text string
}

// Step is an ordered run of items with a stable display number.
type Step struct {
	Number int
	Items  []Item
}

// ItemKind tags the Item sum type.
type ItemKind uint8

const (
	// ItemText is a literal text fragment.
	ItemText ItemKind = iota
	// ItemIngredient references Recipe.Ingredients by position.
	ItemIngredient
	// ItemCookware references Recipe.Cookware by position.
	ItemCookware
	// ItemTimer references Recipe.Timers by position.
	ItemTimer
	// ItemInlineQuantity references Recipe.InlineQuantities by position.
	ItemInlineQuantity
)

// Item is one inline element of a step. Text carries the literal for
// ItemText; Index addresses the recipe-level slice for every other kind.
type Item struct {
	Kind  ItemKind
	Text  string
	Index int
}

// Modifiers is the modifier set of an ingredient or cookware occurrence.
type Modifiers uint8

const (
	// ModOptional marks an occurrence the cook may leave out.
	ModOptional Modifiers = 1 << iota
	// ModHidden keeps an occurrence out of the aggregate listings.
	ModHidden
	// ModReference marks a re-reference of an earlier definition.
	ModReference
)

// IsOptional reports the optional modifier.
func (m Modifiers) IsOptional() bool { return m&ModOptional != 0 }

// IsHidden reports the hidden-from-listing modifier.
func (m Modifiers) IsHidden() bool { return m&ModHidden != 0 }

// IsReference reports the reference modifier.
func (m Modifiers) IsReference() bool { return m&ModReference != 0 }

// RefKind tags what an ingredient relation points at.
type RefKind uint8

const (
	// RefNone means the occurrence is a plain ingredient.
	RefNone RefKind = iota
	// RefSection points at a prior section (recipe-wide index).
	RefSection
	// RefStep points at a prior step (content index within the same
	// section as the referencing occurrence).
	RefStep
)

// Relation describes whether an ingredient occurrence denotes the
// result of a prior section or step instead of a physical ingredient.
type Relation struct {
	Kind   RefKind
	Target int
}

// IsIntermediate reports whether the relation points at a prior
// section or step.
func (r Relation) IsIntermediate() bool { return r.Kind != RefNone }

// ScaleOutcome classifies how quantity scaling resolved for one
// ingredient occurrence. The order encodes severity: aggregation keeps
// the highest outcome of a group.
type ScaleOutcome uint8

const (
	// ScaleNoQuantity means there was nothing to scale.
	ScaleNoQuantity ScaleOutcome = iota
	// ScaleScaled means the quantity scaled cleanly.
	ScaleScaled
	// ScaleFixed means the quantity could not scale and kept its
	// original value; it needs manual adjustment.
	ScaleFixed
	// ScaleError means scaling failed outright.
	ScaleError
)

// Ingredient is one ingredient occurrence. Name is the identity key
// used for grouping; DisplayName, when set, is the presentation form.
type Ingredient struct {
	Name          string
	DisplayName   string
	Quantity      *Quantity
	Note          string
	Modifiers     Modifiers
	Relation      Relation
	Outcome       ScaleOutcome
	OutcomeDetail string
}

func (ig *Ingredient) displayName() string {
	if ig.DisplayName != "" {
		return ig.DisplayName
	}
	return ig.Name
}

func (ig *Ingredient) shouldBeListed() bool {
	return !ig.Modifiers.IsHidden() && !ig.Relation.IsIntermediate()
}

// Cookware is one cookware occurrence.
type Cookware struct {
	Name        string
	DisplayName string
	Quantity    *Quantity
	Note        string
	Modifiers   Modifiers
}

func (cw *Cookware) displayName() string {
	if cw.DisplayName != "" {
		return cw.DisplayName
	}
	return cw.Name
}

func (cw *Cookware) shouldBeListed() bool { return !cw.Modifiers.IsHidden() }

// Timer has a quantity, a name, or both. A timer with neither is an
// upstream contract violation; the renderer panics on it.
type Timer struct {
	Name     string
	Quantity *Quantity
}

// Quantity is a numeric value with an optional unit.
type Quantity struct {
	Value float64
	Unit  string
}

// Metadata carries the extracted recipe metadata. The well-known fields
// are typed; everything else the extractor whitelists lands in Extra in
// insertion order, which is also display order.
type Metadata struct {
	Emoji       string
	Tags        []string
	Description string
	Author      string
	Source      string
	Time        *RecipeTime
	Servings    []int
	Extra       []MetaPair
}

// MetaPair is one leftover scalar metadata entry.
type MetaPair struct {
	Key   string
	Value string
}

// IsEmpty reports whether no metadata line would render.
func (m *Metadata) IsEmpty() bool {
	return m.Author == "" && m.Source == "" && m.Time == nil &&
		len(m.Servings) == 0 && len(m.Extra) == 0
}

// RecipeTime is either a single total time or a prep/cook composition,
// all in minutes.
type RecipeTime struct {
	Prep  int
	Cook  int
	Total int
}

// Composed reports whether the time splits into prep and cook parts.
func (t *RecipeTime) Composed() bool { return t.Prep > 0 || t.Cook > 0 }

// TotalMinutes returns the total time, deriving it from the parts for
// composed times.
func (t *RecipeTime) TotalMinutes() int {
	if t.Composed() {
		return t.Prep + t.Cook
	}
	return t.Total
}
