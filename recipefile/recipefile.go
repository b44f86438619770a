// Package recipefile decodes canonical scaled-recipe documents into the
// cookfmt model. A document is the JSON or YAML output of an upstream
// parser/scaler; decoding validates the cross-array item indices and the
// timer contract once, so the renderer never re-checks them.
package recipefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"

	"pkt.systems/cookfmt"
)

// Format identifies a recipe document encoding.
type Format int

const (
	// FormatUnknown triggers detection by extension or sniffing.
	FormatUnknown Format = iota
	// FormatJSON decodes with sonic.
	FormatJSON
	// FormatYAML decodes with goccy/go-yaml.
	FormatYAML
)

// Document is one decoded recipe with its display name.
type Document struct {
	Name   string
	Recipe *cookfmt.Recipe
}

// Load reads and decodes the recipe document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("recipefile: %w", err)
	}
	format := DetectFormat(path, data)
	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("recipefile: %s: %w", filepath.Base(path), err)
	}
	return doc, nil
}

// Decode parses a recipe document from data.
func Decode(data []byte, format Format) (*Document, error) {
	if format == FormatUnknown {
		format = DetectFormat("", data)
	}
	var dto documentDTO
	switch format {
	case FormatJSON:
		if err := sonic.Unmarshal(data, &dto); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &dto); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown document format")
	}
	recipe, err := dto.toModel()
	if err != nil {
		return nil, err
	}
	if err := validate(recipe); err != nil {
		return nil, err
	}
	return &Document{Name: dto.Name, Recipe: recipe}, nil
}

// DetectFormat picks a format from the file extension, falling back to
// sniffing the first non-blank byte.
func DetectFormat(path string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	trimmed := strings.TrimLeft(string(data), " \t\r\n")
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return FormatJSON
	}
	if trimmed != "" {
		return FormatYAML
	}
	return FormatUnknown
}

type documentDTO struct {
	Name             string          `json:"name" yaml:"name"`
	Metadata         metadataDTO     `json:"metadata" yaml:"metadata"`
	Scale            *scaleDTO       `json:"scale" yaml:"scale"`
	Ingredients      []ingredientDTO `json:"ingredients" yaml:"ingredients"`
	Cookware         []cookwareDTO   `json:"cookware" yaml:"cookware"`
	Timers           []timerDTO      `json:"timers" yaml:"timers"`
	InlineQuantities []quantityDTO   `json:"inline_quantities" yaml:"inline_quantities"`
	Sections         []sectionDTO    `json:"sections" yaml:"sections"`
}

type metadataDTO struct {
	Emoji       string     `json:"emoji" yaml:"emoji"`
	Tags        []string   `json:"tags" yaml:"tags"`
	Description string     `json:"description" yaml:"description"`
	Author      string     `json:"author" yaml:"author"`
	Source      string     `json:"source" yaml:"source"`
	Time        *timeDTO   `json:"time" yaml:"time"`
	Servings    []int      `json:"servings" yaml:"servings"`
	Extra       []pairDTO  `json:"extra" yaml:"extra"`
}

type timeDTO struct {
	Prep  int `json:"prep" yaml:"prep"`
	Cook  int `json:"cook" yaml:"cook"`
	Total int `json:"total" yaml:"total"`
}

type pairDTO struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

type scaleDTO struct {
	TargetServings int  `json:"target_servings" yaml:"target_servings"`
	Index          *int `json:"index" yaml:"index"`
}

type quantityDTO struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit" yaml:"unit"`
}

func (q *quantityDTO) toModel() *cookfmt.Quantity {
	if q == nil {
		return nil
	}
	return &cookfmt.Quantity{Value: q.Value, Unit: q.Unit}
}

type relationDTO struct {
	Kind   string `json:"kind" yaml:"kind"`
	Target int    `json:"target" yaml:"target"`
}

type ingredientDTO struct {
	Name          string       `json:"name" yaml:"name"`
	DisplayName   string       `json:"display_name" yaml:"display_name"`
	Quantity      *quantityDTO `json:"quantity" yaml:"quantity"`
	Note          string       `json:"note" yaml:"note"`
	Optional      bool         `json:"optional" yaml:"optional"`
	Hidden        bool         `json:"hidden" yaml:"hidden"`
	Reference     bool         `json:"reference" yaml:"reference"`
	Relation      *relationDTO `json:"relation" yaml:"relation"`
	Outcome       string       `json:"outcome" yaml:"outcome"`
	OutcomeDetail string       `json:"outcome_detail" yaml:"outcome_detail"`
}

type cookwareDTO struct {
	Name        string       `json:"name" yaml:"name"`
	DisplayName string       `json:"display_name" yaml:"display_name"`
	Quantity    *quantityDTO `json:"quantity" yaml:"quantity"`
	Note        string       `json:"note" yaml:"note"`
	Optional    bool         `json:"optional" yaml:"optional"`
	Hidden      bool         `json:"hidden" yaml:"hidden"`
}

type timerDTO struct {
	Name     string       `json:"name" yaml:"name"`
	Quantity *quantityDTO `json:"quantity" yaml:"quantity"`
}

type sectionDTO struct {
	Name    string       `json:"name" yaml:"name"`
	Content []contentDTO `json:"content" yaml:"content"`
}

type contentDTO struct {
	Step *stepDTO `json:"step" yaml:"step"`
	Text string   `json:"text" yaml:"text"`
}

type stepDTO struct {
	Number int       `json:"number" yaml:"number"`
	Items  []itemDTO `json:"items" yaml:"items"`
}

type itemDTO struct {
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
	Index int    `json:"index" yaml:"index"`
}

func (d *documentDTO) toModel() (*cookfmt.Recipe, error) {
	recipe := &cookfmt.Recipe{
		Metadata: cookfmt.Metadata{
			Emoji:       d.Metadata.Emoji,
			Tags:        d.Metadata.Tags,
			Description: d.Metadata.Description,
			Author:      d.Metadata.Author,
			Source:      d.Metadata.Source,
			Servings:    d.Metadata.Servings,
		},
	}
	if t := d.Metadata.Time; t != nil {
		recipe.Metadata.Time = &cookfmt.RecipeTime{Prep: t.Prep, Cook: t.Cook, Total: t.Total}
	}
	for _, pair := range d.Metadata.Extra {
		recipe.Metadata.Extra = append(recipe.Metadata.Extra, cookfmt.MetaPair(pair))
	}
	if d.Scale != nil {
		index := -1
		if d.Scale.Index != nil {
			index = *d.Scale.Index
		}
		recipe.Scaled = &cookfmt.ScaledData{TargetServings: d.Scale.TargetServings, Index: index}
	}
	for i, ig := range d.Ingredients {
		model, err := ig.toModel()
		if err != nil {
			return nil, fmt.Errorf("ingredient %d: %w", i, err)
		}
		recipe.Ingredients = append(recipe.Ingredients, model)
	}
	for _, cw := range d.Cookware {
		recipe.Cookware = append(recipe.Cookware, cookfmt.Cookware{
			Name:        cw.Name,
			DisplayName: cw.DisplayName,
			Quantity:    cw.Quantity.toModel(),
			Note:        cw.Note,
			Modifiers:   modifiers(cw.Optional, cw.Hidden, false),
		})
	}
	for _, t := range d.Timers {
		recipe.Timers = append(recipe.Timers, cookfmt.Timer{
			Name:     t.Name,
			Quantity: t.Quantity.toModel(),
		})
	}
	for _, q := range d.InlineQuantities {
		recipe.InlineQuantities = append(recipe.InlineQuantities, cookfmt.Quantity{Value: q.Value, Unit: q.Unit})
	}
	for si, section := range d.Sections {
		model, err := section.toModel()
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", si, err)
		}
		recipe.Sections = append(recipe.Sections, model)
	}
	return recipe, nil
}

func (ig ingredientDTO) toModel() (cookfmt.Ingredient, error) {
	model := cookfmt.Ingredient{
		Name:          ig.Name,
		DisplayName:   ig.DisplayName,
		Quantity:      ig.Quantity.toModel(),
		Note:          ig.Note,
		Modifiers:     modifiers(ig.Optional, ig.Hidden, ig.Reference),
		OutcomeDetail: ig.OutcomeDetail,
	}
	if model.Name == "" {
		return model, fmt.Errorf("missing name")
	}
	if rel := ig.Relation; rel != nil {
		switch rel.Kind {
		case "", "none":
		case "section":
			model.Relation = cookfmt.Relation{Kind: cookfmt.RefSection, Target: rel.Target}
		case "step":
			model.Relation = cookfmt.Relation{Kind: cookfmt.RefStep, Target: rel.Target}
		default:
			return model, fmt.Errorf("unknown relation kind %q", rel.Kind)
		}
	}
	outcome, err := parseOutcome(ig.Outcome, model.Quantity != nil)
	if err != nil {
		return model, err
	}
	model.Outcome = outcome
	return model, nil
}

func (s sectionDTO) toModel() (cookfmt.Section, error) {
	model := cookfmt.Section{Name: s.Name}
	for ci, content := range s.Content {
		switch {
		case content.Step != nil:
			step := &cookfmt.Step{Number: content.Step.Number}
			for ii, item := range content.Step.Items {
				modelItem, err := item.toModel()
				if err != nil {
					return model, fmt.Errorf("content %d item %d: %w", ci, ii, err)
				}
				step.Items = append(step.Items, modelItem)
			}
			model.Content = append(model.Content, cookfmt.Content{Kind: cookfmt.ContentStep, Step: step})
		case content.Text != "":
			model.Content = append(model.Content, cookfmt.Content{Kind: cookfmt.ContentText, Text: content.Text})
		default:
			return model, fmt.Errorf("content %d: neither step nor text", ci)
		}
	}
	return model, nil
}

func (it itemDTO) toModel() (cookfmt.Item, error) {
	switch it.Type {
	case "text":
		return cookfmt.Item{Kind: cookfmt.ItemText, Text: it.Value}, nil
	case "ingredient":
		return cookfmt.Item{Kind: cookfmt.ItemIngredient, Index: it.Index}, nil
	case "cookware":
		return cookfmt.Item{Kind: cookfmt.ItemCookware, Index: it.Index}, nil
	case "timer":
		return cookfmt.Item{Kind: cookfmt.ItemTimer, Index: it.Index}, nil
	case "quantity":
		return cookfmt.Item{Kind: cookfmt.ItemInlineQuantity, Index: it.Index}, nil
	default:
		return cookfmt.Item{}, fmt.Errorf("unknown item type %q", it.Type)
	}
}

func modifiers(optional, hidden, reference bool) cookfmt.Modifiers {
	var m cookfmt.Modifiers
	if optional {
		m |= cookfmt.ModOptional
	}
	if hidden {
		m |= cookfmt.ModHidden
	}
	if reference {
		m |= cookfmt.ModReference
	}
	return m
}

// parseOutcome maps the document outcome tag. An omitted tag defaults
// to scaled when a quantity is present and no_quantity otherwise.
func parseOutcome(tag string, hasQuantity bool) (cookfmt.ScaleOutcome, error) {
	switch tag {
	case "":
		if hasQuantity {
			return cookfmt.ScaleScaled, nil
		}
		return cookfmt.ScaleNoQuantity, nil
	case "no_quantity":
		return cookfmt.ScaleNoQuantity, nil
	case "scaled":
		return cookfmt.ScaleScaled, nil
	case "fixed":
		return cookfmt.ScaleFixed, nil
	case "error":
		return cookfmt.ScaleError, nil
	default:
		return cookfmt.ScaleNoQuantity, fmt.Errorf("unknown scale outcome %q", tag)
	}
}

// validate enforces the upstream invariants the renderer relies on:
// every item index is in range for its array, step references target
// step content within their section, section references target an
// existing section, and every timer has a quantity or a name.
func validate(recipe *cookfmt.Recipe) error {
	for i, t := range recipe.Timers {
		if t.Quantity == nil && t.Name == "" {
			return fmt.Errorf("timer %d: neither quantity nor name", i)
		}
	}
	for si := range recipe.Sections {
		section := &recipe.Sections[si]
		for ci := range section.Content {
			content := &section.Content[ci]
			if content.Kind != cookfmt.ContentStep {
				continue
			}
			for ii, item := range content.Step.Items {
				if err := validateItem(recipe, section, item); err != nil {
					return fmt.Errorf("section %d content %d item %d: %w", si, ci, ii, err)
				}
			}
		}
	}
	return nil
}

func validateItem(recipe *cookfmt.Recipe, section *cookfmt.Section, item cookfmt.Item) error {
	inRange := func(kind string, length int) error {
		if item.Index < 0 || item.Index >= length {
			return fmt.Errorf("%s index %d out of range (have %d)", kind, item.Index, length)
		}
		return nil
	}
	switch item.Kind {
	case cookfmt.ItemText:
		return nil
	case cookfmt.ItemIngredient:
		if err := inRange("ingredient", len(recipe.Ingredients)); err != nil {
			return err
		}
		return validateRelation(recipe, section, recipe.Ingredients[item.Index].Relation)
	case cookfmt.ItemCookware:
		return inRange("cookware", len(recipe.Cookware))
	case cookfmt.ItemTimer:
		return inRange("timer", len(recipe.Timers))
	case cookfmt.ItemInlineQuantity:
		return inRange("inline quantity", len(recipe.InlineQuantities))
	default:
		return fmt.Errorf("unknown item kind %d", item.Kind)
	}
}

func validateRelation(recipe *cookfmt.Recipe, section *cookfmt.Section, rel cookfmt.Relation) error {
	switch rel.Kind {
	case cookfmt.RefSection:
		if rel.Target < 0 || rel.Target >= len(recipe.Sections) {
			return fmt.Errorf("section reference %d out of range", rel.Target)
		}
	case cookfmt.RefStep:
		if rel.Target < 0 || rel.Target >= len(section.Content) {
			return fmt.Errorf("step reference %d out of range", rel.Target)
		}
		if section.Content[rel.Target].Kind != cookfmt.ContentStep {
			return fmt.Errorf("step reference %d targets non-step content", rel.Target)
		}
	}
	return nil
}
