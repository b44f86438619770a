package cookfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultWidth is the layout width used when the request does not
// supply one. Callers rendering to a terminal should pass
// min(terminal width, DefaultWidth), computed once per render.
const DefaultWidth = 80

// RenderRequest carries one render: the immutable recipe, its display
// name, the sink, and the layout width the caller resolved up front.
// The core never consults the terminal itself.
type RenderRequest struct {
	Recipe *Recipe
	Name   string
	Writer io.Writer
	Width  int
	Theme  Theme
}

// Render writes the recipe as a styled, wrapped text document to the
// request's writer: title, tags, metadata, ingredient and cookware
// tables, then sections and steps. The recipe is read-only for the
// duration of the call. The only failure mode is a rejected sink write,
// which aborts the render immediately; scaling problems are data and
// render as warning markers instead.
func Render(req RenderRequest) error {
	if req.Recipe == nil {
		return fmt.Errorf("render: Recipe is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: Writer is nil")
	}
	width := req.Width
	if width <= 0 {
		width = DefaultWidth
	}
	theme := req.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	r := &renderer{w: req.Writer, width: width, st: theme.Styles()}
	if err := r.header(req.Recipe, req.Name); err != nil {
		return err
	}
	if err := r.metadata(req.Recipe); err != nil {
		return err
	}
	if err := r.ingredients(req.Recipe); err != nil {
		return err
	}
	if err := r.cookware(req.Recipe); err != nil {
		return err
	}
	return r.steps(req.Recipe)
}

type renderer struct {
	w     io.Writer
	width int
	st    Styles
}

func (r *renderer) writeLine(line string) error {
	if _, err := io.WriteString(r.w, line); err != nil {
		return err
	}
	_, err := io.WriteString(r.w, "\n")
	return err
}

func (r *renderer) blankLine() error {
	_, err := io.WriteString(r.w, "\n")
	return err
}

func (r *renderer) printWrapped(text string) error {
	return r.printWrappedOpts(text, wrapOptions{})
}

func (r *renderer) printWrappedOpts(text string, opts wrapOptions) error {
	for _, line := range wrapLines(text, r.width, opts) {
		if err := r.writeLine(line); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) header(recipe *Recipe, name string) error {
	title := " " + name + " "
	if emoji := recipe.Metadata.Emoji; emoji != "" {
		title = " " + emoji + " " + name + " "
	}
	if err := r.writeLine(r.st.Title.Paint(title)); err != nil {
		return err
	}
	if tags := recipe.Metadata.Tags; len(tags) > 0 {
		var b strings.Builder
		for _, tag := range tags {
			b.WriteString(r.st.Tags[tagStyleIndex(tag)].Paint("#" + tag))
			b.WriteString(" ")
		}
		if err := r.printWrapped(b.String()); err != nil {
			return err
		}
	}
	return r.blankLine()
}

func (r *renderer) metadata(recipe *Recipe) error {
	meta := &recipe.Metadata
	if meta.Description != "" {
		opts := wrapOptions{initialIndent: "│ ", subsequentIndent: "│"}
		if err := r.printWrappedOpts(meta.Description, opts); err != nil {
			return err
		}
		if err := r.blankLine(); err != nil {
			return err
		}
	}
	if meta.IsEmpty() {
		return nil
	}
	metaLine := func(key, value string) error {
		return r.writeLine(r.st.MetaKey.Paint(key) + ": " + value)
	}
	if meta.Author != "" {
		if err := metaLine("author", meta.Author); err != nil {
			return err
		}
	}
	if meta.Source != "" {
		if err := metaLine("source", meta.Source); err != nil {
			return err
		}
	}
	if t := meta.Time; t != nil {
		if t.Composed() {
			if t.Prep > 0 {
				if err := metaLine("prep time", formatMinutes(t.Prep)); err != nil {
					return err
				}
			}
			if t.Cook > 0 {
				if err := metaLine("cook time", formatMinutes(t.Cook)); err != nil {
					return err
				}
			}
			if err := metaLine("total time", formatMinutes(t.TotalMinutes())); err != nil {
				return err
			}
		} else {
			if err := metaLine("time", formatMinutes(t.Total)); err != nil {
				return err
			}
		}
	}
	if len(meta.Servings) > 0 {
		if err := metaLine("servings", r.servingsText(recipe)); err != nil {
			return err
		}
	}
	for _, pair := range meta.Extra {
		if err := metaLine(pair.Key, pair.Value); err != nil {
			return err
		}
	}
	return r.blankLine()
}

// servingsText joins the declared serving alternatives with "|" and
// highlights the one scaling selected. When the scaler had to miss
// every alternative, the whole list is struck through and the actual
// target follows an arrow.
func (r *renderer) servingsText(recipe *Recipe) string {
	selected := 0
	if recipe.Scaled != nil {
		selected = recipe.Scaled.Index
	}
	parts := make([]string, 0, len(recipe.Metadata.Servings))
	for i, s := range recipe.Metadata.Servings {
		text := strconv.Itoa(s)
		if i == selected {
			text = r.st.SelectedServings.Paint("[" + text + "]")
		}
		parts = append(parts, text)
	}
	text := strings.Join(parts, "|")
	if recipe.Scaled != nil && recipe.Scaled.Index < 0 {
		text = r.st.StruckServings.Paint(text) +
			" " + r.st.TargetServings.Paint("→") +
			" " + r.st.TargetServings.Paint(strconv.Itoa(recipe.Scaled.TargetServings))
	}
	return text
}

func (r *renderer) ingredients(recipe *Recipe) error {
	if len(recipe.Ingredients) == 0 {
		return nil
	}
	if err := r.writeLine("Ingredients:"); err != nil {
		return err
	}
	rows, fixed, errored := r.ingredientRows(recipe)
	for _, line := range renderColumns(rows) {
		if err := r.writeLine(line); err != nil {
			return err
		}
	}
	if fixed || errored {
		if err := r.blankLine(); err != nil {
			return err
		}
		var b strings.Builder
		if fixed {
			b.WriteString(r.st.FixedMarker.Paint(fixedGlyph + " fixed value"))
		}
		if errored {
			if fixed {
				b.WriteString(" | ")
			}
			b.WriteString(r.st.ErrorMarker.Paint(errorGlyph + " error scaling"))
		}
		if err := r.writeLine(b.String()); err != nil {
			return err
		}
	}
	return r.blankLine()
}

func (r *renderer) cookware(recipe *Recipe) error {
	if len(recipe.Cookware) == 0 {
		return nil
	}
	if err := r.writeLine("Cookware:"); err != nil {
		return err
	}
	for _, line := range renderColumns(r.cookwareRows(recipe)) {
		if err := r.writeLine(line); err != nil {
			return err
		}
	}
	return r.blankLine()
}

func (r *renderer) steps(recipe *Recipe) error {
	if err := r.writeLine("Steps:"); err != nil {
		return err
	}
	multi := len(recipe.Sections) > 1
	for si := range recipe.Sections {
		section := &recipe.Sections[si]
		if multi {
			divider := fmt.Sprintf("─── § %d ───", si+1)
			if err := r.writeLine(centerLine(divider, r.width)); err != nil {
				return err
			}
		}
		if section.Name != "" {
			if err := r.writeLine(r.st.SectionName.Paint(section.Name) + ":"); err != nil {
				return err
			}
		}
		for ci := range section.Content {
			content := &section.Content[ci]
			switch content.Kind {
			case ContentStep:
				if err := r.step(recipe, section, content.Step); err != nil {
					return err
				}
			case ContentText:
				if err := r.blankLine(); err != nil {
					return err
				}
				opts := wrapOptions{initialIndent: "  "}
				if err := r.printWrappedOpts(strings.TrimSpace(content.Text), opts); err != nil {
					return err
				}
				if err := r.blankLine(); err != nil {
					return err
				}
			default:
				panic("cookfmt: unknown section content kind")
			}
		}
	}
	return nil
}

func (r *renderer) step(recipe *Recipe, section *Section, step *Step) error {
	narrative, legend := r.stepText(recipe, section, step)
	err := r.printWrappedOpts(strings.TrimSpace(narrative), wrapOptions{
		initialIndent:    fmt.Sprintf("%2d. ", step.Number),
		subsequentIndent: "    ",
	})
	if err != nil {
		return err
	}
	const legendIndent = "     " // aligns under the text, past the number prefix
	return r.printWrappedOpts(legend, wrapOptions{
		initialIndent:    legendIndent,
		subsequentIndent: legendIndent,
		separator:        SeparatorAfterCommaSpace,
	})
}
