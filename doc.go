// Package cookfmt renders a parsed, scaled recipe to ANSI for terminal
// display.
//
// The package is a pure rendering core: parsing, unit conversion and
// quantity scaling happen upstream and arrive as an immutable Recipe.
// Rendering is a single synchronous pass producing a sequence of
// wrapped, styled lines on an io.Writer.
//
// Core properties:
//   - Width-aware wrapping with per-line-kind word boundary rules
//   - Per-step ingredient deduplication with stable subscript markers
//   - Whole-recipe ingredient and cookware aggregation with
//     scaling-outcome annotations
//   - Theme-driven styling via ANSI prefixes
//
// Example:
//
//	err := cookfmt.Render(cookfmt.RenderRequest{
//		Recipe: recipe,
//		Name:   "Pancakes",
//		Writer: os.Stdout,
//		Width:  80,
//		Theme:  cookfmt.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The only error a render can return is a rejected write on the sink;
// scaling problems are carried in the data model and rendered as
// warning markers with an explanatory legend.
package cookfmt
