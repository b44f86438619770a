// Package palette holds raw SGR sequences and the color palettes the
// built-in themes are assembled from.
package palette

// Text attributes.
const (
	Bold      = "\x1b[1m"
	Dim       = "\x1b[2m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
	Strike    = "\x1b[9m"
	Reverse   = "\x1b[7m"
)

// Basic foreground colors.
const (
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"
	White   = "\x1b[37m"
)

func fg256(n string) string { return "\x1b[38;5;" + n + "m" }

// Palette maps the renderer's semantic slots to SGR prefixes. Empty
// strings render unstyled.
type Palette struct {
	Title            string
	Ingredient       string
	Cookware         string
	Timer            string
	InlineQuantity   string
	Unit             string
	MetaKey          string
	SectionName      string
	OptMarker        string
	IntermediateRef  string
	StepQuantity     string
	SelectedServings string
	StruckServings   string
	TargetServings   string
	FixedMarker      string
	ErrorMarker      string
	Tags             [7]string
}

// TagOrder is the fixed 7-color sequence the deterministic tag hash
// indexes into.
var TagOrder = [7]string{Red, Blue, Cyan, Yellow, Green, Magenta, White}

// PaletteDefault mirrors the upstream cooklang presentation: bold
// reversed title, green ingredients, yellow cookware and timers.
var PaletteDefault = Palette{
	Title:            Bold + Reverse,
	Ingredient:       Green,
	Cookware:         Yellow,
	Timer:            Cyan,
	InlineQuantity:   Red,
	Unit:             Italic,
	MetaKey:          Blue,
	SectionName:      Underline,
	OptMarker:        Dim + Italic,
	IntermediateRef:  Italic + Cyan,
	StepQuantity:     Dim + Green,
	SelectedServings: Bold + Yellow,
	StruckServings:   Strike + Dim,
	TargetServings:   Red,
	FixedMarker:      Yellow,
	ErrorMarker:      Red,
	Tags:             TagOrder,
}

// PaletteGruvbox approximates the gruvbox-dark terminal scheme.
var PaletteGruvbox = Palette{
	Title:            Bold + fg256("214"),
	Ingredient:       fg256("142"),
	Cookware:         fg256("214"),
	Timer:            fg256("109"),
	InlineQuantity:   fg256("167"),
	Unit:             Italic,
	MetaKey:          fg256("109"),
	SectionName:      Underline + fg256("214"),
	OptMarker:        Dim + Italic,
	IntermediateRef:  Italic + fg256("109"),
	StepQuantity:     Dim + fg256("142"),
	SelectedServings: Bold + fg256("214"),
	StruckServings:   Strike + Dim,
	TargetServings:   fg256("167"),
	FixedMarker:      fg256("214"),
	ErrorMarker:      fg256("167"),
	Tags:             TagOrder,
}

// PaletteNord approximates the nord terminal scheme.
var PaletteNord = Palette{
	Title:            Bold + fg256("110"),
	Ingredient:       fg256("144"),
	Cookware:         fg256("222"),
	Timer:            fg256("116"),
	InlineQuantity:   fg256("174"),
	Unit:             Italic,
	MetaKey:          fg256("110"),
	SectionName:      Underline + fg256("110"),
	OptMarker:        Dim + Italic,
	IntermediateRef:  Italic + fg256("116"),
	StepQuantity:     Dim + fg256("144"),
	SelectedServings: Bold + fg256("222"),
	StruckServings:   Strike + Dim,
	TargetServings:   fg256("174"),
	FixedMarker:      fg256("222"),
	ErrorMarker:      fg256("174"),
	Tags:             TagOrder,
}
