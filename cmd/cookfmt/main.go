package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/cookfmt"
	"pkt.systems/cookfmt/recipefile"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = cookfmt.DefaultWidth
)

func init() {
	version.SetDefaultModule("pkt.systems/cookfmt")
}

func main() {
	var (
		themeName  string
		widthFlag  int
		colorFlag  string
		formatFlag string
		nameFlag   string
		outPath    string
		listThemes bool
	)

	flags := pflag.NewFlagSet("cookfmt", pflag.ExitOnError)
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Output width override (0 uses terminal width, capped at 80)")
	flags.StringVarP(&colorFlag, "color", "c", "auto", "Color output: auto|on|off")
	flags.StringVarP(&formatFlag, "format", "f", "auto", "Input format: auto|json|yaml")
	flags.StringVarP(&nameFlag, "name", "n", "", "Recipe display name override")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: cookfmt [flags] [recipe.json|recipe.yaml]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, a recipe document is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if listThemes {
		for _, name := range cookfmt.AvailableThemes() {
			fmt.Fprintln(os.Stdout, name)
		}
		return
	}

	args := flags.Args()
	if len(args) > 1 {
		flags.Usage()
		os.Exit(2)
	}

	doc, err := openRecipe(args, formatFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open recipe: %v\n", err)
		os.Exit(1)
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	theme, ok := cookfmt.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n", themeName)
		os.Exit(2)
	}
	color, err := resolveColor(colorFlag, writer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --color %q: %v\n", colorFlag, err)
		os.Exit(2)
	}
	if !color {
		theme, _ = cookfmt.ThemeByName("boring")
	}

	name := nameFlag
	if name == "" {
		name = doc.Name
	}
	if name == "" && len(args) == 1 {
		base := filepath.Base(args[0])
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if err := cookfmt.Render(cookfmt.RenderRequest{
		Recipe: doc.Recipe,
		Name:   name,
		Writer: writer,
		Width:  resolveWidth(widthFlag),
		Theme:  theme,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
}

func openRecipe(args []string, formatFlag string) (*recipefile.Document, error) {
	format, err := resolveFormat(formatFlag)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return recipefile.Decode(data, format)
	}
	if format != recipefile.FormatUnknown {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, err
		}
		return recipefile.Decode(data, format)
	}
	return recipefile.Load(args[0])
}

func resolveFormat(mode string) (recipefile.Format, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return recipefile.FormatUnknown, nil
	case "json":
		return recipefile.FormatJSON, nil
	case "yaml", "yml":
		return recipefile.FormatYAML, nil
	default:
		return recipefile.FormatUnknown, fmt.Errorf("expected auto|json|yaml")
	}
}

// resolveWidth caps the layout at 80 columns even on wider terminals,
// computed once before the render starts.
func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	w := terminalWidth(defaultWidth)
	if w > defaultWidth {
		w = defaultWidth
	}
	return w
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveColor(mode string, w io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}
