package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// errSilent signals a failed run whose report has already been printed.
var errSilent = errors.New("check failed")

var printer = message.NewPrinter(language.English)

var (
	headerColor = color.New(color.Bold)
	okColor     = color.New(color.FgGreen)
	// errorColor writes to stderr, so it follows stderr's terminal state
	// rather than the stdout check fatih/color makes globally.
	errorColor = colorFor(os.Stderr, color.FgRed, color.Bold)
)

// colorFor returns a color that is enabled only when f is a terminal.
func colorFor(f *os.File, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if isTerminal(f) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func isTerminal(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// header prints a bold "== title ==" line.
func header(w io.Writer, title string) {
	headerColor.Fprintf(w, "== %s ==\n", title)
}

// errorLine prints "ERROR: <err>" or, with a tag, "ERROR [tag]: <err>".
func errorLine(w io.Writer, tag string, err error) {
	label := "ERROR"
	if tag != "" {
		label += " [" + tag + "]"
	}
	fmt.Fprintf(w, "%s: %v\n", errorColor.Sprint(label), err)
}

// rootArg tidies a root given on the command line without resolving "..",
// which must be left for the filesystem to follow through symlinks. Repeated
// separators, "." segments, and trailing separators are dropped.
func rootArg(raw string) string {
	vol := filepath.VolumeName(raw)
	rest := raw[len(vol):]
	abs := rest != "" && os.IsPathSeparator(rest[0])

	var parts []string
	for _, part := range strings.FieldsFunc(rest, isSeparator) {
		if part != "." {
			parts = append(parts, part)
		}
	}

	out := strings.Join(parts, string(filepath.Separator))
	if abs {
		out = string(filepath.Separator) + out
	}
	out = vol + out
	if out == "" {
		return "."
	}
	return out
}

func isSeparator(r rune) bool {
	return r < 0x80 && os.IsPathSeparator(uint8(r))
}
