package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Headline returns a styler for node headlines on out.
func Headline(out *termenv.Output) func(string) string {
	return func(s string) string {
		return out.String(s).Bold().Foreground(out.Color("#818cf8")).String()
	}
}

// PrintBanner writes the tree title framed by a rule, in a gradient-like
// color scheme (Indigo/Violet).
func PrintBanner(out *termenv.Output, title string) {
	rule := strings.Repeat("─", len([]rune(title))+4)
	fmt.Fprintln(out)
	fmt.Fprintln(out, out.String(rule).Foreground(out.Color("#a78bfa")))
	fmt.Fprintln(out, out.String("  "+title).Bold().Foreground(out.Color("#c084fc")))
	fmt.Fprintln(out, out.String(rule).Foreground(out.Color("#f472b6")))
}
