package commands

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// palette colors text for one output stream. Writers that are not terminals get plain text.
type palette struct {
	renderer *lipgloss.Renderer
}

func (a *app) palette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	if a.env.Config.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return palette{renderer: r}
}

func (p palette) color(c lipgloss.Color, text string) string {
	return p.renderer.NewStyle().Foreground(c).Render(text)
}

func (p palette) red(text string) string     { return p.color(lipgloss.Color("1"), text) }
func (p palette) green(text string) string   { return p.color(lipgloss.Color("2"), text) }
func (p palette) yellow(text string) string  { return p.color(lipgloss.Color("3"), text) }
func (p palette) blue(text string) string    { return p.color(lipgloss.Color("4"), text) }
func (p palette) magenta(text string) string { return p.color(lipgloss.Color("5"), text) }
func (p palette) cyan(text string) string    { return p.color(lipgloss.Color("6"), text) }

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
