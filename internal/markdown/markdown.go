// Package markdown renders lesson notes as styled terminal output.
package markdown

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// noMarginStyle is a JSON style that removes document margins.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps glamour with golearn-specific configuration.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// New creates a markdown renderer with the given word-wrap width and style.
// style should be "dark" or "light"; empty selects by terminal background.
// DetectStyle is used instead of glamour's WithAutoStyle, which builds a
// fresh lipgloss renderer and re-queries the terminal on every call.
func New(width int, style string) (*Renderer, error) {
	if style == "" {
		style = DetectStyle()
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width}, nil
}

// DetectStyle picks "dark" or "light" from the terminal background.
func DetectStyle() string {
	if termenv.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.renderer.Render(markdown)
}
