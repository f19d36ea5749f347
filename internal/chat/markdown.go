package chat

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown renders s for the terminal, wrapped to width. Rendering
// failures fall back to plain wrapped text.
func renderMarkdown(s string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
		glamour.WithPreservedNewLines(),
	)
	if err != nil {
		return Wrap(s, width) + "\n" + styleFaint.Render(fmt.Sprintf("(markdown renderer: %s)", err))
	}

	out, err := r.Render(s)
	if err != nil {
		return Wrap(s, width) + "\n" + styleFaint.Render(fmt.Sprintf("(markdown render: %s)", err))
	}

	return out
}
