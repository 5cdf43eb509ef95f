package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// ErrNotStylable means markdown was requested from a printer that does not style.
var ErrNotStylable = errors.New("output: printer does not style")

// markdownWidth is the wrap column for rendered markdown.
const markdownWidth = 80

// Markdown renders md with glamour and writes it. Plain and JSON printers
// return ErrNotStylable so the caller can fall back to plain text.
func (p *Printer) Markdown(md string) error {
	if strings.TrimSpace(md) == "" {
		return fmt.Errorf("markdown content cannot be empty")
	}
	if !p.IsStylable() {
		return ErrNotStylable
	}

	style := styles.DarkStyle
	if theme, ok := p.styles.(*Theme); ok && !theme.HasDarkBackground() {
		style = styles.LightStyle
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(markdownWidth),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	p.Print(rendered)
	return nil
}
