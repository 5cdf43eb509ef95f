package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme is a lipgloss backed StyleProvider.
type Theme struct {
	renderer *lipgloss.Renderer
	styles   map[SemanticType]lipgloss.Style
}

// NewTheme returns the console theme for the detected terminal.
func NewTheme() *Theme {
	return newTheme(lipgloss.DefaultRenderer())
}

// NewThemeWithProfile returns the console theme rendered with a fixed color
// profile, regardless of what the terminal reports.
func NewThemeWithProfile(profile termenv.Profile) *Theme {
	r := lipgloss.NewRenderer(os.Stdout)
	r.SetColorProfile(profile)
	return newTheme(r)
}

func newTheme(r *lipgloss.Renderer) *Theme {
	color := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return &Theme{
		renderer: r,
		styles: map[SemanticType]lipgloss.Style{
			SemanticInfo:     color("39"),
			SemanticSuccess:  color("46"),
			SemanticWarning:  color("214"),
			SemanticError:    color("196").Bold(true),
			SemanticCommand:  color("51").Bold(true),
			SemanticVariable: color("99"),
			SemanticKeyword:  color("214"),
			SemanticBold:     r.NewStyle().Bold(true),
			SemanticComment:  r.NewStyle().Faint(true),
		},
	}
}

// GetStyle returns the style for semantic, or an unstyled one.
func (t *Theme) GetStyle(semantic string) TextStyle {
	if style, ok := t.styles[SemanticType(semantic)]; ok {
		return style
	}
	return t.renderer.NewStyle()
}

// IsAvailable reports whether the theme's renderer can show colors.
func (t *Theme) IsAvailable() bool {
	return t.renderer.ColorProfile() != termenv.Ascii
}

// HasDarkBackground reports the terminal background used to pick a markdown style.
func (t *Theme) HasDarkBackground() bool {
	return t.renderer.HasDarkBackground()
}
