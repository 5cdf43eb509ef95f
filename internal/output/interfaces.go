// Package output provides the console output system for argconsole.
// Help text and command results go through a Printer, which renders plain,
// styled or JSON output depending on its mode.
package output

// StyleProvider supplies styles for semantic output types.
// The output package depends only on this interface, not on a concrete theme.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	GetStyle(semantic string) TextStyle

	// IsAvailable returns true if the provider can style text in the current terminal.
	IsAvailable() bool
}

// TextStyle represents the capability to render text with styling.
// lipgloss.Style satisfies it.
type TextStyle interface {
	Render(strs ...string) string
}

// Mode defines different output modes the printer can operate in.
type Mode int

const (
	// ModeAuto styles output when a style provider is available.
	ModeAuto Mode = iota

	// ModeStyled forces styled output (with colors, formatting)
	ModeStyled

	// ModePlain forces plain text output (no colors, minimal formatting)
	ModePlain

	// ModeJSON outputs structured JSON for machine consumption
	ModeJSON
)

// ParseMode converts a configuration string to a Mode.
// Unknown names yield ModeAuto.
func ParseMode(s string) Mode {
	switch s {
	case "styled":
		return ModeStyled
	case "plain":
		return ModePlain
	case "json":
		return ModeJSON
	default:
		return ModeAuto
	}
}

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeStyled:
		return "styled"
	case ModePlain:
		return "plain"
	case ModeJSON:
		return "json"
	default:
		return "auto"
	}
}

// SemanticType defines the semantic meaning of output for consistent styling.
type SemanticType string

const (
	// SemanticPlain represents plain text without any semantic meaning.
	SemanticPlain SemanticType = "plain"
	// SemanticInfo represents informational text.
	SemanticInfo SemanticType = "info"
	// SemanticSuccess represents success or completion text.
	SemanticSuccess SemanticType = "success"
	// SemanticWarning represents warning text.
	SemanticWarning SemanticType = "warning"
	// SemanticError represents error text.
	SemanticError SemanticType = "error"

	// SemanticCommand represents a command name.
	SemanticCommand SemanticType = "command"
	// SemanticVariable represents a parameter console name.
	SemanticVariable SemanticType = "variable"
	// SemanticKeyword represents a parameter kind or type.
	SemanticKeyword SemanticType = "keyword"

	// SemanticBold represents bold text styling.
	SemanticBold SemanticType = "bold"
	// SemanticComment represents descriptions and notes.
	SemanticComment SemanticType = "comment"
)
