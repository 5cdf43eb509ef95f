package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
)

// plainPrefixes mark status lines when no colors are available.
var plainPrefixes = map[SemanticType]string{
	SemanticInfo:    "ℹ ",
	SemanticSuccess: "✓ ",
	SemanticWarning: "⚠ ",
	SemanticError:   "✗ ",
}

// Printer writes help, results and errors in one of the output modes.
// It is safe for concurrent use.
type Printer struct {
	mu     sync.Mutex
	writer io.Writer
	mode   Mode
	styles StyleProvider
	silent bool
}

// NewPrinter creates a Printer writing to os.Stdout in ModeAuto.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{writer: os.Stdout, mode: ModeAuto}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Print writes text as is.
func (p *Printer) Print(text string) {
	p.emit(SemanticPlain, text, false)
}

// Printf formats and writes text as is.
func (p *Printer) Printf(format string, args ...any) {
	p.emit(SemanticPlain, fmt.Sprintf(format, args...), false)
}

// Println writes text followed by a newline.
func (p *Printer) Println(text string) {
	p.emit(SemanticPlain, text, true)
}

// Info outputs informational text with info styling.
func (p *Printer) Info(text string) {
	p.emit(SemanticInfo, text, true)
}

// Success outputs text marking a completed operation.
func (p *Printer) Success(text string) {
	p.emit(SemanticSuccess, text, true)
}

// Warning outputs text with warning styling.
func (p *Printer) Warning(text string) {
	p.emit(SemanticWarning, text, true)
}

// Error outputs an error message with error styling.
func (p *Printer) Error(text string) {
	p.emit(SemanticError, text, true)
}

// Record outputs a structured result. In JSON mode it is emitted as one JSON
// object tagged with kind; otherwise each field is printed as "key: value"
// in the order of keys.
func (p *Printer) Record(kind string, keys []string, fields map[string]any) {
	if p.silent {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mode == ModeJSON {
		payload := make(map[string]any, len(fields)+1)
		for k, v := range fields {
			payload[k] = v
		}
		payload["type"] = kind
		p.writeJSON(payload)
		return
	}

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %v\n", p.style(SemanticVariable, k), fields[k])
	}
	p.write(b.String())
}

// Style renders text with the style for semantic, or returns it unchanged
// when the printer does not style.
func (p *Printer) Style(semantic SemanticType, text string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.style(semantic, text)
}

// Mode returns the output mode.
func (p *Printer) Mode() Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

// IsStylable reports whether output from this printer is styled.
func (p *Printer) IsStylable() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stylable()
}

// stylable: ModeStyled uses any provider, ModeAuto only one the terminal supports.
func (p *Printer) stylable() bool {
	switch {
	case p.styles == nil:
		return false
	case p.mode == ModeStyled:
		return true
	case p.mode == ModeAuto:
		return p.styles.IsAvailable()
	default:
		return false
	}
}

func (p *Printer) style(semantic SemanticType, text string) string {
	if !p.stylable() {
		return text
	}
	return p.styles.GetStyle(string(semantic)).Render(text)
}

func (p *Printer) emit(semantic SemanticType, text string, newline bool) {
	if p.silent {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mode == ModeJSON {
		p.writeJSON(map[string]any{"type": semantic, "message": ansi.Strip(text)})
		return
	}

	if p.stylable() {
		text = p.styles.GetStyle(string(semantic)).Render(text)
	} else {
		// styled fragments built elsewhere must not leak into plain output
		text = plainPrefixes[semantic] + ansi.Strip(text)
	}
	if newline && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	p.write(text)
}

func (p *Printer) writeJSON(payload map[string]any) {
	data, err := json.Marshal(payload)
	if err != nil {
		p.write(fmt.Sprintf("%v\n", payload))
		return
	}
	p.write(string(data) + "\n")
}

func (p *Printer) write(text string) {
	_, _ = io.WriteString(p.writer, text) // write errors are not actionable here
}
