package output

import "io"

// Option configures a Printer.
type Option func(*Printer)

// WithStyles sets the style provider used in styled and auto modes.
func WithStyles(provider StyleProvider) Option {
	return func(p *Printer) {
		p.styles = provider
	}
}

// WithWriter redirects output away from os.Stdout. A nil writer is ignored.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// WithMode selects how the printer renders output.
func WithMode(mode Mode) Option {
	return func(p *Printer) {
		p.mode = mode
	}
}

// PlainText disables styling.
func PlainText() Option {
	return WithMode(ModePlain)
}

// JSON emits one JSON object per line.
func JSON() Option {
	return WithMode(ModeJSON)
}

// TestMode yields deterministic output: plain mode and no style provider,
// whatever options came before it.
func TestMode() Option {
	return func(p *Printer) {
		p.mode = ModePlain
		p.styles = nil
	}
}

// Silent drops all output.
func Silent() Option {
	return func(p *Printer) {
		p.silent = true
	}
}
