package output

import (
	"sync/atomic"

	"github.com/muesli/termenv"
)

var global atomic.Pointer[Printer]

func init() {
	global.Store(NewPrinter(WithStyles(NewTheme())))
}

// SetGlobalPrinter replaces the printer used by commands that were not given one.
func SetGlobalPrinter(printer *Printer) {
	global.Store(printer)
}

// GetGlobalPrinter returns the process wide printer.
func GetGlobalPrinter() *Printer {
	return global.Load()
}

// ConfigureGlobal replaces the global printer with one built from options.
func ConfigureGlobal(options ...Option) {
	SetGlobalPrinter(NewPrinter(options...))
}

// OptionsFor returns the printer options for a configured output mode.
// Test mode always wins and yields deterministic plain output.
func OptionsFor(mode Mode, testMode bool) []Option {
	switch {
	case testMode:
		return []Option{TestMode()}
	case mode == ModeStyled:
		return []Option{WithStyles(NewThemeWithProfile(termenv.ANSI256)), WithMode(ModeStyled)}
	case mode == ModePlain || mode == ModeJSON:
		return []Option{WithMode(mode)}
	default:
		return []Option{WithStyles(NewTheme())}
	}
}

// Println writes a line with the global printer.
func Println(text string) {
	GetGlobalPrinter().Println(text)
}
