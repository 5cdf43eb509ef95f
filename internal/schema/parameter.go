// Package schema declares the parameters a command accepts.
// Arguments are required and named -name=value; options are optional,
// named --name, and either act as flags or carry a value with a default.
package schema

import (
	"argconsole/internal/parser"
	"argconsole/internal/values"
)

// Parameter is either an Argument or an Option.
type Parameter interface {
	ParameterName() string
	ConsoleName() string
	isParameter()
}

// Argument is a required parameter.
type Argument struct {
	Name        string
	Expected    values.Type
	Description string
}

// NewArgument declares a required parameter of the given type.
func NewArgument(name string, expected values.Type, description string) Argument {
	return Argument{Name: name, Expected: expected, Description: description}
}

// ParameterName returns the bare name.
func (a Argument) ParameterName() string { return a.Name }

// ConsoleName returns -name.
func (a Argument) ConsoleName() string { return parser.ArgumentPrefix + a.Name }

func (Argument) isParameter() {}

// Value extracts the argument from tokens. Any failure is returned.
func (a Argument) Value(tokens []string) (values.Value, error) {
	return parser.Extract(tokens, a.ConsoleName(), a.Expected, nil)
}

type modeKind int

const (
	modeFlag modeKind = iota
	modeValue
)

// Mode says whether an option is a flag or carries a value.
type Mode struct {
	kind     modeKind
	Expected values.Type
	Default  *values.Value
}

// FlagMode makes an option a presence-only boolean.
func FlagMode() Mode {
	return Mode{kind: modeFlag}
}

// ValueMode makes an option carry a value of type expected.
// def may be nil, in which case an absent option has no value.
func ValueMode(expected values.Type, def *values.Value) Mode {
	return Mode{kind: modeValue, Expected: expected, Default: def}
}

// IsFlag reports whether the mode is FlagMode.
func (m Mode) IsFlag() bool {
	return m.kind == modeFlag
}

// Option is an optional parameter.
type Option struct {
	Name        string
	Mode        Mode
	Description string
}

// NewFlag declares a flag option.
func NewFlag(name, description string) Option {
	return Option{Name: name, Mode: FlagMode(), Description: description}
}

// NewOption declares a value option with an optional default.
func NewOption(name string, expected values.Type, def *values.Value, description string) Option {
	return Option{Name: name, Mode: ValueMode(expected, def), Description: description}
}

// ParameterName returns the bare name.
func (o Option) ParameterName() string { return o.Name }

// ConsoleName returns --name.
func (o Option) ConsoleName() string { return parser.OptionPrefix + o.Name }

func (Option) isParameter() {}

// Flag reports whether the flag token is present. Always false for value options.
// A flag never carries a value, so --name=x does not count.
func (o Option) Flag(tokens []string) bool {
	if !o.Mode.IsFlag() {
		return false
	}
	return parser.HasToken(tokens, o.ConsoleName())
}

// Value extracts the option's value. Extraction failures fall back to the
// configured default; ok is false for flags and for absent options without
// a default.
func (o Option) Value(tokens []string) (values.Value, bool) {
	if o.Mode.IsFlag() {
		return values.Value{}, false
	}

	v, err := parser.Extract(tokens, o.ConsoleName(), o.Mode.Expected, o.Mode.Default)
	if err == nil {
		return v, true
	}
	if o.Mode.Default != nil {
		return *o.Mode.Default, true
	}
	return values.Value{}, false
}

// Split separates parameters into arguments and options, keeping order.
func Split(params []Parameter) ([]Argument, []Option) {
	var args []Argument
	var opts []Option
	for _, p := range params {
		switch p := p.(type) {
		case Argument:
			args = append(args, p)
		case Option:
			opts = append(opts, p)
		}
	}
	return args, opts
}

// HelpFlag is the option every command understands: --help.
var HelpFlag = NewFlag("help", "Show help for the command")
