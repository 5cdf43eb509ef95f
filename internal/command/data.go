// Package command binds a command's parameter schema to the tokens of one
// invocation and serves typed lookups by parameter name.
package command

import (
	"fmt"

	"argconsole/internal/logger"
	"argconsole/internal/parser"
	"argconsole/internal/schema"
	"argconsole/internal/values"
)

// Data is the bound context of a single invocation.
// It never caches: every lookup rescans the tokens.
type Data struct {
	arguments map[string]schema.Argument
	options   map[string]schema.Option
	input     []string
}

// NewData validates that every argument in params has a "-name=" token in
// input. Values are not type checked here; that happens on lookup.
func NewData(params []schema.Parameter, input []string) (*Data, error) {
	d := &Data{
		arguments: make(map[string]schema.Argument),
		options:   make(map[string]schema.Option),
		input:     input,
	}

	for _, param := range params {
		switch p := param.(type) {
		case schema.Argument:
			d.arguments[p.Name] = p
			if !parser.HasKey(input, p.ConsoleName()) {
				logger.Debug("Required argument missing", "argument", p.ConsoleName())
				return nil, fmt.Errorf("%w: %s", ErrMissingCommandArguments, p.ConsoleName())
			}
		case schema.Option:
			d.options[p.Name] = p
		}
	}

	logger.Debug("Bound command data", "arguments", len(d.arguments), "options", len(d.options), "tokens", len(input))
	return d, nil
}

// Value returns the typed value of a declared argument.
func (d *Data) Value(name string) (values.Value, error) {
	arg, ok := d.arguments[name]
	if !ok {
		return values.Value{}, &ParameterNameNotAllowedError{Name: name}
	}

	v, err := arg.Value(d.input)
	if err != nil {
		return values.Value{}, &ArgumentError{Argument: arg, Err: err}
	}
	return v, nil
}

// Flag reports whether a declared flag option is present.
// A value option is never "present" as a flag.
func (d *Data) Flag(name string) (bool, error) {
	opt, ok := d.options[name]
	if !ok {
		return false, &ParameterNameNotAllowedError{Name: name}
	}
	return opt.Flag(d.input), nil
}

// OptionalValue returns the value of a declared value option, or its default.
// present is false when neither a valid token nor a default exists.
func (d *Data) OptionalValue(name string) (v values.Value, present bool, err error) {
	opt, ok := d.options[name]
	if !ok {
		return values.Value{}, false, &ParameterNameNotAllowedError{Name: name}
	}
	v, present = opt.Value(d.input)
	return v, present, nil
}

// Int looks up an argument and unwraps it as an integer.
func (d *Data) Int(name string) (int, error) {
	v, err := d.Value(name)
	if err != nil {
		return 0, err
	}
	return v.Int()
}

// Double looks up an argument and unwraps it as a float.
func (d *Data) Double(name string) (float64, error) {
	v, err := d.Value(name)
	if err != nil {
		return 0, err
	}
	return v.Double()
}

// String looks up an argument and unwraps it as text.
func (d *Data) String(name string) (string, error) {
	v, err := d.Value(name)
	if err != nil {
		return "", err
	}
	return v.Str()
}

// Array looks up an argument and unwraps it as a list.
func (d *Data) Array(name string) ([]values.Value, error) {
	v, err := d.Value(name)
	if err != nil {
		return nil, err
	}
	return v.Array()
}

// Input returns a copy of the tokens bound to this invocation.
func (d *Data) Input() []string {
	out := make([]string, len(d.input))
	copy(out, d.input)
	return out
}
