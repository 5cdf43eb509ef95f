package command

import (
	"errors"
	"fmt"

	"argconsole/internal/schema"
)

var (
	// ErrParameterNameNotAllowed is matched by ParameterNameNotAllowedError.
	ErrParameterNameNotAllowed = errors.New("command: parameter name not allowed")
	// ErrMissingCommandArguments means a required argument had no token.
	ErrMissingCommandArguments = errors.New("command: missing command arguments")
	// ErrNotEnoughArguments means the console received nothing to dispatch.
	ErrNotEnoughArguments = errors.New("command: not enough arguments")
	// ErrIncorrectCommandName means the invocation is meant for another command.
	ErrIncorrectCommandName = errors.New("command: incorrect command name")
)

// ParameterNameNotAllowedError reports a lookup of an undeclared parameter.
type ParameterNameNotAllowedError struct {
	Name string
}

func (e *ParameterNameNotAllowedError) Error() string {
	return fmt.Sprintf("parameter name not allowed: %s", e.Name)
}

// Is lets errors.Is match ErrParameterNameNotAllowed.
func (e *ParameterNameNotAllowedError) Is(target error) bool {
	return target == ErrParameterNameNotAllowed
}

// ArgumentError ties an extraction failure to the argument that caused it.
type ArgumentError struct {
	Argument schema.Argument
	Err      error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %s (%s): %v", e.Argument.ConsoleName(), e.Argument.Expected, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
