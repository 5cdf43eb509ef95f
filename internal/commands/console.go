package commands

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"argconsole/internal/command"
	"argconsole/internal/logger"
	"argconsole/internal/output"
)

// ErrUnknownCommand means no registered command accepted the invocation.
var ErrUnknownCommand = errors.New("commands: unknown command")

// Console dispatches one invocation to the first command whose name matches.
type Console struct {
	arguments []string
	commands  []command.Command
	printer   *output.Printer
}

// ConsoleOption configures a Console.
type ConsoleOption func(*consoleConfig)

type consoleConfig struct {
	trimFirst bool
	printer   *output.Printer
}

// WithTrimFirst controls whether arguments[0] (the program name) is dropped.
// It is dropped by default.
func WithTrimFirst(trim bool) ConsoleOption {
	return func(c *consoleConfig) {
		c.trimFirst = trim
	}
}

// WithPrinter sets where help, errors and results are written.
func WithPrinter(printer *output.Printer) ConsoleOption {
	return func(c *consoleConfig) {
		c.printer = printer
	}
}

// NewConsole prepares a dispatch of arguments over cmds. A help command
// listing cmds is appended. Fails with command.ErrNotEnoughArguments when
// no command name remains after trimming.
func NewConsole(arguments []string, cmds []command.Command, opts ...ConsoleOption) (*Console, error) {
	cfg := consoleConfig{trimFirst: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.printer == nil {
		cfg.printer = output.GetGlobalPrinter()
	}

	if cfg.trimFirst {
		if len(arguments) < 2 {
			return nil, command.ErrNotEnoughArguments
		}
		arguments = arguments[1:]
	} else if len(arguments) == 0 {
		return nil, command.ErrNotEnoughArguments
	}

	all := make([]command.Command, 0, len(cmds)+1)
	all = append(all, cmds...)
	all = append(all, NewHelpCommand(cmds, cfg.printer))

	return &Console{
		arguments: arguments,
		commands:  all,
		printer:   cfg.printer,
	}, nil
}

// Run tries each command in order. Commands that reject the name are
// skipped; the first one that accepts it decides the outcome. Any other
// failure is printed together with that command's help and returned.
func (c *Console) Run() error {
	invocation := uuid.NewString()
	name := c.arguments[0]

	for _, cmd := range c.commands {
		err := command.Parse(cmd, c.arguments, c.help)
		if errors.Is(err, command.ErrIncorrectCommandName) {
			logger.Dispatch(invocation, cmd.Name(), "skipped")
			continue
		}
		if err != nil {
			logger.Dispatch(invocation, cmd.Name(), "failed")
			logger.Debug("Command failed", "invocation", invocation, "command", cmd.Name(), "error", err)
			c.printer.Error(fmt.Sprintf("%s: %v", cmd.Name(), err))
			PrintHelp(c.printer, cmd)
			return fmt.Errorf("%s: %w", cmd.Name(), err)
		}

		logger.Dispatch(invocation, cmd.Name(), "done")
		return nil
	}

	c.printer.Println(fmt.Sprintf("%s is an incorrect command", name))
	return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
}

func (c *Console) help(cmd command.Command) {
	PrintHelp(c.printer, cmd)
}

// Commands returns the commands the console dispatches over, help included.
func (c *Console) Commands() []command.Command {
	out := make([]command.Command, len(c.commands))
	copy(out, c.commands)
	return out
}
