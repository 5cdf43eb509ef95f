package command

import (
	"argconsole/internal/logger"
	"argconsole/internal/schema"
)

// Command is anything the console can dispatch to.
type Command interface {
	Name() string
	Description() string
	// Help returns extra lines printed under the command header.
	Help() []string
	// Parameters returns the declared schema in display order.
	Parameters() []schema.Parameter
	Run(data *Data) error
}

// HelpFunc renders help for a command.
type HelpFunc func(cmd Command)

// Parse runs cmd against one invocation. arguments[0] must be the command's
// name, otherwise ErrIncorrectCommandName is returned so the caller can try
// the next command. A --help token anywhere shows help instead of running.
func Parse(cmd Command, arguments []string, help HelpFunc) error {
	if len(arguments) == 0 || arguments[0] != cmd.Name() {
		return ErrIncorrectCommandName
	}

	if schema.HelpFlag.Flag(arguments) {
		logger.Debug("Help requested", "command", cmd.Name())
		if help != nil {
			help(cmd)
		}
		return nil
	}

	data, err := NewData(cmd.Parameters(), arguments[1:])
	if err != nil {
		return err
	}

	logger.CommandExecution(cmd.Name(), data.Input())
	return cmd.Run(data)
}
