package commands

import (
	"fmt"

	"argconsole/internal/command"
	"argconsole/internal/output"
	"argconsole/internal/schema"
)

// DeclaredCommand is a command defined in a schema file. Running it binds the
// invocation and prints every declared parameter with its value.
type DeclaredCommand struct {
	def     schema.Definition
	printer *output.Printer
}

// NewDeclaredCommand wraps a schema definition.
func NewDeclaredCommand(def schema.Definition, printer *output.Printer) *DeclaredCommand {
	return &DeclaredCommand{def: def, printer: printer}
}

// Name implements command.Command.
func (c *DeclaredCommand) Name() string {
	return c.def.Name
}

// Description implements command.Command.
func (c *DeclaredCommand) Description() string {
	return c.def.Description
}

// Help implements command.Command.
func (c *DeclaredCommand) Help() []string {
	return c.def.Help
}

// Parameters implements command.Command.
func (c *DeclaredCommand) Parameters() []schema.Parameter {
	return c.def.Parameters
}

// Run prints each parameter in declaration order. Arguments that fail to
// parse abort the run; options show their default or "none".
func (c *DeclaredCommand) Run(data *command.Data) error {
	jsonMode := c.printer.Mode() == output.ModeJSON
	keys := make([]string, 0, len(c.def.Parameters))
	fields := make(map[string]any, len(c.def.Parameters))

	for _, param := range c.def.Parameters {
		key := param.ConsoleName()
		keys = append(keys, key)

		switch p := param.(type) {
		case schema.Argument:
			v, err := data.Value(p.Name)
			if err != nil {
				return err
			}
			if jsonMode {
				fields[key] = v.Native()
			} else {
				fields[key] = v.String()
			}
		case schema.Option:
			if p.Mode.IsFlag() {
				set, err := data.Flag(p.Name)
				if err != nil {
					return err
				}
				fields[key] = set
				continue
			}
			v, present, err := data.OptionalValue(p.Name)
			if err != nil {
				return err
			}
			switch {
			case !present && jsonMode:
				fields[key] = nil
			case !present:
				fields[key] = "none"
			case jsonMode:
				fields[key] = v.Native()
			default:
				fields[key] = v.String()
			}
		default:
			return fmt.Errorf("unsupported parameter %T", param)
		}
	}

	c.printer.Record(c.def.Name, keys, fields)
	return nil
}

// LoadDeclaredCommands reads every schema file and wraps its definitions.
func LoadDeclaredCommands(paths []string, printer *output.Printer) ([]command.Command, error) {
	var cmds []command.Command
	for _, path := range paths {
		defs, err := schema.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		for _, def := range defs {
			cmds = append(cmds, NewDeclaredCommand(def, printer))
		}
	}
	return cmds, nil
}
