package builtin

import (
	"fmt"
	"strings"

	"argconsole/internal/command"
	"argconsole/internal/output"
	"argconsole/internal/schema"
	"argconsole/internal/values"
)

// GreetCommand prints a greeting for a name.
type GreetCommand struct {
	// Printer overrides the global printer when set.
	Printer *output.Printer
}

// Name returns the command name "greet" for registration and lookup.
func (c *GreetCommand) Name() string {
	return "greet"
}

// Description returns a brief description of what the greet command does.
func (c *GreetCommand) Description() string {
	return "Greet someone"
}

// Help returns usage lines for the greet command.
func (c *GreetCommand) Help() []string {
	return []string{`Example: greet -name="Ada Lovelace" --times=2 --shout`}
}

// Parameters declares -name, --greeting, --times and --shout.
func (c *GreetCommand) Parameters() []schema.Parameter {
	greeting := values.String("Hello")
	times := values.Int(1)
	return []schema.Parameter{
		schema.NewArgument("name", values.StringType(), "who to greet"),
		schema.NewOption("greeting", values.StringType(), &greeting, "word to greet with"),
		schema.NewOption("times", values.IntType(), &times, "how many times to repeat"),
		schema.NewFlag("shout", "upper case the greeting"),
	}
}

// Run prints the greeting --times times.
func (c *GreetCommand) Run(data *command.Data) error {
	name, err := data.String("name")
	if err != nil {
		return err
	}

	greeting := "Hello"
	if v, ok, err := data.OptionalValue("greeting"); err != nil {
		return err
	} else if ok {
		if s, err := v.Str(); err == nil {
			greeting = s
		}
	}

	times := 1
	if v, ok, err := data.OptionalValue("times"); err != nil {
		return err
	} else if ok {
		if n, err := v.Int(); err == nil {
			times = n
		}
	}

	shout, err := data.Flag("shout")
	if err != nil {
		return err
	}

	line := fmt.Sprintf("%s, %s!", greeting, name)
	if shout {
		line = strings.ToUpper(line)
	}

	printer := printerOrGlobal(c.Printer)
	for i := 0; i < times; i++ {
		printer.Println(line)
	}
	return nil
}
