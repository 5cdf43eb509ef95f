package builtin

import (
	"strconv"

	"argconsole/internal/command"
	"argconsole/internal/output"
	"argconsole/internal/schema"
	"argconsole/internal/values"
)

// maxPrecision is the most digits a float64 can carry meaningfully.
const maxPrecision = 17

// SumCommand adds a list of numbers.
type SumCommand struct {
	// Printer overrides the global printer when set.
	Printer *output.Printer
}

// Name returns the command name "sum" for registration and lookup.
func (c *SumCommand) Name() string {
	return "sum"
}

// Description returns a brief description of what the sum command does.
func (c *SumCommand) Description() string {
	return "Add a list of numbers"
}

// Help returns usage lines for the sum command.
func (c *SumCommand) Help() []string {
	return []string{"Example: sum -nums=1,2.5,3 --precision=1 --stats"}
}

// Parameters declares -nums, --precision and --stats.
func (c *SumCommand) Parameters() []schema.Parameter {
	precision := values.Int(2)
	return []schema.Parameter{
		schema.NewArgument("nums", values.ArrayOf(values.DoubleType()), "numbers to add"),
		schema.NewOption("precision", values.IntType(), &precision, "digits after the decimal point (0-17)"),
		schema.NewFlag("stats", "also print count and mean"),
	}
}

// Run prints the sum, and optionally the count and mean.
func (c *SumCommand) Run(data *command.Data) error {
	items, err := data.Array("nums")
	if err != nil {
		return err
	}

	total := 0.0
	for _, item := range items {
		n, err := item.Double()
		if err != nil {
			return err
		}
		total += n
	}

	digits := 2
	if v, ok, err := data.OptionalValue("precision"); err != nil {
		return err
	} else if ok {
		if p, err := v.Int(); err == nil {
			digits = min(max(p, 0), maxPrecision)
		}
	}

	stats, err := data.Flag("stats")
	if err != nil {
		return err
	}

	keys := []string{"sum"}
	fields := map[string]any{"sum": strconv.FormatFloat(total, 'f', digits, 64)}
	if stats {
		keys = append(keys, "count", "mean")
		fields["count"] = len(items)
		fields["mean"] = strconv.FormatFloat(total/float64(len(items)), 'f', digits, 64)
	}

	printerOrGlobal(c.Printer).Record(c.Name(), keys, fields)
	return nil
}

func printerOrGlobal(p *output.Printer) *output.Printer {
	if p != nil {
		return p
	}
	return output.GetGlobalPrinter()
}
