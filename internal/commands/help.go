package commands

import (
	"fmt"
	"strings"

	"argconsole/internal/command"
	"argconsole/internal/logger"
	"argconsole/internal/output"
	"argconsole/internal/schema"
)

// HelpInfo is the structured help for one command.
type HelpInfo struct {
	Command     string          `json:"command"`
	Description string          `json:"description,omitempty"`
	Lines       []string        `json:"help,omitempty"`
	Arguments   []HelpParameter `json:"arguments,omitempty"`
	Options     []HelpParameter `json:"options,omitempty"`
}

// HelpParameter describes one declared parameter.
type HelpParameter struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Type        string `json:"type,omitempty"`
	Default     string `json:"default,omitempty"`
	Description string `json:"description,omitempty"`
}

// Summary renders the parameter as shown in help: Argument(Int), Flag,
// Option(Int(10)) when a default exists, or Option(Int) otherwise.
func (h HelpParameter) Summary() string {
	switch h.Kind {
	case "Flag":
		return "Flag"
	case "Option":
		if h.Default != "" {
			return "Option(" + h.Default + ")"
		}
		return "Option(" + h.Type + ")"
	default:
		return h.Kind + "(" + h.Type + ")"
	}
}

// BuildHelpInfo collects help for cmd, arguments first, each group in
// declaration order.
func BuildHelpInfo(cmd command.Command) HelpInfo {
	info := HelpInfo{
		Command:     cmd.Name(),
		Description: cmd.Description(),
		Lines:       cmd.Help(),
	}

	args, opts := schema.Split(cmd.Parameters())
	for _, a := range args {
		info.Arguments = append(info.Arguments, HelpParameter{
			Name:        a.ConsoleName(),
			Kind:        "Argument",
			Type:        a.Expected.String(),
			Description: a.Description,
		})
	}
	for _, o := range opts {
		hp := HelpParameter{Name: o.ConsoleName(), Description: o.Description}
		if o.Mode.IsFlag() {
			hp.Kind = "Flag"
		} else {
			hp.Kind = "Option"
			hp.Type = o.Mode.Expected.String()
			if o.Mode.Default != nil {
				hp.Default = o.Mode.Default.String()
			}
		}
		info.Options = append(info.Options, hp)
	}
	return info
}

// PrintHelp renders the help for cmd on printer.
func PrintHelp(printer *output.Printer, cmd command.Command) {
	info := BuildHelpInfo(cmd)

	if printer.Mode() == output.ModeJSON {
		printer.Record("help", nil, map[string]any{
			"command":     info.Command,
			"description": info.Description,
			"help":        info.Lines,
			"arguments":   info.Arguments,
			"options":     info.Options,
		})
		return
	}

	printer.Println("Command: " + printer.Style(output.SemanticCommand, info.Command))
	if info.Description != "" {
		printer.Println(printer.Style(output.SemanticComment, info.Description))
	}
	for _, line := range info.Lines {
		printer.Println(line)
	}
	printer.Println("")

	printParameters(printer, info.Arguments)
	if len(info.Options) > 0 {
		printer.Println("")
		printParameters(printer, info.Options)
	}
	printer.Println("")
}

func printParameters(printer *output.Printer, params []HelpParameter) {
	for _, p := range params {
		line := fmt.Sprintf("\t%s %s %s",
			printer.Style(output.SemanticVariable, p.Name),
			printer.Style(output.SemanticKeyword, p.Summary()),
			printer.Style(output.SemanticComment, p.Description))
		printer.Println(strings.TrimRight(line, " "))
	}
}

// formatGuide explains the token syntax shared by every command.
const formatGuide = `Format:
	-someArgument=value
	--someOption[=optionalValue]
	--someFlag
For array values use following:
	-someArgument=1,2,3,4
Arguments are required to have values
Options may either work only as flags, or as arguments with default values
Use --help flag with given command to see its help`

// formatGuideMarkdown is formatGuide for the styled renderer.
const formatGuideMarkdown = "# argconsole\n\n" +
	"Tokens take one of three forms:\n\n" +
	"* `-someArgument=value` required argument\n" +
	"* `--someOption[=optionalValue]` option, falls back to its default\n" +
	"* `--someFlag` flag\n\n" +
	"Array values are comma separated: `-someArgument=1,2,3,4`.\n\n" +
	"Use `--help` with a command to see its help.\n"

// HelpCommand prints the token format and the help of every other command.
type HelpCommand struct {
	others  []command.Command
	printer *output.Printer
}

// NewHelpCommand creates a help command listing others.
func NewHelpCommand(others []command.Command, printer *output.Printer) *HelpCommand {
	return &HelpCommand{others: others, printer: printer}
}

// Name returns "help".
func (c *HelpCommand) Name() string {
	return "help"
}

// Description returns a brief description of what the help command does.
func (c *HelpCommand) Description() string {
	return "Show the token format and help for all commands"
}

// Help has no extra lines.
func (c *HelpCommand) Help() []string {
	return nil
}

// Parameters is empty: help takes no parameters.
func (c *HelpCommand) Parameters() []schema.Parameter {
	return nil
}

// Run prints the format guide followed by every command's help.
func (c *HelpCommand) Run(_ *command.Data) error {
	c.printGuide()
	for _, cmd := range c.others {
		PrintHelp(c.printer, cmd)
	}
	return nil
}

func (c *HelpCommand) printGuide() {
	switch {
	case c.printer.Mode() == output.ModeJSON:
		names := make([]string, 0, len(c.others))
		for _, cmd := range c.others {
			names = append(names, cmd.Name())
		}
		c.printer.Record("guide", nil, map[string]any{"format": formatGuide, "commands": names})
		return
	case c.printer.IsStylable():
		err := c.printer.Markdown(formatGuideMarkdown)
		if err == nil {
			return
		}
		logger.Debug("Falling back to plain help guide", "error", err)
	}

	c.printer.Println("Command: " + c.printer.Style(output.SemanticCommand, c.Name()))
	for _, line := range strings.Split(formatGuide, "\n") {
		c.printer.Println("\t" + line)
	}
	c.printer.Println("")
}
