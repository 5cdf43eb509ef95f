package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argconsole/internal/command"
	"argconsole/internal/output"
	"argconsole/internal/schema"
	"argconsole/internal/testutils"
	"argconsole/internal/values"
)

func sumMock() *MockCommand {
	precision := values.Int(2)
	cmd := NewMockCommand("sum",
		schema.NewFlag("verbose", "chatty"),
		schema.NewArgument("nums", values.ArrayOf(values.IntType()), "numbers"),
		schema.NewOption("precision", values.IntType(), &precision, "digits"),
		schema.NewOption("label", values.StringType(), nil, ""),
	)
	cmd.help = []string{"Adds numbers"}
	return cmd
}

func TestBuildHelpInfo(t *testing.T) {
	info := BuildHelpInfo(sumMock())

	assert.Equal(t, "sum", info.Command)
	require.Len(t, info.Arguments, 1)
	require.Len(t, info.Options, 3)

	assert.Equal(t, "Argument(Array<Int>)", info.Arguments[0].Summary())
	assert.Equal(t, "Flag", info.Options[0].Summary())
	assert.Equal(t, "Option(Int(2))", info.Options[1].Summary())
	assert.Equal(t, "Option(String)", info.Options[2].Summary())
}

func TestPrintHelp_Plain(t *testing.T) {
	got := output.CaptureOutput(func(p *output.Printer) {
		PrintHelp(p, sumMock())
	})

	expected := "Command: sum\n" +
		"Mock command: sum\n" +
		"Adds numbers\n" +
		"\n" +
		"\t-nums Argument(Array<Int>) numbers\n" +
		"\n" +
		"\t--verbose Flag chatty\n" +
		"\t--precision Option(Int(2)) digits\n" +
		"\t--label Option(String)\n" +
		"\n"

	testutils.AssertGolden(t, expected, got)
}

func TestPrintHelp_NoOptions(t *testing.T) {
	cmd := NewMockCommand("echo", schema.NewArgument("text", values.StringType(), ""))

	got := output.CaptureOutput(func(p *output.Printer) {
		PrintHelp(p, cmd)
	})

	testutils.AssertGolden(t, "Command: echo\nMock command: echo\n\n\t-text Argument(String)\n\n", got)
}

func TestPrintHelp_JSON(t *testing.T) {
	buffer := output.NewCaptureBuffer()
	printer := output.NewPrinter(output.WithWriter(buffer), output.JSON())

	PrintHelp(printer, sumMock())

	var got struct {
		Type      string          `json:"type"`
		Command   string          `json:"command"`
		Arguments []HelpParameter `json:"arguments"`
		Options   []HelpParameter `json:"options"`
	}
	require.NoError(t, json.Unmarshal([]byte(buffer.String()), &got))
	assert.Equal(t, "help", got.Type)
	assert.Equal(t, "sum", got.Command)
	require.Len(t, got.Arguments, 1)
	assert.Equal(t, "-nums", got.Arguments[0].Name)
	require.Len(t, got.Options, 3)
	assert.Equal(t, "Int(2)", got.Options[1].Default)
}

func TestHelpCommand_Run(t *testing.T) {
	buffer := output.NewCaptureBuffer()
	printer := output.NewPrinter(output.WithWriter(buffer), output.TestMode())

	help := NewHelpCommand([]command.Command{sumMock(), NewMockCommand("noop")}, printer)
	require.NoError(t, help.Run(nil))

	result := buffer.String()
	assert.Contains(t, result, "Command: help\n")
	assert.Contains(t, result, "\t\t-someArgument=1,2,3,4\n")
	assert.Contains(t, result, "Command: sum\n")
	assert.Contains(t, result, "Command: noop\n")
	assert.Empty(t, help.Parameters())
}
