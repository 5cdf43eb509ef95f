package output

import (
	"encoding/json"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinterBasicOutput(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), TestMode())

	printer.Print("hello")
	printer.Println("world")
	printer.Printf("number: %d", 42)

	result := buffer.String()
	assert.Contains(t, result, "hello")
	assert.Contains(t, result, "world\n")
	assert.Contains(t, result, "number: 42")
}

func TestPrinterSemanticOutput(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), TestMode())

	printer.Info("information")
	printer.Success("completed")
	printer.Warning("careful")
	printer.Error("failed")

	assert.Equal(t, []string{
		"ℹ information",
		"✓ completed",
		"⚠ careful",
		"✗ failed",
	}, buffer.Lines())
}

func TestPrinterStyledOutput(t *testing.T) {
	provider := NewMockStyleProvider()
	result := CaptureOutputWithStyles(provider, func(p *Printer) {
		p.Error("bad")
	})
	assert.Equal(t, "[error]bad[/error]\n", result)
}

func TestPrinterPlainStripsANSI(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), PlainText())

	printer.Println("\x1b[1mbold\x1b[0m")
	assert.Equal(t, "bold\n", buffer.String())
}

func TestPrinterJSON(t *testing.T) {
	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), JSON())

	printer.Warning("careful")

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(buffer.String()), &got))
	assert.Equal(t, "warning", got["type"])
	assert.Equal(t, "careful", got["message"])
}

func TestPrinterRecord(t *testing.T) {
	fields := map[string]any{"sum": 6, "count": 3}

	plain := CaptureOutput(func(p *Printer) {
		p.Record("result", []string{"count", "sum"}, fields)
	})
	assert.Equal(t, "count: 3\nsum: 6\n", plain)

	buffer := NewCaptureBuffer()
	printer := NewPrinter(WithWriter(buffer), JSON())
	printer.Record("result", []string{"count", "sum"}, fields)
	printer.Record("result", nil, map[string]any{"sum": 1})

	records, err := buffer.Records()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "result", records[0]["type"])
	assert.Equal(t, float64(6), records[0]["sum"])
	assert.Equal(t, float64(1), records[1]["sum"])

	buffer.Reset()
	printer.Println("x")
	NewPrinter(WithWriter(buffer), TestMode()).Println("not json")
	_, err = buffer.Records()
	assert.ErrorContains(t, err, "line 2")
}

func TestPrinterSilent(t *testing.T) {
	buffer := NewCaptureBuffer()
	NewPrinter(WithWriter(buffer), Silent()).Println("nothing")
	assert.Equal(t, 0, buffer.Len())

	NewPrinter(WithWriter(buffer), Silent(), JSON()).Record("sum", []string{"a"}, map[string]any{"a": 1})
	assert.Equal(t, 0, buffer.Len())
}

func TestPrinterStyle(t *testing.T) {
	styled := NewPrinter(WithStyles(NewMockStyleProvider()))
	assert.Equal(t, "[command]sum[/command]", styled.Style(SemanticCommand, "sum"))

	plain := NewPrinter(TestMode())
	assert.Equal(t, "sum", plain.Style(SemanticCommand, "sum"))
}

func TestThemeAvailability(t *testing.T) {
	assert.False(t, NewThemeWithProfile(termenv.Ascii).IsAvailable())

	theme := NewThemeWithProfile(termenv.ANSI256)
	assert.True(t, theme.IsAvailable())
	assert.NotEqual(t, "err", theme.GetStyle("error").Render("err"))
	assert.Equal(t, "x", NewThemeWithProfile(termenv.ANSI256).GetStyle("unknown").Render("x"))
}

func TestPrinterModes(t *testing.T) {
	unavailable := NewThemeWithProfile(termenv.Ascii)

	auto := NewPrinter(WithStyles(unavailable))
	assert.False(t, auto.IsStylable())

	forced := NewPrinter(WithStyles(unavailable), WithMode(ModeStyled))
	assert.True(t, forced.IsStylable())

	plain := NewPrinter(WithStyles(NewMockStyleProvider()), PlainText())
	assert.False(t, plain.IsStylable())

	test := NewPrinter(WithMode(ModeStyled), WithStyles(NewMockStyleProvider()), TestMode())
	assert.False(t, test.IsStylable())
	assert.Equal(t, ModePlain, test.Mode())
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModePlain, ParseMode("plain"))
	assert.Equal(t, ModeStyled, ParseMode("styled"))
	assert.Equal(t, ModeJSON, ParseMode("json"))
	assert.Equal(t, ModeAuto, ParseMode("anything"))
	assert.Equal(t, "json", ModeJSON.String())
}

func TestOptionsFor(t *testing.T) {
	p := NewPrinter(OptionsFor(ModeJSON, true)...)
	assert.Equal(t, ModePlain, p.Mode())

	p = NewPrinter(OptionsFor(ModeJSON, false)...)
	assert.Equal(t, ModeJSON, p.Mode())

	p = NewPrinter(OptionsFor(ModeStyled, false)...)
	assert.True(t, p.IsStylable())
}

func TestGlobalPrinter(t *testing.T) {
	previous := GetGlobalPrinter()
	t.Cleanup(func() { SetGlobalPrinter(previous) })

	buffer := NewCaptureBuffer()
	ConfigureGlobal(WithWriter(buffer), TestMode())
	Println("hello")
	assert.Equal(t, "hello\n", buffer.String())
}

func TestPrinterMarkdown(t *testing.T) {
	buffer := NewCaptureBuffer()
	styled := NewPrinter(WithWriter(buffer), WithStyles(NewThemeWithProfile(termenv.ANSI256)), WithMode(ModeStyled))

	assert.Error(t, styled.Markdown("  "))
	require.NoError(t, styled.Markdown("# Commands\n\n* `sum`"))
	assert.Contains(t, ansi.Strip(buffer.String()), "sum")

	plain := NewPrinter(WithWriter(buffer), TestMode())
	assert.ErrorIs(t, plain.Markdown("# Commands"), ErrNotStylable)
}
