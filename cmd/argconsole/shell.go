package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"argconsole/internal/command"
	"argconsole/internal/logger"
	"argconsole/internal/output"
	"argconsole/internal/parser"
)

const shellPrompt = "argconsole> "

// commandCompleter completes command names in the first word of a line.
// It implements readline.AutoCompleter.
type commandCompleter struct {
	names []string
}

func newCommandCompleter(cmds []command.Command) *commandCompleter {
	names := make([]string, 0, len(cmds)+3)
	for _, cmd := range cmds {
		names = append(names, cmd.Name())
	}
	names = append(names, "help", "exit", "quit")
	return &commandCompleter{names: names}
}

// Do returns the suffixes that complete the word under the cursor.
func (c *commandCompleter) Do(line []rune, pos int) ([][]rune, int) {
	if pos > len(line) {
		pos = len(line)
	}
	word := string(line[:pos])
	if strings.ContainsAny(word, " \t") {
		return nil, 0
	}

	var suggestions [][]rune
	for _, name := range c.names {
		if strings.HasPrefix(name, word) {
			suggestions = append(suggestions, []rune(strings.TrimPrefix(name, word)))
		}
	}
	return suggestions, len([]rune(word))
}

// newLineReader builds the readline instance for the shell. Input that is not
// the process stdin is read without touching the terminal.
func newLineReader(in io.Reader, out io.Writer, cmds []command.Command) (*readline.Instance, error) {
	cfg := &readline.Config{
		Prompt:          shellPrompt,
		AutoComplete:    newCommandCompleter(cmds),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          out,
		Stderr:          out,
	}
	if f, ok := in.(*os.File); !ok || f != os.Stdin {
		cfg.Stdin = io.NopCloser(in)
		cfg.FuncIsTerminal = func() bool { return false }
		cfg.FuncMakeRaw = func() error { return nil }
		cfg.FuncExitRaw = func() error { return nil }
		cfg.FuncGetWidth = func() int { return 80 }
		cfg.FuncOnWidthChanged = func(func()) {}
	}
	return readline.NewEx(cfg)
}

// shellLoop reads invocations until EOF, Ctrl-C or "exit". Failures are
// reported by the console and do not end the session.
func shellLoop(in io.Reader, out io.Writer, cmds []command.Command, trimFirst bool, printer *output.Printer) error {
	log := logger.NewStyledLogger("Shell")

	rl, err := newLineReader(in, out, cmds)
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		tokens, err := parser.SplitLine(line)
		if err != nil {
			printer.Error(err.Error())
			continue
		}
		if len(tokens) == 0 {
			continue
		}
		if len(tokens) == 1 && (tokens[0] == "exit" || tokens[0] == "quit") {
			return nil
		}

		if err := dispatchWith(cmds, tokens, trimFirst, printer); err != nil {
			log.Debug("Invocation failed", "command", tokens[0], "error", err)
		}
	}
}
