// Package main provides the argconsole CLI entry point.
// argconsole dispatches "-name=value" / "--name=value" / "--flag" token lists
// to built-in commands and commands declared in schema files.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"argconsole/internal/command"
	"argconsole/internal/commands"
	_ "argconsole/internal/commands/builtin" // Import for side effects (init functions)
	"argconsole/internal/config"
	"argconsole/internal/logger"
	"argconsole/internal/output"
	"argconsole/internal/parser"
	"argconsole/internal/schema"
	"argconsole/internal/version"
)

var (
	configFile string
	detailed   bool
	keepGoing  bool

	settings = config.New()
	cfg      *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "argconsole [command] [tokens...]",
	Short: "Declarative command-line argument console",
	Long: `argconsole binds "-name=value" arguments, "--name=value" options and "--flag"
flags to typed command parameters and runs the matching command.
With no arguments it starts the interactive shell.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runShell(cmd.InOrStdin(), cmd.OutOrStdout())
		}
		return dispatch(args)
	},
}

// runCmd dispatches one invocation; every token after the command name is passed through untouched
var runCmd = &cobra.Command{
	Use:   "run <command> [tokens...]",
	Short: "Run one command",
	Long:  `Run one command with its tokens, e.g. "argconsole run sum -nums=1,2,3 --stats".`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return dispatch(args)
	},
}

// batchCmd represents the batch command for non-interactive execution
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Run one invocation per line of a file",
	Long: `Run every line of a file as one invocation. Tokens are split with shell
quoting rules; blank lines and lines starting with '#' are skipped.
Execution stops at the first failing line unless --keep-going is set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runBatch(args[0])
	},
}

// shellCmd represents the shell command (explicit version of default behavior)
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start interactive shell mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runShell(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// schemaCmd validates a schema file and prints help for the commands it declares
var schemaCmd = &cobra.Command{
	Use:   "schema <file>",
	Short: "Validate a schema file and show its commands",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return showSchema(args[0])
	},
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if detailed {
			output.Println(version.GetDetailedVersion())
			return
		}
		output.Println(version.GetFormattedVersion())
	},
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error("argconsole failed", "error", err)
	}
	_ = logger.Close()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String(config.KeyLogLevel, "", "Set log level (debug|info|warn|error) [default: info]")
	flags.String(config.KeyLogFile, "", "Write logs to file instead of stderr")
	flags.Bool(config.KeyTestMode, false, "Run in deterministic test mode")
	flags.String(config.KeyOutput, "auto", "Output mode (auto|plain|styled|json)")
	flags.StringSlice(config.KeySchemas, nil, "Schema files declaring extra commands")
	flags.Bool(config.KeyTrimFirst, false, "Drop the first token of every invocation (a program name)")
	flags.StringVar(&configFile, "config", "", "Config file [default: $XDG_CONFIG_HOME/argconsole/config.yaml]")

	if err := bindFlags(settings, flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding flags: %v\n", err)
		os.Exit(1)
	}

	// tokens after the command name belong to the command, not to cobra
	rootCmd.Flags().SetInterspersed(false)
	runCmd.Flags().SetInterspersed(false)

	batchCmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Continue after a failing line")
	versionCmd.Flags().BoolVar(&detailed, "detailed", false, "Show build details")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(versionCmd)

	// "help" is a console command; cobra's own would shadow it
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Configure logger and output before any command execution
	cobra.OnInitialize(initConfig)
}

// bindFlags exposes every flag in flags as the viper key of the same name,
// except --config which selects the file viper reads.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Name == "config" {
			return
		}
		if bindErr := v.BindPFlag(f.Name, f); bindErr != nil {
			err = fmt.Errorf("binding %s flag: %w", f.Name, bindErr)
		}
	})
	return err
}

func initConfig() {
	loaded, err := config.Load(settings, configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile, cfg.TestMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}

	output.ConfigureGlobal(output.OptionsFor(output.ParseMode(cfg.Output), cfg.TestMode)...)
	logger.Debug("Configuration loaded", "output", cfg.Output, "schemas", len(cfg.Schemas), "config", settings.ConfigFileUsed())
}

// availableCommands returns the built-ins followed by the commands declared
// in the configured schema files. A declared command named like a built-in
// never runs, since the first match wins.
func availableCommands(c *config.Config, printer *output.Printer) ([]command.Command, error) {
	cmds := commands.GlobalRegistry.GetAll()
	declared, err := commands.LoadDeclaredCommands(c.Schemas, printer)
	if err != nil {
		return nil, err
	}
	for _, cmd := range declared {
		if commands.GlobalRegistry.IsValidCommand(cmd.Name()) {
			logger.Warn("Declared command shadowed by built-in", "command", cmd.Name())
		}
	}
	return append(cmds, declared...), nil
}

func dispatch(tokens []string) error {
	printer := output.GetGlobalPrinter()
	cmds, err := availableCommands(cfg, printer)
	if err != nil {
		return err
	}
	return dispatchWith(cmds, tokens, cfg.TrimFirst, printer)
}

func dispatchWith(cmds []command.Command, tokens []string, trimFirst bool, printer *output.Printer) error {
	console, err := commands.NewConsole(tokens, cmds,
		commands.WithTrimFirst(trimFirst),
		commands.WithPrinter(printer))
	if err != nil {
		return err
	}
	return console.Run()
}

func runBatch(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open batch file: %w", err)
	}
	defer func() { _ = file.Close() }()

	printer := output.GetGlobalPrinter()
	cmds, err := availableCommands(cfg, printer)
	if err != nil {
		return err
	}

	logger.Info("Starting batch", "file", path, "version", version.GetVersion())
	return executeLines(file, cmds, cfg.TrimFirst, printer, !keepGoing)
}

func runShell(in io.Reader, out io.Writer) error {
	printer := output.GetGlobalPrinter()
	cmds, err := availableCommands(cfg, printer)
	if err != nil {
		return err
	}

	printer.Println(version.GetFormattedVersion())
	printer.Println("Type 'help' for commands or 'exit' to quit.")
	return shellLoop(in, out, cmds, cfg.TrimFirst, printer)
}

// executeLines runs every line of r as one invocation. With stopOnError the
// first failure ends the run and is returned with its line number.
func executeLines(r io.Reader, cmds []command.Command, trimFirst bool, printer *output.Printer, stopOnError bool) error {
	log := logger.NewStyledLogger("Batch")
	reader := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("line %d: %w", lineNo, readErr)
		}

		if err := executeLine(line, cmds, trimFirst, printer); err != nil {
			if stopOnError {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			log.Warn("Line failed", "line", lineNo, "error", err)
		}

		if readErr != nil {
			return nil
		}
	}
}

func executeLine(line string, cmds []command.Command, trimFirst bool, printer *output.Printer) error {
	tokens, err := parser.SplitLine(strings.TrimRight(line, "\r\n"))
	if err != nil || len(tokens) == 0 {
		return err
	}
	return dispatchWith(cmds, tokens, trimFirst, printer)
}

func showSchema(path string) error {
	defs, err := schema.LoadFile(path)
	if err != nil {
		return err
	}

	printer := output.GetGlobalPrinter()
	for _, def := range defs {
		commands.PrintHelp(printer, commands.NewDeclaredCommand(def, printer))
	}
	logger.Debug("Schema file is valid", "file", path, "commands", len(defs))
	return nil
}
