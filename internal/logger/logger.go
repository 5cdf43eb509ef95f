// Package logger holds the process wide charmbracelet/log logger and the
// structured events argconsole emits while binding and dispatching.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// EnvLogLevel is consulted when no level is passed to Configure.
const EnvLogLevel = "ARGCONSOLE_LOG_LEVEL"

// Logger is the global logger instance used throughout argconsole.
var Logger = newLogger(os.Stderr, log.InfoLevel)

// destination is where Logger and component loggers write.
var destination io.Writer = os.Stderr

// openFile is the log file opened by Configure, if any.
var openFile *os.File

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{Level: level})
}

// Configure sets the level and destination. An empty logLevel falls back to
// $ARGCONSOLE_LOG_LEVEL, then to info. Test mode pins the level to info so
// debug lines never reach golden output.
func Configure(logLevel string, logFile string, testMode bool) error {
	if logLevel == "" {
		logLevel = os.Getenv(EnvLogLevel)
	}
	level := ParseLevel(logLevel)
	if testMode {
		level = log.InfoLevel
	}

	var file *os.File
	if logFile != "" {
		var err error
		file, err = os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return err
		}
	}

	_ = closeFile()
	destination = os.Stderr
	if file != nil {
		openFile = file
		destination = file
	}
	Logger = newLogger(destination, level)
	return nil
}

// Close releases the log file opened by Configure and falls back to stderr.
func Close() error {
	err := closeFile()
	SetOutput(os.Stderr)
	return err
}

func closeFile() error {
	if openFile == nil {
		return nil
	}
	err := openFile.Close()
	openFile = nil
	return err
}

// SetOutput redirects the global logger, keeping its level. A log file opened
// by Configure is closed unless w is that file.
func SetOutput(w io.Writer) {
	if openFile != nil && w != io.Writer(openFile) {
		_ = closeFile()
	}
	destination = w
	Logger = newLogger(w, Logger.GetLevel())
}

// ParseLevel converts a level name to a log level, defaulting to info.
func ParseLevel(level string) log.Level {
	parsed, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.InfoLevel
	}
	return parsed
}

// Debug logs a debug message using the global logger.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message using the global logger.
func Info(msg interface{}, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message using the global logger.
func Warn(msg interface{}, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message using the global logger.
func Error(msg interface{}, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// Fatal logs and exits with status 1.
func Fatal(msg interface{}, keyvals ...interface{}) {
	Logger.Fatal(msg, keyvals...)
}

// CommandExecution logs the tokens a command is about to run with.
func CommandExecution(command string, tokens []string) {
	Debug("Executing command", "command", command, "tokens", tokens)
}

// Dispatch logs a dispatch attempt against one candidate command.
func Dispatch(invocation string, candidate string, outcome string) {
	Debug("Dispatch", "invocation", invocation, "command", candidate, "outcome", outcome)
}

// levelBadges are the background colors of the level labels of component loggers.
var levelBadges = map[log.Level]string{
	log.DebugLevel: "240",
	log.InfoLevel:  "33",
	log.WarnLevel:  "214",
	log.ErrorLevel: "196",
	log.FatalLevel: "88",
}

// keyColors highlight the keys argconsole logs most.
var keyColors = map[string]string{
	"command":    "46",
	"invocation": "51",
	"line":       "214",
	"error":      "196",
}

// NewStyledLogger creates a component logger (e.g. "Batch", "Shell") that
// writes where Logger writes, at its level, with badge styled levels.
func NewStyledLogger(prefix string) *log.Logger {
	styles := log.DefaultStyles()
	for level, bg := range levelBadges {
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(strings.ToUpper(level.String())).
			Padding(0, 1).
			Background(lipgloss.Color(bg)).
			Foreground(lipgloss.Color("15"))
	}
	for key, fg := range keyColors {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
	}
	styles.Values["error"] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	component := log.NewWithOptions(destination, log.Options{
		Prefix: prefix,
		Level:  Logger.GetLevel(),
	})
	component.SetStyles(styles)
	return component
}
