// Package config layers argconsole settings from defaults, a config file,
// .env files, ARGCONSOLE_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable argconsole reads.
const EnvPrefix = "ARGCONSOLE"

// Setting keys. Flags share these names.
const (
	KeyLogLevel  = "log-level"
	KeyLogFile   = "log-file"
	KeyTestMode  = "test-mode"
	KeyOutput    = "output"
	KeySchemas   = "schemas"
	KeyTrimFirst = "trim-first"
)

// ErrInvalidSetting means a configured value is outside its allowed set.
var ErrInvalidSetting = errors.New("config: invalid setting")

// Config is the resolved configuration of one argconsole process.
type Config struct {
	LogLevel  string
	LogFile   string
	TestMode  bool
	Output    string
	Schemas   []string
	TrimFirst bool
}

// New returns a viper instance with argconsole defaults and environment
// lookup enabled. ARGCONSOLE_LOG_LEVEL maps to "log-level" and so on.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyTestMode, false)
	v.SetDefault(KeyOutput, "auto")
	v.SetDefault(KeySchemas, []string{})
	v.SetDefault(KeyTrimFirst, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file and the local .env file into v and resolves
// the result. An explicit configFile must exist; the default location
// ($XDG_CONFIG_HOME/argconsole/config.yaml) is optional. Test mode skips
// both default files so runs stay deterministic.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	testMode := v.GetBool(KeyTestMode)

	switch {
	case configFile != "":
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	case !testMode:
		if dir, err := os.UserConfigDir(); err == nil {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(filepath.Join(dir, "argconsole"))
			if err := v.ReadInConfig(); err != nil {
				var notFound viper.ConfigFileNotFoundError
				if !errors.As(err, &notFound) {
					return nil, fmt.Errorf("failed to read config file: %w", err)
				}
			}
		}
	}

	if !testMode {
		if err := LoadDotEnv(v, ".env"); err != nil {
			return nil, err
		}
	}

	return Resolve(v)
}

// LoadDotEnv merges ARGCONSOLE_* entries of a .env file into v's config
// layer, so they override the config file but not the real environment or
// flags. A missing file is not an error.
func LoadDotEnv(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read .env file %s: %w", path, err)
	}

	envMap, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return fmt.Errorf("failed to parse .env file %s: %w", path, err)
	}

	settings := make(map[string]any)
	for key, value := range envMap {
		name, ok := strings.CutPrefix(key, EnvPrefix+"_")
		if !ok {
			continue
		}
		settings[strings.ReplaceAll(strings.ToLower(name), "_", "-")] = value
	}
	if len(settings) == 0 {
		return nil
	}
	return v.MergeConfigMap(settings)
}

// Resolve validates v and returns its settings.
func Resolve(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		LogLevel:  strings.ToLower(v.GetString(KeyLogLevel)),
		LogFile:   v.GetString(KeyLogFile),
		TestMode:  v.GetBool(KeyTestMode),
		Output:    strings.ToLower(v.GetString(KeyOutput)),
		Schemas:   splitList(v.GetStringSlice(KeySchemas)),
		TrimFirst: v.GetBool(KeyTrimFirst),
	}

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error", "fatal":
	default:
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidSetting, KeyLogLevel, cfg.LogLevel)
	}

	switch cfg.Output {
	case "", "auto", "plain", "styled", "json":
	default:
		return nil, fmt.Errorf("%w: %s=%q", ErrInvalidSetting, KeyOutput, cfg.Output)
	}

	return cfg, nil
}

// splitList accepts both real lists and comma separated strings, which is
// how lists arrive from the environment and .env files.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
