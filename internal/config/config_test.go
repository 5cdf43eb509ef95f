package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestResolve_Defaults(t *testing.T) {
	cfg, err := Resolve(New())
	require.NoError(t, err)

	assert.Equal(t, "", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.Output)
	assert.False(t, cfg.TestMode)
	assert.False(t, cfg.TrimFirst)
	assert.Empty(t, cfg.Schemas)
}

func TestResolve_Environment(t *testing.T) {
	t.Setenv("ARGCONSOLE_LOG_LEVEL", "DEBUG")
	t.Setenv("ARGCONSOLE_OUTPUT", "json")
	t.Setenv("ARGCONSOLE_SCHEMAS", "a.yaml, b.toml")
	t.Setenv("ARGCONSOLE_TRIM_FIRST", "true")

	cfg, err := Resolve(New())
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, []string{"a.yaml", "b.toml"}, cfg.Schemas)
	assert.True(t, cfg.TrimFirst)
}

func TestResolve_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad output", KeyOutput, "xml"},
		{"bad level", KeyLogLevel, "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Set(tt.key, tt.value)
			_, err := Resolve(v)
			assert.ErrorIs(t, err, ErrInvalidSetting)
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "argconsole.yaml", "output: plain\nschemas:\n  - one.yaml\n  - two.yaml\nlog-level: warn\n")

	v := New()
	v.Set(KeyTestMode, true)
	cfg, err := Load(v, path)
	require.NoError(t, err)

	assert.Equal(t, "plain", cfg.Output)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, []string{"one.yaml", "two.yaml"}, cfg.Schemas)
	assert.True(t, cfg.TestMode)
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	v := New()
	v.Set(KeyTestMode, true)
	_, err := Load(v, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yaml", "output: plain\nlog-level: warn\n")
	envPath := writeFile(t, dir, ".env", "ARGCONSOLE_OUTPUT=json\nARGCONSOLE_TRIM_FIRST=true\nOTHER_KEY=ignored\n")

	v := New()
	v.SetConfigFile(configPath)
	require.NoError(t, v.ReadInConfig())
	require.NoError(t, LoadDotEnv(v, envPath))

	cfg, err := Resolve(v)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output, ".env overrides the config file")
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.TrimFirst)
	assert.False(t, v.IsSet("other-key"))
}

func TestLoadDotEnv_EnvironmentWins(t *testing.T) {
	t.Setenv("ARGCONSOLE_OUTPUT", "styled")
	envPath := writeFile(t, t.TempDir(), ".env", "ARGCONSOLE_OUTPUT=json\n")

	v := New()
	require.NoError(t, LoadDotEnv(v, envPath))

	cfg, err := Resolve(v)
	require.NoError(t, err)
	assert.Equal(t, "styled", cfg.Output)
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(New(), filepath.Join(t.TempDir(), ".env")))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList([]string{"a,b", " c ", ""}))
	assert.Nil(t, splitList(nil))
}
