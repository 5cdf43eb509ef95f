package schema

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"argconsole/internal/parser"
	"argconsole/internal/values"
	"argconsole/internal/version"
)

// Definition is a command declared in a schema file.
type Definition struct {
	Name        string
	Description string
	Help        []string
	Parameters  []Parameter
}

// fileSchema mirrors the on-disk layout shared by YAML and TOML files.
type fileSchema struct {
	// Requires is an optional semver constraint on the running argconsole.
	Requires string        `yaml:"requires" toml:"requires"`
	Commands []fileCommand `yaml:"commands" toml:"commands"`
}

type fileCommand struct {
	Name        string          `yaml:"name" toml:"name"`
	Description string          `yaml:"description" toml:"description"`
	Help        []string        `yaml:"help" toml:"help"`
	Parameters  []fileParameter `yaml:"parameters" toml:"parameters"`
}

// fileParameter sets exactly one of Argument, Option or Flag to the parameter name.
type fileParameter struct {
	Argument    string `yaml:"argument" toml:"argument"`
	Option      string `yaml:"option" toml:"option"`
	Flag        string `yaml:"flag" toml:"flag"`
	Type        string `yaml:"type" toml:"type"`
	Default     any    `yaml:"default" toml:"default"`
	Description string `yaml:"description" toml:"description"`
}

// LoadFile reads command definitions from a .yaml, .yml or .toml file.
func LoadFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return nil, fmt.Errorf("unsupported schema file extension %q (use .yaml, .yml or .toml)", ext)
	}
}

// ParseYAML decodes command definitions from YAML.
func ParseYAML(data []byte) ([]Definition, error) {
	var fs fileSchema
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("failed to parse YAML schema: %w", err)
	}
	return fs.definitions()
}

// ParseTOML decodes command definitions from TOML.
func ParseTOML(data []byte) ([]Definition, error) {
	var fs fileSchema
	if err := toml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("failed to parse TOML schema: %w", err)
	}
	return fs.definitions()
}

func (fs fileSchema) definitions() ([]Definition, error) {
	if fs.Requires != "" {
		if err := version.Satisfies(fs.Requires); err != nil {
			return nil, err
		}
	}

	seen := make(map[string]bool)
	defs := make([]Definition, 0, len(fs.Commands))

	for _, fc := range fs.Commands {
		if fc.Name == "" {
			return nil, fmt.Errorf("command without a name: %w", parser.ErrWrongFormat)
		}
		if seen[fc.Name] {
			return nil, fmt.Errorf("command %s declared twice", fc.Name)
		}
		seen[fc.Name] = true

		params, err := fc.parameters()
		if err != nil {
			return nil, fmt.Errorf("command %s: %w", fc.Name, err)
		}

		defs = append(defs, Definition{
			Name:        fc.Name,
			Description: fc.Description,
			Help:        fc.Help,
			Parameters:  params,
		})
	}
	return defs, nil
}

func (fc fileCommand) parameters() ([]Parameter, error) {
	seen := make(map[string]bool)
	params := make([]Parameter, 0, len(fc.Parameters))

	for i, fp := range fc.Parameters {
		p, err := fp.parameter()
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i+1, err)
		}
		key := p.ConsoleName()
		if seen[key] {
			return nil, fmt.Errorf("parameter %s declared twice", key)
		}
		seen[key] = true
		params = append(params, p)
	}
	return params, nil
}

func (fp fileParameter) parameter() (Parameter, error) {
	set := 0
	for _, name := range []string{fp.Argument, fp.Option, fp.Flag} {
		if name != "" {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("exactly one of argument, option or flag must be set: %w", parser.ErrWrongFormat)
	}

	if fp.Flag != "" {
		if fp.Type != "" || fp.Default != nil {
			return nil, fmt.Errorf("flag %s cannot have a type or default: %w", fp.Flag, parser.ErrWrongFormat)
		}
		return NewFlag(fp.Flag, fp.Description), nil
	}

	expected, err := values.ParseType(fp.Type)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, parser.ErrWrongFormat)
	}
	if expected.IsNestedArray() {
		return nil, fmt.Errorf("type %s: %w", expected, parser.ErrIndirectValue)
	}

	if fp.Argument != "" {
		if fp.Default != nil {
			return nil, fmt.Errorf("argument %s cannot have a default: %w", fp.Argument, parser.ErrWrongFormat)
		}
		return NewArgument(fp.Argument, expected, fp.Description), nil
	}

	var def *values.Value
	if fp.Default != nil {
		text, err := defaultText(fp.Default)
		if err != nil {
			return nil, fmt.Errorf("default for option %s: %v: %w", fp.Option, err, parser.ErrWrongFormat)
		}
		v, err := parser.Coerce(text, expected)
		if err != nil {
			return nil, fmt.Errorf("default for option %s: %v: %w", fp.Option, err, parser.ErrWrongFormat)
		}
		def = &v
	}
	return NewOption(fp.Option, expected, def, fp.Description), nil
}

// defaultText renders a decoded default as token text. Numbers keep their
// shortest form and arrays are joined with commas.
func defaultText(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			if _, nested := item.([]any); nested {
				return "", errors.New("nested array default")
			}
			text, err := defaultText(item)
			if err != nil {
				return "", err
			}
			items[i] = text
		}
		return strings.Join(items, parser.ListSeparator), nil
	default:
		return "", fmt.Errorf("unsupported default %v (%T)", raw, raw)
	}
}
