package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"argconsole/internal/values"
)

var (
	// ErrNoAssignment means the parameter was named without "=value".
	ErrNoAssignment = errors.New("parser: parameter has no assignment")
	// ErrWrongFormat means a declaration or default could not be understood.
	ErrWrongFormat = errors.New("parser: wrong format")
	// ErrIncorrectValue means a number (or array element) failed to parse.
	ErrIncorrectValue = errors.New("parser: incorrect value")
	// ErrIndirectValue means an array of arrays was declared.
	ErrIndirectValue = errors.New("parser: nested arrays are not supported")
	// ErrNoValue means no token matched and there was no default.
	ErrNoValue = errors.New("parser: no value")
)

// Extract scans tokens for the first one whose key equals name and coerces
// its value to expected. When nothing matches, def is returned if non-nil.
//
// Only the first matching token counts; later duplicates are ignored.
func Extract(tokens []string, name string, expected values.Type, def *values.Value) (values.Value, error) {
	if expected.IsNestedArray() {
		return values.Value{}, fmt.Errorf("%s declared as %s: %w", name, expected, ErrIndirectValue)
	}

	bare := false
	for _, token := range tokens {
		key, raw, ok := SplitToken(token)
		if !ok {
			if token == name {
				bare = true
			}
			continue
		}
		if key != name {
			continue
		}

		v, err := Coerce(raw, expected)
		if err != nil {
			return values.Value{}, fmt.Errorf("%s: %w", name, err)
		}
		return v, nil
	}

	if def != nil {
		return *def, nil
	}
	if bare {
		return values.Value{}, fmt.Errorf("%s: %w", name, ErrNoAssignment)
	}
	return values.Value{}, fmt.Errorf("%s: %w", name, ErrNoValue)
}

// Coerce converts raw text into a value of the expected type.
func Coerce(raw string, expected values.Type) (values.Value, error) {
	elem, isArray := expected.Elem()
	if !isArray {
		return coerceScalar(raw, expected)
	}
	if !elem.IsScalar() {
		return values.Value{}, ErrIndirectValue
	}

	parts := strings.Split(raw, ListSeparator)
	items := make([]values.Value, 0, len(parts))
	for _, part := range parts {
		v, err := coerceScalar(part, elem)
		if err != nil {
			return values.Value{}, err
		}
		items = append(items, v)
	}
	return values.Array(items...), nil
}

func coerceScalar(raw string, expected values.Type) (values.Value, error) {
	switch expected.Kind() {
	case values.KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return values.Value{}, fmt.Errorf("%w: %q is not an integer", ErrIncorrectValue, raw)
		}
		return values.Int(n), nil
	case values.KindDouble:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return values.Value{}, fmt.Errorf("%w: %q is not a number", ErrIncorrectValue, raw)
		}
		return values.Double(f), nil
	case values.KindString:
		return values.String(raw), nil
	default:
		return values.Value{}, ErrIndirectValue
	}
}
