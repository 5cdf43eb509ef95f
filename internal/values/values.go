// Package values defines the typed value model used by argconsole.
// A Type describes what a parameter expects, a Value holds what was parsed.
package values

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNoValue is returned by the typed accessors when the Value holds a different variant.
var ErrNoValue = errors.New("values: value holds a different variant")

// Kind identifies the variant of a Type or Value.
type Kind int

const (
	// KindInt is a signed integer.
	KindInt Kind = iota
	// KindDouble is a 64-bit float.
	KindDouble
	// KindString is raw text.
	KindString
	// KindArray is a sequence of another kind.
	KindArray
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindDouble:
		return "Double"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Type is a recursive type descriptor. The zero value is IntType.
type Type struct {
	kind Kind
	elem *Type
}

// IntType declares an integer parameter.
func IntType() Type { return Type{kind: KindInt} }

// DoubleType declares a floating point parameter.
func DoubleType() Type { return Type{kind: KindDouble} }

// StringType declares a text parameter.
func StringType() Type { return Type{kind: KindString} }

// ArrayOf declares a comma separated list of elem.
func ArrayOf(elem Type) Type {
	return Type{kind: KindArray, elem: &elem}
}

// Kind returns the variant of the type.
func (t Type) Kind() Kind {
	return t.kind
}

// Elem returns the element type of an array type.
// ok is false when t is not an array.
func (t Type) Elem() (Type, bool) {
	if t.kind != KindArray || t.elem == nil {
		return Type{}, false
	}
	return *t.elem, true
}

// IsScalar reports whether t is Int, Double or String.
func (t Type) IsScalar() bool {
	return t.kind != KindArray
}

// IsNestedArray reports whether t is an array whose elements are arrays.
func (t Type) IsNestedArray() bool {
	elem, ok := t.Elem()
	return ok && elem.kind == KindArray
}

// String renders the type as Int, Double, String or Array<T>.
func (t Type) String() string {
	if elem, ok := t.Elem(); ok {
		return "Array<" + elem.String() + ">"
	}
	return t.kind.String()
}

// ParseType parses a type name as written in schema files.
// Accepted forms are the String rendering (Array<Int>), lower case aliases
// (int, double, float, string), array<T> and []T.
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	switch lower {
	case "int", "integer":
		return IntType(), nil
	case "double", "float":
		return DoubleType(), nil
	case "string", "str":
		return StringType(), nil
	}

	if strings.HasPrefix(lower, "[]") {
		elem, err := ParseType(s[2:])
		if err != nil {
			return Type{}, err
		}
		return ArrayOf(elem), nil
	}

	if strings.HasPrefix(lower, "array<") && strings.HasSuffix(lower, ">") {
		elem, err := ParseType(s[len("array<") : len(s)-1])
		if err != nil {
			return Type{}, err
		}
		return ArrayOf(elem), nil
	}

	return Type{}, fmt.Errorf("unknown value type %q", s)
}

// Value is a tagged union of Int, Double, String and Array values.
// Use the constructors to build one and the typed accessors to unwrap it.
type Value struct {
	kind  Kind
	i     int
	d     float64
	s     string
	items []Value
}

// Int wraps an integer.
func Int(v int) Value { return Value{kind: KindInt, i: v} }

// Double wraps a float.
func Double(v float64) Value { return Value{kind: KindDouble, d: v} }

// String wraps text.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Array wraps a sequence of values.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, items: items}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// Int returns the integer held by v.
func (v Value) Int() (int, error) {
	if v.kind != KindInt {
		return 0, fmt.Errorf("%w: want Int, have %s", ErrNoValue, v.kind)
	}
	return v.i, nil
}

// Double returns the float held by v.
func (v Value) Double() (float64, error) {
	if v.kind != KindDouble {
		return 0, fmt.Errorf("%w: want Double, have %s", ErrNoValue, v.kind)
	}
	return v.d, nil
}

// Str returns the text held by v.
func (v Value) Str() (string, error) {
	if v.kind != KindString {
		return "", fmt.Errorf("%w: want String, have %s", ErrNoValue, v.kind)
	}
	return v.s, nil
}

// Array returns the elements held by v. The slice is a copy.
func (v Value) Array() ([]Value, error) {
	if v.kind != KindArray {
		return nil, fmt.Errorf("%w: want Array, have %s", ErrNoValue, v.kind)
	}
	out := make([]Value, len(v.items))
	copy(out, v.items)
	return out, nil
}

// String renders v as Int(1), Double(1.5), String(x) or Array(Int(1),Int(2)).
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return "Int(" + strconv.Itoa(v.i) + ")"
	case KindDouble:
		return "Double(" + formatDouble(v.d) + ")"
	case KindString:
		return "String(" + v.s + ")"
	case KindArray:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.String()
		}
		return "Array(" + strings.Join(parts, ",") + ")"
	default:
		return fmt.Sprintf("Value(%d)", int(v.kind))
	}
}

// Equal reports whether v and other hold the same variant and contents.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == other.i
	case KindDouble:
		return v.d == other.d
	case KindString:
		return v.s == other.s
	case KindArray:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Native returns v as a plain Go value (int, float64, string or []any),
// used for JSON output.
func (v Value) Native() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindDouble:
		return v.d
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Native()
		}
		return out
	}
	return nil
}

// maxPlainDouble is 2^53, the first magnitude rendered in exponent form.
const maxPlainDouble = 1 << 53

// formatDouble keeps a decimal point on integral values so 2 renders as 2.0.
// Magnitudes in [1e-4, 2^53) use positional notation.
func formatDouble(d float64) string {
	format := byte('g')
	if abs := math.Abs(d); abs == 0 || (abs >= 1e-4 && abs < maxPlainDouble) {
		format = 'f'
	}
	s := strconv.FormatFloat(d, format, -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}
