package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argconsole/internal/parser"
	"argconsole/internal/schema"
	"argconsole/internal/values"
)

func testParameters() []schema.Parameter {
	limit := values.Int(10)
	return []schema.Parameter{
		schema.NewArgument("count", values.IntType(), "how many"),
		schema.NewArgument("nums", values.ArrayOf(values.IntType()), "numbers"),
		schema.NewOption("limit", values.IntType(), &limit, "upper bound"),
		schema.NewOption("label", values.StringType(), nil, "optional label"),
		schema.NewFlag("verbose", "chatty output"),
	}
}

func TestNewData_MissingArgument(t *testing.T) {
	tests := []struct {
		name  string
		input []string
	}{
		{name: "no tokens", input: nil},
		{name: "one argument missing", input: []string{"-count=1"}},
		{name: "option form does not count", input: []string{"-count=1", "--nums=1,2"}},
		{name: "bare name does not count", input: []string{"-count=1", "-nums"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := NewData(testParameters(), tt.input)
			assert.Nil(t, data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingCommandArguments))
		})
	}
}

func TestNewData_PresenceOnly(t *testing.T) {
	// badly typed values still bind; the error surfaces on lookup
	data, err := NewData(testParameters(), []string{"-count=many", "-nums=1,2"})
	require.NoError(t, err)

	_, err = data.Value("count")
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrIncorrectValue))

	var argErr *ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "count", argErr.Argument.Name)
}

func TestData_Value(t *testing.T) {
	data, err := NewData(testParameters(), []string{"-count=3", "-nums=1,2,3"})
	require.NoError(t, err)

	v, err := data.Value("count")
	require.NoError(t, err)
	assert.Equal(t, values.Int(3), v)

	v, err = data.Value("nums")
	require.NoError(t, err)
	assert.Equal(t, "Array(Int(1),Int(2),Int(3))", v.String())
}

func TestData_ValueIsIdempotent(t *testing.T) {
	data, err := NewData(testParameters(), []string{"-count=3", "-nums=4"})
	require.NoError(t, err)

	first, err1 := data.Value("count")
	second, err2 := data.Value("count")
	assert.Equal(t, err1, err2)
	assert.Equal(t, first, second)
}

func TestData_UnknownNames(t *testing.T) {
	data, err := NewData(testParameters(), []string{"-count=3", "-nums=4"})
	require.NoError(t, err)

	_, err = data.Value("ghost")
	assertNotAllowed(t, err, "ghost")

	// options are not arguments
	_, err = data.Value("limit")
	assertNotAllowed(t, err, "limit")

	_, err = data.Flag("count")
	assertNotAllowed(t, err, "count")

	_, _, err = data.OptionalValue("ghost")
	assertNotAllowed(t, err, "ghost")
}

func assertNotAllowed(t *testing.T, err error, name string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParameterNameNotAllowed))

	var notAllowed *ParameterNameNotAllowedError
	require.True(t, errors.As(err, &notAllowed))
	assert.Equal(t, name, notAllowed.Name)
}

func TestData_Flag(t *testing.T) {
	tests := []struct {
		name  string
		extra []string
		want  bool
	}{
		{name: "absent", want: false},
		{name: "present", extra: []string{"--verbose"}, want: true},
		{name: "with value is not a flag", extra: []string{"--verbose=true"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := append([]string{"-count=1", "-nums=1"}, tt.extra...)
			data, err := NewData(testParameters(), input)
			require.NoError(t, err)

			got, err := data.Flag("verbose")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestData_FlagOnValueOption(t *testing.T) {
	data, err := NewData(testParameters(), []string{"-count=1", "-nums=1", "--limit"})
	require.NoError(t, err)

	got, err := data.Flag("limit")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestData_OptionalValue(t *testing.T) {
	tests := []struct {
		name        string
		option      string
		extra       []string
		wantPresent bool
		want        values.Value
	}{
		{name: "default when absent", option: "limit", wantPresent: true, want: values.Int(10)},
		{name: "given value", option: "limit", extra: []string{"--limit=4"}, wantPresent: true, want: values.Int(4)},
		{name: "default absorbs bad value", option: "limit", extra: []string{"--limit=x"}, wantPresent: true, want: values.Int(10)},
		{name: "no default", option: "label", wantPresent: false},
		{name: "no default, bad value", option: "label", extra: []string{"--label"}, wantPresent: false},
		{name: "string given", option: "label", extra: []string{"--label=hi"}, wantPresent: true, want: values.String("hi")},
		{name: "flag has no value", option: "verbose", extra: []string{"--verbose"}, wantPresent: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := append([]string{"-count=1", "-nums=1"}, tt.extra...)
			data, err := NewData(testParameters(), input)
			require.NoError(t, err)

			v, present, err := data.OptionalValue(tt.option)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPresent, present)
			if tt.wantPresent {
				assert.Equal(t, tt.want, v)
			}
		})
	}
}

func TestData_FailLoudVersusFailSoft(t *testing.T) {
	limit := values.Int(10)
	params := []schema.Parameter{
		schema.NewArgument("size", values.IntType(), ""),
		schema.NewOption("size", values.IntType(), &limit, ""),
	}

	data, err := NewData(params, []string{"-size=big", "--size=big"})
	require.NoError(t, err)

	_, err = data.Value("size")
	assert.True(t, errors.Is(err, parser.ErrIncorrectValue))

	v, present, err := data.OptionalValue("size")
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, limit, v)
}

func TestData_TypedLookups(t *testing.T) {
	params := []schema.Parameter{
		schema.NewArgument("n", values.IntType(), ""),
		schema.NewArgument("ratio", values.DoubleType(), ""),
		schema.NewArgument("name", values.StringType(), ""),
		schema.NewArgument("tags", values.ArrayOf(values.StringType()), ""),
	}
	data, err := NewData(params, []string{"-n=2", "-ratio=0.5", "-name=x", "-tags=a,b"})
	require.NoError(t, err)

	n, err := data.Int("n")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	ratio, err := data.Double("ratio")
	require.NoError(t, err)
	assert.Equal(t, 0.5, ratio)

	name, err := data.String("name")
	require.NoError(t, err)
	assert.Equal(t, "x", name)

	tags, err := data.Array("tags")
	require.NoError(t, err)
	assert.Len(t, tags, 2)

	_, err = data.Int("name")
	assert.True(t, errors.Is(err, values.ErrNoValue))

	_, err = data.Double("ghost")
	assert.True(t, errors.Is(err, ErrParameterNameNotAllowed))
}

func TestData_InputIsCopied(t *testing.T) {
	input := []string{"-count=1", "-nums=1"}
	data, err := NewData(testParameters(), input)
	require.NoError(t, err)

	got := data.Input()
	got[0] = "-count=2"

	n, err := data.Int("count")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
