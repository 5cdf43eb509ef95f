// Package testutils provides helpers shared by argconsole tests.
package testutils

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// AssertGolden fails t when actual differs from expected, reporting a
// compact character diff instead of two full dumps.
func AssertGolden(t testing.TB, expected, actual string) bool {
	t.Helper()
	if expected == actual {
		return true
	}
	t.Errorf("output mismatch:\n%s", Diff(expected, actual))
	return false
}

// UpdateEnv makes AssertGoldenFile rewrite golden files instead of
// comparing against them.
const UpdateEnv = "ARGCONSOLE_UPDATE_GOLDEN"

// AssertGoldenFile compares actual with the contents of the golden file at path.
func AssertGoldenFile(t testing.TB, path, actual string) bool {
	t.Helper()
	if os.Getenv(UpdateEnv) != "" {
		if err := os.WriteFile(path, []byte(actual), 0644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", path, err)
		}
		return true
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v", path, err)
		return false
	}
	return AssertGolden(t, string(expected), actual)
}

// Diff renders the differences between expected and actual, one hunk per line:
// "-" for removed text, "+" for inserted text, and truncated context.
func Diff(expected, actual string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)

	var b strings.Builder
	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			fmt.Fprintf(&b, "- %q\n", diff.Text)
		case diffmatchpatch.DiffInsert:
			fmt.Fprintf(&b, "+ %q\n", diff.Text)
		case diffmatchpatch.DiffEqual:
			if len(diff.Text) > 50 {
				fmt.Fprintf(&b, "  %q...\n", diff.Text[:47])
			} else {
				fmt.Fprintf(&b, "  %q\n", diff.Text)
			}
		}
	}
	return b.String()
}
