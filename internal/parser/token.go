// Package parser extracts typed values from raw invocation tokens.
//
// Tokens follow a fixed shape:
//
//	-name=value      required argument
//	--name=value     option carrying a value
//	--name           flag
//
// Array values are comma separated with no escaping.
package parser

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

const (
	// Assignment separates a token's key from its value.
	Assignment = "="
	// ListSeparator separates array elements inside a value.
	ListSeparator = ","
	// ArgumentPrefix starts the console name of a required argument.
	ArgumentPrefix = "-"
	// OptionPrefix starts the console name of an option or flag.
	OptionPrefix = "--"
)

// SplitToken splits a token at the first assignment.
// ok is false when the token carries no assignment at all.
func SplitToken(token string) (key, value string, ok bool) {
	return strings.Cut(token, Assignment)
}

// HasKey reports whether any token assigns a value to name,
// i.e. starts with name followed by the assignment.
func HasKey(tokens []string, name string) bool {
	prefix := name + Assignment
	for _, token := range tokens {
		if strings.HasPrefix(token, prefix) {
			return true
		}
	}
	return false
}

// HasToken reports whether any token equals name exactly.
func HasToken(tokens []string, name string) bool {
	for _, token := range tokens {
		if token == name {
			return true
		}
	}
	return false
}

// SplitLine breaks a line typed at the shell or read from a batch file into
// tokens, honouring shell quoting so values may contain spaces.
// Blank lines and lines starting with '#' yield no tokens.
func SplitLine(line string) ([]string, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	tokens, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("invalid line %q: %w", line, err)
	}
	return tokens, nil
}
