package testutils

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Normalizer replaces output that changes between runs with stable
// placeholders before golden comparison.
type Normalizer struct {
	patterns []pattern
}

type pattern struct {
	re          *regexp.Regexp
	placeholder string
}

var uuidPattern = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

// NewNormalizer returns a normalizer that masks UUIDs.
func NewNormalizer() *Normalizer {
	return &Normalizer{patterns: []pattern{{re: uuidPattern, placeholder: "<UUID>"}}}
}

// WithLiteral masks every occurrence of text, e.g. a t.TempDir() path.
func (n *Normalizer) WithLiteral(text, placeholder string) *Normalizer {
	if text == "" {
		return n
	}
	n.patterns = append(n.patterns, pattern{re: regexp.MustCompile(regexp.QuoteMeta(text)), placeholder: placeholder})
	return n
}

// Normalize strips ANSI sequences and trailing spaces, normalizes line
// endings, then applies the placeholders.
func (n *Normalizer) Normalize(s string) string {
	s = ansi.Strip(strings.ReplaceAll(s, "\r\n", "\n"))

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	s = strings.Join(lines, "\n")

	for _, p := range n.patterns {
		s = p.re.ReplaceAllString(s, p.placeholder)
	}
	return s
}
