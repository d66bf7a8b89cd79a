package table

import (
	"regexp"
	"strings"
)

var aliasSeparators = regexp.MustCompile(`\s+`)

// deriveAliases builds one alias per header column: lowercased, with runs
// of whitespace and line breaks collapsed to a single underscore.
func deriveAliases(header []string) []string {
	aliases := make([]string, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		aliases[i] = aliasSeparators.ReplaceAllString(h, "_")
	}
	return aliases
}

// Resolve maps a column reference to its canonical index. Integer
// references pass through unvalidated (out-of-range indices are a caller
// error); string references look up the alias list. Anything else, or an
// unregistered alias, reports not-found.
func (t *Table) Resolve(ref interface{}) (int, bool) {
	switch r := ref.(type) {
	case int:
		return r, true
	case string:
		for i, alias := range t.aliases {
			if alias == r {
				return i, true
			}
		}
	}
	return 0, false
}
