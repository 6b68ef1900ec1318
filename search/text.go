package search

import (
	"strings"
	"unicode/utf8"
)

// minTokenLength is the minimum rune length for a query token to take
// part in scoring. This is a length stop-filter, not a stopword list:
// fragments like "at", "to", or "is" fall out naturally.
const minTokenLength = 3

// Tokenize lowercases a query, splits it on whitespace, and discards
// tokens shorter than three runes. The result may be empty.
func Tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < minTokenLength {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
