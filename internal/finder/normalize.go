// Package finder implements the natural-language property search core:
// criteria extraction from free-text Spanish queries, deterministic filtering
// over the listings snapshot, conversational classification, and response
// formatting.
package finder

import "strings"

// accentFolds maps accented vowels and common variants to their base letter.
// Folding both dictionary keys and input text through the same table makes
// "cordoba" and "córdoba" compare equal everywhere.
var accentFolds = map[rune]rune{
	'á': 'a', 'à': 'a', 'ä': 'a', 'â': 'a',
	'é': 'e', 'è': 'e', 'ë': 'e', 'ê': 'e',
	'í': 'i', 'ì': 'i', 'ï': 'i', 'î': 'i',
	'ó': 'o', 'ò': 'o', 'ö': 'o', 'ô': 'o',
	'ú': 'u', 'ù': 'u', 'ü': 'u', 'û': 'u',
	'ñ': 'n',
}

// foldAccents replaces accented runes per the fold table.
func foldAccents(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if folded, ok := accentFolds[r]; ok {
			b.WriteRune(folded)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// canonicalize lowercases, trims, collapses internal whitespace, and folds
// accents. Every lexical rule in this package runs against canonicalized
// text, and the neighborhood dictionary keys are canonicalized the same way.
func canonicalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), " ")
	return foldAccents(s)
}
