package route

import (
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FuzzyFilter returns the candidates whose label contains the characters of term in order, though not necessarily adjacent.
// Matching is case-sensitive, and the relative order of candidates is preserved.
// No scoring is applied.
// Invalid UTF-8 in either string is compared as [utf8.RuneError].
func FuzzyFilter[T any](term string, candidates []T, labelOf func(T) string) []T {
	if labelOf == nil {
		panic("nil label function")
	}
	term = validUTF8(term)
	var matched []T
	for _, candidate := range candidates {
		if fuzzy.Match(term, validUTF8(labelOf(candidate))) {
			matched = append(matched, candidate)
		}
	}
	return matched
}

// SuggestOptions is the default [Chooser] suggest function.
// An empty term returns every option, otherwise options are narrowed with [FuzzyFilter] on their label.
func SuggestOptions(term string, options []Option) []Option {
	if term == "" {
		return options
	}
	return FuzzyFilter(term, options, func(opt Option) string {
		return opt.Label
	})
}

// validUTF8 replaces invalid bytes, since fuzzy.Match slices past them assuming a full-width replacement rune.
func validUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}
