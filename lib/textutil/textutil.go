package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeName produces a lowercased, whitespace-free form of an
// organization or counterparty name for loose comparison.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

// SignificantWords returns the words of a name longer than two characters,
// used for keyword-based organization lookup.
func SignificantWords(name string) []string {
	var words []string
	for _, w := range strings.Fields(name) {
		if len(w) > 2 {
			words = append(words, w)
		}
	}
	return words
}
