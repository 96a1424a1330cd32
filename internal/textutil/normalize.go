// Package textutil provides the string normalization used for fuzzy
// header and keyword comparison.
package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripDiacritics decomposes characters and removes combining marks, so
// "Descripción" compares equal to "descripcion".
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize lowercases, trims and strips diacritics from a string.
// Total function: invalid input is returned lowercased as-is.
func Normalize(s string) string {
	out, _, err := transform.String(stripDiacritics, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// CollapseWhitespace trims a string and replaces every whitespace run
// with a single space.
func CollapseWhitespace(s string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}
