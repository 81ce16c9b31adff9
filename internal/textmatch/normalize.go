// internal/textmatch/normalize.go
package textmatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize case-folds s and strips diacritics, so "Gabès" and "GABES"
// normalize to the same string.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	// Transformers carry state; build a fresh chain per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC, cases.Fold())
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Contains reports whether the normalized haystack contains the normalized
// needle. An empty needle always matches.
func Contains(haystack, needle string) bool {
	return strings.Contains(Normalize(haystack), Normalize(needle))
}

// Join builds searchable text from the given fields. Fields are separated by a
// newline so a query can never match across two fields.
func Join(fields ...string) string {
	return strings.Join(fields, "\n")
}
