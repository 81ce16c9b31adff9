// internal/search/filter.go
package search

import (
	"strings"

	"storefront/internal/textmatch"
)

// Query is the ephemeral state extracted from a search form.
type Query struct {
	Text   string
	Filter string
}

// Trimmed returns q with surrounding whitespace removed from both fields.
func (q Query) Trimmed() Query {
	return Query{Text: strings.TrimSpace(q.Text), Filter: strings.TrimSpace(q.Filter)}
}

// IsZero reports whether neither a text query nor a filter is set.
func (q Query) IsZero() bool {
	q = q.Trimmed()
	return q.Text == "" && q.Filter == ""
}

// Mode names the branch of the filter policy q takes.
func (q Query) Mode() string {
	q = q.Trimmed()
	switch {
	case q.Text == "" && q.Filter == "":
		return "preview"
	case q.Text == "":
		return "filter"
	case q.Filter == "":
		return "text"
	default:
		return "text+filter"
	}
}

// Policy describes how a collection is searched.
type Policy[T any] struct {
	// Preview is the number of leading items shown for an empty query.
	Preview int
	// Searchable returns the text a query is matched against.
	Searchable func(T) string
	// Matches reports whether an item satisfies a non-empty filter.
	Matches func(item T, filter string) bool
}

// Filter applies q to items under p. The result keeps source order and never
// aliases items.
func Filter[T any](items []T, q Query, p Policy[T]) []T {
	q = q.Trimmed()

	if q.Text == "" && q.Filter == "" {
		n := min(max(p.Preview, 0), len(items))
		return append([]T{}, items[:n]...)
	}

	needle := textmatch.Normalize(q.Text)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if q.Filter != "" && !p.Matches(item, q.Filter) {
			continue
		}
		if needle != "" && !strings.Contains(textmatch.Normalize(p.Searchable(item)), needle) {
			continue
		}
		out = append(out, item)
	}
	return out
}
