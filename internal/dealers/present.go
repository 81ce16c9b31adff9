// internal/dealers/present.go
package dealers

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize/english"

	"storefront/internal/search"
	"storefront/internal/view"
)

// EmptyMessage is shown when a search returns no dealer.
const EmptyMessage = "No dealers match your search. Try another city, postal code or service."

// Present builds the view tree for a dealer search.
func Present(results []Dealer, q search.Query) view.Results {
	q = q.Trimmed()
	out := view.Results{
		Summary: summary(len(results), q),
		Empty:   EmptyMessage,
		Cards:   make([]view.Card, 0, len(results)),
	}
	for _, d := range results {
		out.Cards = append(out.Cards, card(d))
	}
	return out
}

func summary(n int, q search.Query) string {
	count := english.Plural(n, "dealer", "")
	if q.Text == "" && q.Filter == "" {
		return fmt.Sprintf("Showing %s from our network.", count)
	}

	var b strings.Builder
	b.WriteString(count)
	if q.Text != "" {
		fmt.Fprintf(&b, " matching %q", q.Text)
	}
	if q.Filter != "" {
		fmt.Fprintf(&b, " offering %s", Offering(q.Filter).Label())
	}
	b.WriteString(".")
	return b.String()
}

func card(d Dealer) view.Card {
	tags := make([]string, 0, len(d.Services))
	for _, s := range d.Services {
		tags = append(tags, s.Label())
	}
	return view.Card{
		ID:       d.ID,
		Title:    d.Name,
		Subtitle: d.City,
		Lines:    []string{d.Address, strings.TrimSpace(d.PostalCode + " " + d.City)},
		Tags:     tags,
		Meta:     d.Phone,
	}
}

// Options builds the service select for the search form.
func Options(offerings []Offering, selected string) []view.Option {
	opts := make([]view.Option, 0, len(offerings))
	for _, o := range offerings {
		opts = append(opts, view.Option{
			Value:    string(o),
			Label:    o.Label(),
			Selected: string(o) == selected,
		})
	}
	return opts
}
