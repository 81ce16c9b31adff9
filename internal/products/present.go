// internal/products/present.go
package products

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize/english"

	"storefront/internal/search"
	"storefront/internal/view"
)

// EmptyMessage is shown when a search returns no product.
const EmptyMessage = "No products match your search."

// Present builds the view tree for a product search.
func Present(svc Service, results []Product, q search.Query) view.Results {
	q = q.Trimmed()
	out := view.Results{
		Summary: summary(len(results), q, svc.CategoryLabel(q.Filter)),
		Empty:   EmptyMessage,
		Cards:   make([]view.Card, 0, len(results)),
	}
	for _, p := range results {
		out.Cards = append(out.Cards, view.Card{
			ID:       p.ID,
			Title:    p.Name,
			Subtitle: svc.CategoryLabel(p.Category),
			Lines:    append([]string{p.Description}, p.Highlights...),
			Meta:     formatPrice(p, svc.Currency()),
		})
	}
	return out
}

func summary(n int, q search.Query, categoryLabel string) string {
	count := english.Plural(n, "product", "")
	if q.Text == "" && q.Filter == "" {
		return fmt.Sprintf("Showing %s from the catalog.", count)
	}

	var b strings.Builder
	b.WriteString(count)
	if q.Text != "" {
		fmt.Fprintf(&b, " matching %q", q.Text)
	}
	if q.Filter != "" {
		fmt.Fprintf(&b, " in %s", categoryLabel)
	}
	b.WriteString(".")
	return b.String()
}

func formatPrice(p Product, currency string) string {
	return strings.TrimSpace(p.Price.StringFixed(2) + " " + currency)
}

// Options builds the category select for the search form.
func Options(categories []Category, selected string) []view.Option {
	opts := make([]view.Option, 0, len(categories))
	for _, c := range categories {
		opts = append(opts, view.Option{Value: c.ID, Label: c.Label, Selected: c.ID == selected})
	}
	return opts
}
