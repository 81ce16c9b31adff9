// internal/products/implementation.go
package products

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"storefront/internal/search"
	"storefront/internal/telemetry"
	"storefront/internal/textmatch"
)

// service implements the Service interface over an immutable catalog.
type service struct {
	catalog Catalog
	policy  search.Policy[Product]
	metrics *telemetry.SearchMetrics
	logger  *zap.Logger
}

// NewService creates a product catalog over a private copy of c.
func NewService(c Catalog, logger *zap.Logger) Service {
	s := &service{
		catalog: c.clone(),
		metrics: telemetry.NewSearchMetrics("storefront/products"),
		logger:  logger,
	}
	s.policy = search.Policy[Product]{
		Preview:    PreviewSize,
		Searchable: s.searchableText,
		Matches: func(p Product, category string) bool {
			return p.Category == category
		},
	}
	return s
}

func (s *service) searchableText(p Product) string {
	return textmatch.Join(
		p.Name,
		p.Description,
		strings.Join(p.Highlights, "\n"),
		s.catalog.CategoryLabel(p.Category),
	)
}

// Search filters the catalog. Results keep source order.
func (s *service) Search(ctx context.Context, q search.Query) []Product {
	results := search.Filter(s.catalog.Products, q, s.policy)
	s.metrics.Record(ctx, q.Mode(), len(results))
	s.logger.Debug("product search",
		zap.String("query", q.Text),
		zap.String("category", q.Filter),
		zap.Int("results", len(results)),
	)
	return results
}

func (s *service) Categories() []Category {
	return append([]Category(nil), s.catalog.Categories...)
}

func (s *service) CategoryLabel(id string) string {
	return s.catalog.CategoryLabel(id)
}

func (s *service) Currency() string {
	return s.catalog.Currency
}
