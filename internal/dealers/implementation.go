// internal/dealers/implementation.go
package dealers

import (
	"context"

	"go.uber.org/zap"

	"storefront/internal/search"
	"storefront/internal/telemetry"
)

// service implements the Service interface over an immutable dealer list.
type service struct {
	dealers []Dealer
	metrics *telemetry.SearchMetrics
	logger  *zap.Logger
}

// NewService creates a dealer locator over a private copy of dealers.
func NewService(dealers []Dealer, logger *zap.Logger) Service {
	return &service{
		dealers: append([]Dealer(nil), dealers...),
		metrics: telemetry.NewSearchMetrics("storefront/dealers"),
		logger:  logger,
	}
}

var policy = search.Policy[Dealer]{
	Preview:    PreviewSize,
	Searchable: Dealer.SearchableText,
	Matches: func(d Dealer, filter string) bool {
		return d.Offers(Offering(filter))
	},
}

// Search filters the dealer list. Results keep source order.
func (s *service) Search(ctx context.Context, q search.Query) []Dealer {
	results := search.Filter(s.dealers, q, policy)
	s.metrics.Record(ctx, q.Mode(), len(results))
	s.logger.Debug("dealer search",
		zap.String("query", q.Text),
		zap.String("service", q.Filter),
		zap.Int("results", len(results)),
	)
	return results
}

func (s *service) Offerings() []Offering {
	return append([]Offering(nil), Offerings...)
}
