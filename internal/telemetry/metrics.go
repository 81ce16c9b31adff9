// internal/telemetry/metrics.go
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SearchMetrics counts local searches and their result sizes.
type SearchMetrics struct {
	queries metric.Int64Counter
	results metric.Int64Histogram
}

// NewSearchMetrics creates instruments under the given scope using the global
// meter provider.
func NewSearchMetrics(scope string) *SearchMetrics {
	meter := otel.Meter(scope)
	// Errors only occur for invalid instrument names.
	queries, _ := meter.Int64Counter("search.queries",
		metric.WithDescription("Number of searches run"))
	results, _ := meter.Int64Histogram("search.results",
		metric.WithDescription("Number of items returned per search"))
	return &SearchMetrics{queries: queries, results: results}
}

// Record notes one search of the given mode returning n items.
func (m *SearchMetrics) Record(ctx context.Context, mode string, n int) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("mode", mode))
	m.queries.Add(ctx, 1, attrs)
	m.results.Record(ctx, int64(n), attrs)
}
