// internal/dealers/service.go
package dealers

import (
	"context"

	"storefront/internal/search"
)

// PreviewSize is the number of dealers shown before any search.
const PreviewSize = 3

// Service defines the interface for the dealer locator.
type Service interface {
	Search(ctx context.Context, q search.Query) []Dealer
	Offerings() []Offering
}
