// internal/products/service.go
package products

import (
	"context"

	"storefront/internal/search"
)

// PreviewSize is the number of products shown before any search.
const PreviewSize = 6

// Service defines the interface for the product catalog.
type Service interface {
	Search(ctx context.Context, q search.Query) []Product
	Categories() []Category
	CategoryLabel(id string) string
	Currency() string
}
