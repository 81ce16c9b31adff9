// internal/products/domain.go
package products

import (
	"github.com/shopspring/decimal"
)

// Product is an item in the catalog.
type Product struct {
	ID          string          `yaml:"id" json:"id"`
	Name        string          `yaml:"name" json:"name"`
	Description string          `yaml:"description" json:"description"`
	Price       decimal.Decimal `yaml:"price" json:"price"`
	Category    string          `yaml:"category" json:"category"`
	Highlights  []string        `yaml:"highlights" json:"highlights"`
}

// Category groups products under a display label.
type Category struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
}

// Catalog is the full, immutable product list.
type Catalog struct {
	Currency   string     `yaml:"currency"`
	Categories []Category `yaml:"categories"`
	Products   []Product  `yaml:"products"`
}

// CategoryLabel returns the label for a category id, or the id itself when it
// is unknown.
func (c Catalog) CategoryLabel(id string) string {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat.Label
		}
	}
	return id
}
