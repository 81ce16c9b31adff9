// internal/products/data.go
package products

import (
	_ "embed"
	"sync"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Parse decodes and validates a catalog.
func Parse(raw []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Catalog{}, errors.Wrap(err, "decode catalog")
	}

	known := make(map[string]struct{}, len(c.Categories))
	for _, cat := range c.Categories {
		known[cat.ID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(c.Products))
	for i, p := range c.Products {
		if p.ID == "" || p.Name == "" {
			return Catalog{}, errors.Errorf("product %d: id and name are required", i)
		}
		if _, dup := seen[p.ID]; dup {
			return Catalog{}, errors.Errorf("product %q: duplicate id", p.ID)
		}
		seen[p.ID] = struct{}{}
		if _, ok := known[p.Category]; !ok {
			return Catalog{}, errors.Errorf("product %q: unknown category %q", p.ID, p.Category)
		}
		if p.Price.IsNegative() {
			return Catalog{}, errors.Errorf("product %q: negative price", p.ID)
		}
	}
	return c, nil
}

var loadEmbedded = sync.OnceValues(func() (Catalog, error) {
	return Parse(embeddedCatalog)
})

// Embedded returns a copy of the catalog compiled into the binary.
func Embedded() (Catalog, error) {
	c, err := loadEmbedded()
	if err != nil {
		return Catalog{}, err
	}
	return c.clone(), nil
}

func (c Catalog) clone() Catalog {
	out := Catalog{
		Currency:   c.Currency,
		Categories: append([]Category(nil), c.Categories...),
		Products:   make([]Product, len(c.Products)),
	}
	for i, p := range c.Products {
		p.Highlights = append([]string(nil), p.Highlights...)
		out.Products[i] = p
	}
	return out
}
