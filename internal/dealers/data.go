// internal/dealers/data.go
package dealers

import (
	_ "embed"
	"sync"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"
)

//go:embed dealers.yaml
var embeddedDealers []byte

// Parse decodes and validates a dealer list.
func Parse(raw []byte) ([]Dealer, error) {
	var dealers []Dealer
	if err := yaml.Unmarshal(raw, &dealers); err != nil {
		return nil, errors.Wrap(err, "decode dealers")
	}

	seen := make(map[string]struct{}, len(dealers))
	for i, d := range dealers {
		if d.ID == "" || d.Name == "" {
			return nil, errors.Errorf("dealer %d: id and name are required", i)
		}
		if _, dup := seen[d.ID]; dup {
			return nil, errors.Errorf("dealer %q: duplicate id", d.ID)
		}
		seen[d.ID] = struct{}{}
		for _, s := range d.Services {
			if !s.Valid() {
				return nil, errors.Errorf("dealer %q: unknown service %q", d.ID, s)
			}
		}
	}
	return dealers, nil
}

var loadEmbedded = sync.OnceValues(func() ([]Dealer, error) {
	return Parse(embeddedDealers)
})

// Embedded returns a copy of the dealer list compiled into the binary.
func Embedded() ([]Dealer, error) {
	dealers, err := loadEmbedded()
	if err != nil {
		return nil, err
	}
	return append([]Dealer(nil), dealers...), nil
}
