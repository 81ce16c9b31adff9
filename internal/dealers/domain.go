// internal/dealers/domain.go
package dealers

import (
	"storefront/internal/textmatch"
)

// Offering is a service a dealer provides.
type Offering string

const (
	OfferingSales      Offering = "sales"
	OfferingAfterSales Offering = "after-sales"
	OfferingParts      Offering = "parts"
)

// Offerings lists every known offering in display order.
var Offerings = []Offering{OfferingSales, OfferingAfterSales, OfferingParts}

// Label returns the human-readable name of o.
func (o Offering) Label() string {
	switch o {
	case OfferingSales:
		return "Sales"
	case OfferingAfterSales:
		return "After-sales"
	case OfferingParts:
		return "Parts"
	default:
		return string(o)
	}
}

// Valid reports whether o is a known offering.
func (o Offering) Valid() bool {
	switch o {
	case OfferingSales, OfferingAfterSales, OfferingParts:
		return true
	}
	return false
}

// Dealer is a point of sale or service in the network.
type Dealer struct {
	ID         string     `yaml:"id" json:"id"`
	Name       string     `yaml:"name" json:"name"`
	Address    string     `yaml:"address" json:"address"`
	City       string     `yaml:"city" json:"city"`
	PostalCode string     `yaml:"postal_code" json:"postalCode"`
	Phone      string     `yaml:"phone" json:"phone"`
	Services   []Offering `yaml:"services" json:"services"`
}

// Offers reports whether the dealer provides o.
func (d Dealer) Offers(o Offering) bool {
	for _, s := range d.Services {
		if s == o {
			return true
		}
	}
	return false
}

// SearchableText is the text a free-text query is matched against.
func (d Dealer) SearchableText() string {
	return textmatch.Join(d.Name, d.City, d.PostalCode, d.Address)
}
