package domain

import "github.com/shopspring/decimal"

// Catalog is the immutable (carrier, size) -> base price lookup. It is
// populated once at startup and never mutated afterwards.
type Catalog struct {
	prices        map[Carrier]map[PackageSize]decimal.Decimal
	cheapestSmall decimal.Decimal
	hasSmall      bool
}

// NewCatalog builds a catalog from per-carrier price lists, copying the
// input maps. The cheapest small-package price across all carriers is
// derived up front for the small-package discount rule.
func NewCatalog(prices map[Carrier]map[PackageSize]decimal.Decimal) *Catalog {
	c := &Catalog{prices: make(map[Carrier]map[PackageSize]decimal.Decimal, len(prices))}
	for carrier, list := range prices {
		copied := make(map[PackageSize]decimal.Decimal, len(list))
		for size, price := range list {
			copied[size] = price
			if size != SizeSmall {
				continue
			}
			if !c.hasSmall || price.LessThan(c.cheapestSmall) {
				c.cheapestSmall = price
				c.hasSmall = true
			}
		}
		c.prices[carrier] = copied
	}
	return c
}

// PriceOf looks up the base price for a (carrier, size) pair, reporting
// whether the catalog has one.
func (c *Catalog) PriceOf(carrier Carrier, size PackageSize) (decimal.Decimal, bool) {
	price, ok := c.prices[carrier][size]
	return price, ok
}

// CheapestSmall returns the minimum small-package price across all
// carriers. It is zero when no carrier offers a small price, in which
// case no small transaction can resolve a price in the first place.
func (c *Catalog) CheapestSmall() decimal.Decimal {
	return c.cheapestSmall
}
