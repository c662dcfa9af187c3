package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PricedResult is the outcome of pricing one record. A rejected record
// is marked Ignored; Price and Discount are meaningful only when the
// record was accepted.
type PricedResult struct {
	Raw      string
	Price    decimal.Decimal
	Discount decimal.Decimal
	Ignored  bool
}

// Line renders the result as one output line: the original record text
// followed by the final price and the discount, or "Ignored" for a
// rejected record. A zero discount renders as "-".
func (r PricedResult) Line() string {
	if r.Ignored {
		return r.Raw + " Ignored"
	}
	discount := "-"
	if r.Discount.IsPositive() {
		discount = r.Discount.StringFixed(2)
	}
	return fmt.Sprintf("%s %s %s", r.Raw, r.Price.StringFixed(2), discount)
}
