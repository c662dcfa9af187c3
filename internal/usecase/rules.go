package usecase

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"parcel-pricing/internal/domain"
	"parcel-pricing/internal/logging"
)

// ruleKind is the closed set of discount rules a transaction can be
// dispatched to.
type ruleKind int

const (
	ruleNone ruleKind = iota
	ruleSmallEqualize
	ruleLargePromotion
)

// selectRule picks the single applicable rule for a transaction.
func (p *Processor) selectRule(tx domain.Transaction) ruleKind {
	switch {
	case tx.Size == domain.SizeSmall:
		return ruleSmallEqualize
	case tx.Size == domain.SizeLarge && tx.Carrier == p.promoCarrier:
		return ruleLargePromotion
	default:
		return ruleNone
	}
}

// applyRule runs the selected rule and returns the granted discount.
// An unknown rule kind is reachable only through internal misuse; it
// logs a warning and grants nothing, leaving price and ledger alone.
func (p *Processor) applyRule(kind ruleKind, key domain.MonthKey, base decimal.Decimal) decimal.Decimal {
	switch kind {
	case ruleNone:
		return decimal.Zero
	case ruleSmallEqualize:
		return p.applySmallEqualize(key, base)
	case ruleLargePromotion:
		return p.applyLargePromotion(key, base)
	default:
		logging.Warn("unknown discount rule selected, applying no discount",
			zap.Int("rule", int(kind)))
		return decimal.Zero
	}
}

// applySmallEqualize grants the discount that brings a small-package
// price down to the cheapest small price any carrier offers, capped by
// what is left of the month's discount quota. The accumulated total can
// already sit above the quota after a large-package waiver, so the
// candidate is floored at zero rather than going negative.
func (p *Processor) applySmallEqualize(key domain.MonthKey, base decimal.Decimal) decimal.Decimal {
	spread := base.Sub(p.catalog.CheapestSmall())
	if !spread.IsPositive() {
		return decimal.Zero
	}

	remaining := p.monthlyCap.Sub(p.ledgers.Get(key).AccumulatedDiscount)
	discount := decimal.Min(spread, remaining)
	if !discount.IsPositive() {
		return decimal.Zero
	}

	p.ledgers.AddDiscount(key, discount)
	return discount
}

// applyLargePromotion counts a qualifying large shipment and waives the
// full price on exactly the Nth one in the month. The comparison is an
// exact match, not a cycle: shipments after the Nth pay full price. The
// waived amount feeds the same accumulated total the small-package
// quota check reads, and is itself never capped.
func (p *Processor) applyLargePromotion(key domain.MonthKey, base decimal.Decimal) decimal.Decimal {
	if p.ledgers.IncrementLargeCount(key) != p.freeLargeNth {
		return decimal.Zero
	}
	p.ledgers.AddDiscount(key, base)
	return base
}
