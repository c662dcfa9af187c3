package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"parcel-pricing/internal/domain"
)

// Processor prices transactions one at a time against the shared
// catalog and the month-scoped ledgers it owns. Transactions must be
// processed strictly in arrival order: both rules are defined in terms
// of the month state left behind by earlier transactions.
type Processor struct {
	catalog      *domain.Catalog
	ledgers      *LedgerBook
	monthlyCap   decimal.Decimal
	freeLargeNth int
	promoCarrier domain.Carrier
}

// NewProcessor creates a processor with a fresh ledger book.
func NewProcessor(catalog *domain.Catalog, monthlyCap decimal.Decimal, freeLargeNth int, promoCarrier domain.Carrier) *Processor {
	return &Processor{
		catalog:      catalog,
		ledgers:      NewLedgerBook(),
		monthlyCap:   monthlyCap,
		freeLargeNth: freeLargeNth,
		promoCarrier: promoCarrier,
	}
}

// Process prices one raw record. A record that fails validation (wrong
// field count, bad date, unknown size, or no catalog price for the
// carrier/size pair) comes back Ignored, with no state mutated.
func (p *Processor) Process(raw string) domain.PricedResult {
	tx, err := domain.ParseTransaction(raw)
	if err != nil {
		return domain.PricedResult{Raw: raw, Ignored: true}
	}

	base, ok := p.catalog.PriceOf(tx.Carrier, tx.Size)
	if !ok {
		return domain.PricedResult{Raw: raw, Ignored: true}
	}

	key := domain.MonthKeyOf(tx.Date)
	discount := p.applyRule(p.selectRule(tx), key, base)

	return domain.PricedResult{
		Raw:      raw,
		Price:    base.Sub(discount),
		Discount: discount,
	}
}

// Run consumes the source to completion, pricing each record and
// writing its result before reading the next one. Individual record
// failures are not errors; only source or sink failures abort the run.
func (p *Processor) Run(ctx context.Context, source RecordSource, sink ResultSink) error {
	for {
		raw, err := source.Next(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("could not read next record: %w", err)
		}

		if err := sink.Write(ctx, p.Process(raw)); err != nil {
			return fmt.Errorf("could not write result: %w", err)
		}
	}
}
