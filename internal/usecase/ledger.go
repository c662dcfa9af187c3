package usecase

import (
	"github.com/shopspring/decimal"

	"parcel-pricing/internal/domain"
)

// MonthlyLedger is the mutable discount state for one calendar month:
// the running total of discounts granted and the count of large
// shipments that qualified for the promotion.
type MonthlyLedger struct {
	AccumulatedDiscount  decimal.Decimal
	QualifyingLargeCount int
}

// LedgerBook owns the per-month ledgers. Entries are created lazily on
// first access and live for the duration of the run.
type LedgerBook struct {
	months map[domain.MonthKey]*MonthlyLedger
}

// NewLedgerBook creates an empty ledger book.
func NewLedgerBook() *LedgerBook {
	return &LedgerBook{months: make(map[domain.MonthKey]*MonthlyLedger)}
}

// Get returns the ledger for a month, creating a zeroed one if absent.
func (b *LedgerBook) Get(key domain.MonthKey) *MonthlyLedger {
	ledger, ok := b.months[key]
	if !ok {
		ledger = &MonthlyLedger{}
		b.months[key] = ledger
	}
	return ledger
}

// AddDiscount increases the month's accumulated discount. Capping is
// the calling rule's responsibility, not the ledger's.
func (b *LedgerBook) AddDiscount(key domain.MonthKey, amount decimal.Decimal) {
	ledger := b.Get(key)
	ledger.AccumulatedDiscount = ledger.AccumulatedDiscount.Add(amount)
}

// IncrementLargeCount increments the month's qualifying large shipment
// counter and returns the new count.
func (b *LedgerBook) IncrementLargeCount(key domain.MonthKey) int {
	ledger := b.Get(key)
	ledger.QualifyingLargeCount++
	return ledger.QualifyingLargeCount
}
