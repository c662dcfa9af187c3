package domain

import (
	"fmt"
	"strings"
	"time"
)

// Carrier identifies a shipping provider offering its own price list.
// The set of valid carriers is whatever the pricing catalog declares.
type Carrier string

// PackageSize classifies a shipment (small/medium/large).
type PackageSize string

const (
	SizeSmall  PackageSize = "S"
	SizeMedium PackageSize = "M"
	SizeLarge  PackageSize = "L"
)

// ParsePackageSize maps a size code to its PackageSize, reporting
// whether the code is recognized.
func ParsePackageSize(code string) (PackageSize, bool) {
	switch PackageSize(code) {
	case SizeSmall, SizeMedium, SizeLarge:
		return PackageSize(code), true
	}
	return "", false
}

// MonthKey identifies a calendar month (year + month, day discarded).
// All mutable pricing state is scoped to a MonthKey.
type MonthKey string

// MonthKeyOf derives the month key for a shipment date.
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey(t.Format("2006-01"))
}

// Transaction is one parsed shipment record. Raw keeps the original
// record text for echoing into the output.
type Transaction struct {
	Date    time.Time
	Size    PackageSize
	Carrier Carrier
	Raw     string
}

// ParseTransaction parses one whitespace-separated record of the form
// "<date> <size> <carrier>". The date must be in YYYY-MM-DD form and
// the size code must be recognized; carrier validity is the pricing
// catalog's concern.
func ParseTransaction(raw string) (Transaction, error) {
	fields := strings.Fields(raw)
	if len(fields) != 3 {
		return Transaction{}, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}

	date, err := time.Parse("2006-01-02", fields[0])
	if err != nil {
		return Transaction{}, fmt.Errorf("could not parse date '%s': %w", fields[0], err)
	}

	size, ok := ParsePackageSize(fields[1])
	if !ok {
		return Transaction{}, fmt.Errorf("unrecognized package size '%s'", fields[1])
	}

	return Transaction{
		Date:    date,
		Size:    size,
		Carrier: Carrier(fields[2]),
		Raw:     raw,
	}, nil
}
