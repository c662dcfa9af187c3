// Package config provides the tariff configuration a run prices
// against: the pricing catalog and the discount rule constants.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"parcel-pricing/internal/domain"
)

// Config is the full tariff configuration.
type Config struct {
	// Catalog maps carrier -> size code -> base price.
	Catalog map[domain.Carrier]map[domain.PackageSize]decimal.Decimal `json:"catalog"`

	// MonthlyDiscountCap is the total small-package discount budget a
	// single month may grant.
	MonthlyDiscountCap decimal.Decimal `json:"monthly_discount_cap"`

	// FreeLargeShipmentNth is the ordinal of the large shipment that is
	// free each month for the promotional carrier.
	FreeLargeShipmentNth int `json:"free_large_shipment_nth"`

	// PromotionalCarrier is the one carrier eligible for the
	// large-package promotion.
	PromotionalCarrier domain.Carrier `json:"promotional_carrier"`
}

// Default returns the reference tariff.
func Default() Config {
	return Config{
		Catalog: map[domain.Carrier]map[domain.PackageSize]decimal.Decimal{
			"LP": {
				domain.SizeSmall:  decimal.RequireFromString("1.50"),
				domain.SizeMedium: decimal.RequireFromString("4.90"),
				domain.SizeLarge:  decimal.RequireFromString("6.90"),
			},
			"MR": {
				domain.SizeSmall:  decimal.RequireFromString("2.00"),
				domain.SizeMedium: decimal.RequireFromString("3.00"),
				domain.SizeLarge:  decimal.RequireFromString("4.00"),
			},
		},
		MonthlyDiscountCap:   decimal.NewFromInt(10),
		FreeLargeShipmentNth: 3,
		PromotionalCarrier:   "LP",
	}
}

// Load reads and validates a tariff file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the tariff for internal consistency.
func (c Config) Validate() error {
	if len(c.Catalog) == 0 {
		return fmt.Errorf("catalog must list at least one carrier")
	}
	for carrier, prices := range c.Catalog {
		for size, price := range prices {
			if _, ok := domain.ParsePackageSize(string(size)); !ok {
				return fmt.Errorf("carrier %s: unrecognized size code '%s'", carrier, size)
			}
			if price.IsNegative() {
				return fmt.Errorf("carrier %s: negative price for size %s", carrier, size)
			}
		}
	}
	if c.MonthlyDiscountCap.IsNegative() {
		return fmt.Errorf("monthly discount cap must not be negative")
	}
	if c.FreeLargeShipmentNth < 1 {
		return fmt.Errorf("free large shipment ordinal must be at least 1")
	}
	if _, ok := c.Catalog[c.PromotionalCarrier]; !ok {
		return fmt.Errorf("promotional carrier '%s' is not in the catalog", c.PromotionalCarrier)
	}
	return nil
}
