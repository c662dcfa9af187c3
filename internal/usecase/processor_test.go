package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"parcel-pricing/internal/domain"
	"parcel-pricing/internal/usecase"
)

func referenceCatalog() *domain.Catalog {
	return domain.NewCatalog(map[domain.Carrier]map[domain.PackageSize]decimal.Decimal{
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
	})
}

func newReferenceProcessor() *usecase.Processor {
	return usecase.NewProcessor(referenceCatalog(), decimal.NewFromInt(10), 3, "LP")
}

// runLines processes a sequence in order and returns the output lines.
func runLines(p *usecase.Processor, lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, p.Process(line).Line())
	}
	return out
}

func TestProcessorReferenceScenario(t *testing.T) {
	got := runLines(newReferenceProcessor(), []string{
		"2023-08-06 S LP",
		"2023-08-06 S MR",
		"2023-04-05 L LP",
		"2023-04-05 L LP",
		"2023-04-05 L LP",
		"2023-04-05 L LP",
		"2000-01-01 SS SS",
	})

	assert.Equal(t, []string{
		"2023-08-06 S LP 1.50 -",
		"2023-08-06 S MR 1.50 0.50",
		"2023-04-05 L LP 6.90 -",
		"2023-04-05 L LP 6.90 -",
		"2023-04-05 L LP 0.00 6.90",
		"2023-04-05 L LP 6.90 -",
		"2000-01-01 SS SS Ignored",
	}, got)
}

func TestProcessorSmallPackageRule(t *testing.T) {
	tests := []struct {
		name  string
		cap   string
		lines []string
		want  []string
	}{
		{
			name:  "cheapest carrier never gets a discount",
			cap:   "10",
			lines: []string{"2023-08-06 S LP", "2023-08-07 S LP"},
			want: []string{
				"2023-08-06 S LP 1.50 -",
				"2023-08-07 S LP 1.50 -",
			},
		},
		{
			name:  "quota grants a partial discount before running out",
			cap:   "0.75",
			lines: []string{"2023-08-06 S MR", "2023-08-07 S MR", "2023-08-08 S MR"},
			want: []string{
				"2023-08-06 S MR 1.50 0.50",
				"2023-08-07 S MR 1.75 0.25",
				"2023-08-08 S MR 2.00 -",
			},
		},
		{
			name:  "quota resets on a new month",
			cap:   "0.50",
			lines: []string{"2023-08-06 S MR", "2023-08-07 S MR", "2023-09-01 S MR"},
			want: []string{
				"2023-08-06 S MR 1.50 0.50",
				"2023-08-07 S MR 2.00 -",
				"2023-09-01 S MR 1.50 0.50",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := usecase.NewProcessor(referenceCatalog(), decimal.RequireFromString(tt.cap), 3, "LP")
			assert.Equal(t, tt.want, runLines(p, tt.lines))
		})
	}
}

func TestProcessorLargePackageRule(t *testing.T) {
	t.Run("only the exact third shipment is free", func(t *testing.T) {
		p := newReferenceProcessor()
		got := runLines(p, []string{
			"2023-04-01 L LP",
			"2023-04-02 L LP",
			"2023-04-03 L LP",
			"2023-04-04 L LP",
			"2023-04-05 L LP",
			"2023-04-06 L LP",
		})
		// No repeat at the sixth shipment: the counter does not cycle.
		assert.Equal(t, []string{
			"2023-04-01 L LP 6.90 -",
			"2023-04-02 L LP 6.90 -",
			"2023-04-03 L LP 0.00 6.90",
			"2023-04-04 L LP 6.90 -",
			"2023-04-05 L LP 6.90 -",
			"2023-04-06 L LP 6.90 -",
		}, got)
	})

	t.Run("non-promotional large shipments do not count", func(t *testing.T) {
		p := newReferenceProcessor()
		got := runLines(p, []string{
			"2023-04-01 L LP",
			"2023-04-02 L MR",
			"2023-04-03 L LP",
			"2023-04-04 L MR",
			"2023-04-05 L LP",
		})
		assert.Equal(t, []string{
			"2023-04-01 L LP 6.90 -",
			"2023-04-02 L MR 4.00 -",
			"2023-04-03 L LP 6.90 -",
			"2023-04-04 L MR 4.00 -",
			"2023-04-05 L LP 0.00 6.90",
		}, got)
	})

	t.Run("the count starts over in a new month", func(t *testing.T) {
		p := newReferenceProcessor()
		got := runLines(p, []string{
			"2023-04-29 L LP",
			"2023-04-30 L LP",
			"2023-05-01 L LP",
			"2023-05-02 L LP",
			"2023-05-03 L LP",
		})
		assert.Equal(t, []string{
			"2023-04-29 L LP 6.90 -",
			"2023-04-30 L LP 6.90 -",
			"2023-05-01 L LP 6.90 -",
			"2023-05-02 L LP 6.90 -",
			"2023-05-03 L LP 0.00 6.90",
		}, got)
	})
}

func TestProcessorWaiverOverrunsSmallQuota(t *testing.T) {
	// The large-package waiver feeds the same accumulated total the
	// small-package quota check reads and is itself uncapped. Once it
	// pushes the total past the cap, small discounts for the rest of
	// the month floor at zero instead of going negative.
	p := usecase.NewProcessor(referenceCatalog(), decimal.NewFromInt(1), 3, "LP")
	got := runLines(p, []string{
		"2023-04-01 S MR",
		"2023-04-02 L LP",
		"2023-04-03 L LP",
		"2023-04-04 L LP",
		"2023-04-05 S MR",
		"2023-05-01 S MR",
	})
	assert.Equal(t, []string{
		"2023-04-01 S MR 1.50 0.50",
		"2023-04-02 L LP 6.90 -",
		"2023-04-03 L LP 6.90 -",
		"2023-04-04 L LP 0.00 6.90",
		"2023-04-05 S MR 2.00 -",
		"2023-05-01 S MR 1.50 0.50",
	}, got)
}

func TestProcessorMediumShipmentsHaveNoRule(t *testing.T) {
	got := runLines(newReferenceProcessor(), []string{
		"2023-08-06 M LP",
		"2023-08-06 M MR",
	})
	assert.Equal(t, []string{
		"2023-08-06 M LP 4.90 -",
		"2023-08-06 M MR 3.00 -",
	}, got)
}

func TestProcessorRejectsMalformedRecords(t *testing.T) {
	p := newReferenceProcessor()

	malformed := []string{
		"",
		"2023-08-06",
		"2023-08-06 S",
		"2023-08-06 S LP extra",
		"not-a-date S LP",
		"2023-08-06 XL LP",
		"2023-08-06 S UPS",
		"2023-04-05 L UPS",
	}
	for _, line := range malformed {
		result := p.Process(line)
		assert.True(t, result.Ignored, "expected %q to be ignored", line)
		assert.Equal(t, line+" Ignored", result.Line())
	}

	// Rejected records mutate no state: the first accepted small
	// shipment still sees the full quota, and the promotional counter
	// is untouched by the rejected large records.
	got := runLines(p, []string{
		"2023-08-06 S MR",
		"2023-04-01 L LP",
		"2023-04-02 L LP",
		"2023-04-03 L LP",
	})
	assert.Equal(t, []string{
		"2023-08-06 S MR 1.50 0.50",
		"2023-04-01 L LP 6.90 -",
		"2023-04-02 L LP 6.90 -",
		"2023-04-03 L LP 0.00 6.90",
	}, got)
}
