package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/acewholesale/ace/internal/quote"
	"github.com/acewholesale/ace/internal/refdata"
)

const sampleInput = `{
  "asOfDate": "2025-03-01",
  "contractVersion": "v1",
  "currency": "EUR",
  "customerSegment": "B",
  "country": "NL",
  "shipToPostcode": "1012AB",
  "requestedDiscountPct": 2,
  "lines": [
    {"lineId": "l1", "sku": "SKU-100", "qty": 10},
    {"lineId": "l2", "sku": "SKU-200", "qty": 4}
  ]
}`

const sampleRuleSet = `version: v1
rules:
  - id: block_country
  - id: base_price
  - id: net_cost
  - id: tier_discount
  - id: customer_discount
  - id: transport
  - id: min_margin
  - id: approval_discount
executionOrder:
  - block_country
  - base_price
  - net_cost
  - tier_discount
  - customer_discount
  - transport
  - min_margin
  - approval_discount
`

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testSet() *refdata.Set {
	max9 := dec("9")
	max49 := dec("49")
	return &refdata.Set{
		Version: "test",
		Articles: map[string]refdata.Article{
			"SKU-100": {SKU: "SKU-100", ListPrice: dec("18.00"), BuyPrice: dec("10.00"), WeightKg: dec("2.0"), Supplier: "ACME", ProductGroup: "A"},
			"SKU-200": {SKU: "SKU-200", ListPrice: dec("40.00"), BuyPrice: dec("25.00"), WeightKg: dec("0.5"), Supplier: "BOLT", ProductGroup: "B"},
		},
		SupplierFactors: map[string]decimal.Decimal{
			"ACME": dec("1.1"),
			"BOLT": dec("1.0"),
		},
		Tiers: []refdata.Tier{
			{Min: dec("1"), Max: &max9, Pct: decimal.Zero},
			{Min: dec("10"), Max: &max49, Pct: dec("5")},
			{Min: dec("50"), Pct: dec("10")},
		},
		CustomerProfileDiscountPct:  map[string]decimal.Decimal{"B": dec("2")},
		CustomerMaxExtraDiscountPct: map[string]decimal.Decimal{"B": dec("2")},
		PostcodeZones:               map[string]string{"10": "Z1"},
		ZoneRatePerKg:               map[string]decimal.Decimal{"Z1": dec("0.50")},
		DefaultMinMarginPct:         dec("20"),
		BlockedCountries:            map[string]bool{"KP": true},
	}
}

func parseInput(t *testing.T, src string) *quote.Input {
	t.Helper()
	in, err := quote.ParseInput([]byte(src))
	require.NoError(t, err)
	return in
}

func boundRules(t *testing.T) []BoundRule {
	t.Helper()
	rs, err := ParseRuleSet([]byte(sampleRuleSet))
	require.NoError(t, err)
	rules, err := rs.Build(DefaultCapabilities())
	require.NoError(t, err)
	return rules
}
