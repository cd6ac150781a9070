package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunContractNumbers(t *testing.T) {
	r := NewRunner(boundRules(t), testSet())
	out, err := r.Run(parseInput(t, sampleInput))
	require.NoError(t, err)

	assert.Equal(t, "q_1523d8034a69237f", out.QuoteID)
	assert.Equal(t, "2025-03-01", out.QuoteDate)
	assert.Equal(t, "2025-03-15", out.ValidUntil)
	assert.Equal(t, "v1", out.ContractVersion)
	assert.Equal(t, "EUR", out.Currency)
	assert.Equal(t, "328.76", out.TotalSell)
	assert.Equal(t, "32.7777", out.MarginPct)
	assert.Empty(t, out.Warnings)
	assert.Empty(t, out.Blocking)
	assert.False(t, out.Blocked())

	require.Len(t, out.Lines, 2)

	l1 := out.Lines[0]
	assert.Equal(t, "l1", l1.LineID)
	assert.Equal(t, "SKU-100", l1.SKU)
	assert.Equal(t, "10", l1.Qty.String())
	assert.Equal(t, "174.16", l1.NetSell)
	assert.Equal(t, "31.0978", l1.MarginPct)
	assert.Equal(t, []string{
		"Basisprijs: EUR 180.00 (10 × EUR 18.00)",
		"Netto inkoop: EUR 110.00 (factor=1.1, opslag=0%)",
		"Staffelkorting: -5% (qty=10)",
		"Klantkorting (B): -4.00% (van 171.00 naar 164.16)",
		"Transport zone Z1: +10.00 (20.000 kg × 0.50/kg)",
		"Minimummarge: OK (≥20%)",
	}, l1.PriceBreakdown)

	l2 := out.Lines[1]
	assert.Equal(t, "l2", l2.LineID)
	assert.Equal(t, "SKU-200", l2.SKU)
	assert.Equal(t, "154.60", l2.NetSell)
	assert.Equal(t, "34.6701", l2.MarginPct)
	assert.Equal(t, []string{
		"Basisprijs: EUR 160.00 (4 × EUR 40.00)",
		"Netto inkoop: EUR 100.00 (factor=1.0, opslag=0%)",
		"Klantkorting (B): -4.00% (van 160.00 naar 153.60)",
		"Transport zone Z1: +1.00 (2.000 kg × 0.50/kg)",
		"Minimummarge: OK (≥20%)",
	}, l2.PriceBreakdown)
}

func TestRunDeterministic(t *testing.T) {
	r := NewRunner(boundRules(t), testSet())

	first, err := r.Run(parseInput(t, sampleInput))
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		again, err := r.Run(parseInput(t, sampleInput))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRunMissingSKU(t *testing.T) {
	r := NewRunner(boundRules(t), testSet())
	src := strings.Replace(sampleInput, "SKU-200", "SKU-404", 1)

	out, err := r.Run(parseInput(t, src))
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, IsMissingSKU(err))
	assert.Contains(t, err.Error(), "SKU-404")
	assert.Contains(t, err.Error(), "l2")
}

func TestRunBlockedQuoteStaysComplete(t *testing.T) {
	set := testSet()
	set.DefaultMinMarginPct = dec("40")

	r := NewRunner(boundRules(t), set)
	out, err := r.Run(parseInput(t, sampleInput))
	require.NoError(t, err)

	// Both lines breach the floor; the quote is blocked but fully computed.
	require.Len(t, out.Blocking, 2)
	assert.Equal(t, "MARGIN_BLOCK", out.Blocking[0].Code)
	assert.Equal(t, "MARGIN_BLOCK", out.Blocking[1].Code)
	assert.True(t, out.Blocked())

	assert.Equal(t, "328.76", out.TotalSell)
	require.Len(t, out.Lines, 2)
	assert.Equal(t, "Minimummarge: GEBLOKKEERD (marge 31.10% < 40%)", out.Lines[0].PriceBreakdown[len(out.Lines[0].PriceBreakdown)-1])
}

func TestRunCappedAndApprovalWarnings(t *testing.T) {
	r := NewRunner(boundRules(t), testSet())
	src := strings.Replace(sampleInput, `"requestedDiscountPct": 2`, `"requestedDiscountPct": 9`, 1)

	out, err := r.Run(parseInput(t, src))
	require.NoError(t, err)

	require.Len(t, out.Warnings, 2)
	assert.Equal(t, "DISCOUNT_CAPPED", out.Warnings[0].Code)
	assert.Equal(t, "APPROVAL_REQUIRED", out.Warnings[1].Code)
	assert.Empty(t, out.Blocking)

	// Capped to the same 4% total, so the numbers match the clean quote.
	assert.Equal(t, "328.76", out.TotalSell)
}

func TestRunQtyRoundTrips(t *testing.T) {
	r := NewRunner(boundRules(t), testSet())
	src := strings.Replace(sampleInput, `"qty": 4`, `"qty": 4.0`, 1)

	out, err := r.Run(parseInput(t, src))
	require.NoError(t, err)

	// The output carries the caller's literal, not a re-rendered number.
	assert.Equal(t, "4.0", out.Lines[1].Qty.String())
}
