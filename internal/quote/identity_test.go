package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func TestQuoteIDStable(t *testing.T) {
	in, err := ParseInput([]byte(sampleInput))
	require.NoError(t, err)

	id1, err := QuoteID(in)
	require.NoError(t, err)

	// Re-parse from scratch: identical bytes must yield the identical id.
	in2, err := ParseInput([]byte(sampleInput))
	require.NoError(t, err)
	id2, err := QuoteID(in2)
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	assert.Equal(t, "q_1523d8034a69237f", id1)
}

func TestQuoteIDIgnoresKeyOrder(t *testing.T) {
	reordered := `{
  "lines": [
    {"qty": 10, "sku": "SKU-100", "lineId": "l1"},
    {"qty": 4, "sku": "SKU-200", "lineId": "l2"}
  ],
  "requestedDiscountPct": 2,
  "shipToPostcode": "1012AB",
  "country": "NL",
  "customerSegment": "B",
  "currency": "EUR",
  "contractVersion": "v1",
  "asOfDate": "2025-03-01"
}`

	a, err := ParseInput([]byte(sampleInput))
	require.NoError(t, err)
	b, err := ParseInput([]byte(reordered))
	require.NoError(t, err)

	idA, err := QuoteID(a)
	require.NoError(t, err)
	idB, err := QuoteID(b)
	require.NoError(t, err)
	assert.Equal(t, idA, idB)
}

func TestQuoteIDChangesWithInput(t *testing.T) {
	in, err := ParseInput([]byte(sampleInput))
	require.NoError(t, err)
	id, err := QuoteID(in)
	require.NoError(t, err)

	other, err := ComputeQuoteID(in.ContractVersion, VerticalID, map[string]any{"different": true})
	require.NoError(t, err)
	assert.NotEqual(t, id, other)

	otherVertical, err := ComputeQuoteID(in.ContractVersion, "other-vertical", in.RawPayload())
	require.NoError(t, err)
	assert.NotEqual(t, id, otherVertical)
}
