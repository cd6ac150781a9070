package explain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorSeqPerLineAndOrder(t *testing.T) {
	c := NewCollector()

	c.AddLineStep("l1", 10, KindBase, "base", decimal.Zero, nil)
	c.AddLineStep("l1", 10, KindBase, "base again", decimal.Zero, nil)
	c.AddLineStep("l1", 20, KindPct, "pct", decimal.Zero, nil)
	c.AddLineStep("l2", 10, KindBase, "other line", decimal.Zero, nil)

	l1 := c.Quote().Get("l1")
	require.NotNil(t, l1)
	require.Len(t, l1.Entries, 3)

	// Seq counters are private to (line, order): same order increments,
	// new order restarts at 1, other lines are independent.
	assert.Equal(t, 1, l1.Entries[0].Seq)
	assert.Equal(t, 2, l1.Entries[1].Seq)
	assert.Equal(t, 1, l1.Entries[2].Seq)

	l2 := c.Quote().Get("l2")
	require.NotNil(t, l2)
	require.Len(t, l2.Entries, 1)
	assert.Equal(t, 1, l2.Entries[0].Seq)
}

func TestQuoteExplainLazyCreation(t *testing.T) {
	c := NewCollector()
	assert.Nil(t, c.Quote().Get("l1"))

	c.AddLineStep("l1", 10, KindNote, "note", decimal.Zero, nil)
	require.NotNil(t, c.Quote().Get("l1"))
	assert.Equal(t, []string{"l1"}, c.Quote().LineIDs())
}

func TestEntryHasEffect(t *testing.T) {
	zero := Entry{Delta: decimal.Zero}
	assert.False(t, zero.HasEffect())

	nonzero := Entry{Delta: decimal.RequireFromString("-9.00")}
	assert.True(t, nonzero.HasEffect())
}
