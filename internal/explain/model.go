// Package explain holds the per-line audit trail a quote computation builds
// up while rules run, the policy that decides which steps are worth showing,
// and the formatter that turns the surviving steps into channel text.
package explain

import "github.com/shopspring/decimal"

// Kind classifies an explain entry. BASE, NET_COST and MIN_MARGIN are shown
// regardless of delta; everything else only when it moved the price.
type Kind string

const (
	KindBase      Kind = "BASE"
	KindNetCost   Kind = "NET_COST"
	KindPct       Kind = "PCT"
	KindTransport Kind = "TRANSPORT"
	KindMinMargin Kind = "MIN_MARGIN"
	KindNote      Kind = "NOTE"
)

// Entry is one step in a line's price build-up.
//
// Entries within a line are totally ordered by (Order, Seq): Order is the
// emitting rule's priority, Seq a 1-based counter private to the
// (line, order) pair. Delta may be zero for informational steps.
type Entry struct {
	Order int
	Seq   int
	Kind  Kind
	Label string
	Delta decimal.Decimal
	Meta  map[string]string
}

// HasEffect reports whether the entry moved the price.
func (e Entry) HasEffect() bool {
	return !e.Delta.IsZero()
}

// LineExplain is the append-only trail for one quote line.
type LineExplain struct {
	LineID  string
	Entries []Entry
}

// QuoteExplain owns the per-line trails, keyed by line id.
type QuoteExplain struct {
	lines map[string]*LineExplain
	order []string // line ids in first-write order
}

// Line returns the trail for a line id, creating it lazily on first use.
func (q *QuoteExplain) Line(lineID string) *LineExplain {
	if q.lines == nil {
		q.lines = make(map[string]*LineExplain)
	}
	le, ok := q.lines[lineID]
	if !ok {
		le = &LineExplain{LineID: lineID}
		q.lines[lineID] = le
		q.order = append(q.order, lineID)
	}
	return le
}

// Get returns the trail for a line id without creating one.
func (q *QuoteExplain) Get(lineID string) *LineExplain {
	return q.lines[lineID]
}

// LineIDs returns the line ids in first-write order.
func (q *QuoteExplain) LineIDs() []string {
	return q.order
}

type seqKey struct {
	lineID string
	order  int
}

// Collector is the single write path into a QuoteExplain. One Collector
// belongs to exactly one quote computation; it is created at the start,
// written by rules, read once to build the output, then discarded. It holds
// no external resources, so abandoning one mid-computation needs no cleanup.
//
// Not safe for concurrent use: a computation owns its collector outright.
type Collector struct {
	quote QuoteExplain
	seq   map[seqKey]int
}

// NewCollector creates a collector for one quote computation.
func NewCollector() *Collector {
	return &Collector{seq: make(map[seqKey]int)}
}

// Quote exposes the accumulated trail.
func (c *Collector) Quote() *QuoteExplain {
	return &c.quote
}

// AddLineStep appends an entry to a line's trail. Seq is assigned from a
// counter private to (lineID, order), so a rule emitting several steps keeps
// a stable, reproducible sequence.
func (c *Collector) AddLineStep(lineID string, order int, kind Kind, label string, delta decimal.Decimal, meta map[string]string) {
	key := seqKey{lineID: lineID, order: order}
	c.seq[key]++

	c.quote.Line(lineID).Entries = append(c.quote.Line(lineID).Entries, Entry{
		Order: order,
		Seq:   c.seq[key],
		Kind:  kind,
		Label: label,
		Delta: delta,
		Meta:  meta,
	})
}
