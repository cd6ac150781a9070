package engine

import (
	"github.com/shopspring/decimal"

	"github.com/acewholesale/ace/internal/explain"
	"github.com/acewholesale/ace/internal/quote"
	"github.com/acewholesale/ace/internal/refdata"
)

// Context is the shared state of one quote computation. It is created by the
// runner, written by rules, read once to build the output, then discarded.
//
// Not safe for concurrent use: a computation owns its context outright.
type Context struct {
	// Input is the normalized computation input. Read-only.
	Input *quote.Input

	// Data is the reference snapshot this computation runs against. Read-only.
	Data *refdata.Set

	// Trail collects per-line explain entries.
	Trail *explain.Collector

	warnings []quote.Notice
	blocking []quote.Notice

	// fired holds explicit once-per-quote latches. Rules that act or notify
	// at quote scope claim a named latch instead of probing earlier state.
	fired map[string]bool
}

// NewContext creates the context for one computation.
func NewContext(in *quote.Input, data *refdata.Set) *Context {
	return &Context{
		Input: in,
		Data:  data,
		Trail: explain.NewCollector(),
		fired: make(map[string]bool),
	}
}

// Warn records an advisory notice. Order of recording is the order of output.
func (c *Context) Warn(code, message string) {
	c.warnings = append(c.warnings, quote.Notice{Code: code, Message: message})
}

// Block records a hard-stop notice. The computation continues; the notice
// marks the finished quote as blocked.
func (c *Context) Block(code, message string) {
	c.blocking = append(c.blocking, quote.Notice{Code: code, Message: message})
}

// Once claims a named quote-scoped latch. The first call for a key returns
// true; every later call returns false.
func (c *Context) Once(key string) bool {
	if c.fired[key] {
		return false
	}
	c.fired[key] = true
	return true
}

// Warnings returns the accumulated advisory notices, never nil.
func (c *Context) Warnings() []quote.Notice {
	if c.warnings == nil {
		return []quote.Notice{}
	}
	return c.warnings
}

// Blocking returns the accumulated hard-stop notices, never nil.
func (c *Context) Blocking() []quote.Notice {
	if c.blocking == nil {
		return []quote.Notice{}
	}
	return c.blocking
}

// LineState is the mutable pricing state of one quote line. Rules are the
// only writers; each rule sees the state every earlier rule left behind.
type LineState struct {
	// Req is the normalized line request. Read-only.
	Req quote.LineRequest

	// Art is the resolved article snapshot. Resolution happens before any
	// rule runs, so rules never see a missing article.
	Art refdata.Article

	// Sell is the running net sell price. Every rule that moves it applies a
	// quantized delta, so Sell is always exact to 2 decimal places.
	Sell decimal.Decimal

	// NetCost is the purchase cost basis set by the net-cost rule.
	NetCost decimal.Decimal

	// Transport is the transport cost added to both sell and cost basis.
	Transport decimal.Decimal
}

// CostBasis returns the full cost side of the margin calculation.
func (ls *LineState) CostBasis() decimal.Decimal {
	return ls.NetCost.Add(ls.Transport)
}
