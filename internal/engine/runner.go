package engine

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/acewholesale/ace/internal/explain"
	"github.com/acewholesale/ace/internal/money"
	"github.com/acewholesale/ace/internal/quote"
	"github.com/acewholesale/ace/internal/refdata"
)

// Runner computes quotes. It owns a bound rule list and a reference snapshot;
// both are fixed at construction, so every Run sees the same configuration.
//
// Run holds no state between calls. A Runner is safe for sequential reuse;
// callers wanting concurrency run independent Runners.
type Runner struct {
	rules  []BoundRule
	data   *refdata.Set
	policy explain.Policy
	log    *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger routes the runner's debug breadcrumbs to a logger. The default
// discards them; the computation itself never depends on logging.
func WithLogger(log *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.log = log
	}
}

// NewRunner creates a runner for a bound rule list and reference snapshot.
func NewRunner(rules []BoundRule, data *refdata.Set, opts ...RunnerOption) *Runner {
	r := &Runner{
		rules: rules,
		data:  data,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run computes the quote for one normalized input.
//
// Structural problems (unknown sku, broken identity material) return an
// error and no output. Business conditions land in the output's warnings and
// blocking lists; a blocked quote is still a complete, fully explained quote.
func (r *Runner) Run(in *quote.Input) (*quote.Output, error) {
	id, err := quote.QuoteID(in)
	if err != nil {
		return nil, fmt.Errorf("quote identity: %w", err)
	}
	validUntil, err := quote.ValidUntil(in.AsOfDate)
	if err != nil {
		return nil, fmt.Errorf("quote expiry: %w", err)
	}

	// Resolve every sku before any rule runs: either the whole input prices
	// or none of it does.
	states := make([]*LineState, 0, len(in.Lines))
	for _, req := range in.Lines {
		art, ok := r.data.Article(req.SKU)
		if !ok {
			return nil, NewMissingSKUError(req.LineID, req.SKU)
		}
		states = append(states, &LineState{Req: req, Art: art})
	}

	c := NewContext(in, r.data)
	for _, ls := range states {
		for _, br := range r.rules {
			if err := br.Rule.Apply(c, ls, br.Order); err != nil {
				return nil, fmt.Errorf("rule %s on line %s: %w", br.ID, ls.Req.LineID, err)
			}
			r.log.Debug("rule applied", "rule", br.ID, "line", ls.Req.LineID, "sell", ls.Sell.String())
		}
	}

	trail := c.Trail.Quote()
	lines := make([]quote.Line, 0, len(states))
	totalSell := decimal.Zero
	totalCost := decimal.Zero
	for _, ls := range states {
		sell := money.QuantizeMoney(ls.Sell)
		cost := ls.CostBasis()

		var margin decimal.Decimal
		if sell.Sign() > 0 {
			margin = money.QuantizePercent(sell.Sub(cost).Div(sell).Mul(hundred))
		}

		steps := r.policy.RenderLine(trail.Get(ls.Req.LineID))
		if steps == nil {
			steps = []string{}
		}

		lines = append(lines, quote.Line{
			LineID:         ls.Req.LineID,
			SKU:            ls.Req.SKU,
			Qty:            ls.Req.QtyRaw,
			NetSell:        sell.StringFixed(2),
			MarginPct:      margin.StringFixed(4),
			PriceBreakdown: steps,
		})

		// Round per line, then sum: the total is the sum of the amounts the
		// customer actually sees on the lines.
		totalSell = totalSell.Add(sell)
		totalCost = totalCost.Add(cost)
	}

	totalSell = money.QuantizeMoney(totalSell)
	var quoteMargin decimal.Decimal
	if totalSell.Sign() > 0 {
		quoteMargin = money.QuantizePercent(totalSell.Sub(totalCost).Div(totalSell).Mul(hundred))
	}

	out := &quote.Output{
		QuoteID:         id,
		QuoteDate:       in.AsOfDate,
		ValidUntil:      validUntil,
		ContractVersion: in.ContractVersion,
		Currency:        in.Currency,
		Lines:           lines,
		TotalSell:       totalSell.StringFixed(2),
		MarginPct:       quoteMargin.StringFixed(4),
		Warnings:        c.Warnings(),
		Blocking:        c.Blocking(),
	}
	r.log.Debug("quote computed",
		"quote_id", out.QuoteID, "lines", len(out.Lines),
		"total_sell", out.TotalSell, "blocked", out.Blocked())
	return out, nil
}
