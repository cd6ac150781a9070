package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/acewholesale/ace/internal/explain"
	"github.com/acewholesale/ace/internal/money"
)

var hundred = decimal.New(100, 0)

// MinMargin gates the line on its product group's margin floor. A breach is a
// blocking notice, not an error; the computation continues so the finished
// quote shows exactly which lines failed and by how much. The MIN_MARGIN
// entry is always shown, pass or fail.
type MinMargin struct{}

func (MinMargin) ID() string { return "min_margin" }

func (MinMargin) Apply(c *Context, ls *LineState, order int) error {
	min := c.Data.MinMargin(ls.Art.ProductGroup)

	if ls.Sell.Sign() <= 0 {
		c.Block("MARGIN_BLOCK", fmt.Sprintf(
			"line %s: non-positive sell price %s", ls.Req.LineID, money.FormatMoney(ls.Sell)))
		c.Trail.AddLineStep(ls.Req.LineID, order, explain.KindMinMargin,
			fmt.Sprintf("Minimummarge: GEBLOKKEERD (verkoopprijs %s)", money.FormatMoney(ls.Sell)),
			decimal.Zero, nil)
		return nil
	}

	margin := money.QuantizePercent(ls.Sell.Sub(ls.CostBasis()).Div(ls.Sell).Mul(hundred))

	var label string
	if margin.Cmp(min) < 0 {
		c.Block("MARGIN_BLOCK", fmt.Sprintf(
			"line %s: margin %s%% below minimum %s%%", ls.Req.LineID, margin.StringFixed(2), min.String()))
		label = fmt.Sprintf("Minimummarge: GEBLOKKEERD (marge %s%% < %s%%)", margin.StringFixed(2), min.String())
	} else {
		label = fmt.Sprintf("Minimummarge: OK (≥%s%%)", min.String())
	}
	c.Trail.AddLineStep(ls.Req.LineID, order, explain.KindMinMargin, label, decimal.Zero, nil)
	return nil
}
