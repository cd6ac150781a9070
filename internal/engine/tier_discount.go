package engine

import (
	"fmt"

	"github.com/acewholesale/ace/internal/explain"
	"github.com/acewholesale/ace/internal/money"
)

// TierDiscount applies the staffel: the best matching quantity tier's
// percentage off the running sell price. No matching tier, or a zero
// percentage, leaves the line untouched.
type TierDiscount struct{}

func (TierDiscount) ID() string { return "tier_discount" }

func (TierDiscount) Apply(c *Context, ls *LineState, order int) error {
	t := c.Data.MatchTier(ls.Req.Qty)
	if t == nil || t.Pct.Sign() <= 0 {
		return nil
	}

	delta := money.QuantizeMoney(ls.Sell.Mul(money.Percent(t.Pct)))
	ls.Sell = ls.Sell.Sub(delta)

	label := fmt.Sprintf("Staffelkorting: -%s%% (qty=%s)", t.Pct.String(), ls.Req.Qty.String())
	c.Trail.AddLineStep(ls.Req.LineID, order, explain.KindPct, label, delta.Neg(), nil)
	return nil
}
