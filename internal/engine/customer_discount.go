package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/acewholesale/ace/internal/explain"
	"github.com/acewholesale/ace/internal/money"
)

// CustomerDiscount applies the segment's standing discount plus any requested
// extra discount, capped at the segment's ceiling. A capped request records a
// DISCOUNT_CAPPED warning once per quote; whether the cap also needs approval
// is the approval rule's business, not this one's.
type CustomerDiscount struct{}

func (CustomerDiscount) ID() string { return "customer_discount" }

func (CustomerDiscount) Apply(c *Context, ls *LineState, order int) error {
	seg := c.Input.CustomerSegment
	profile := c.Data.ProfileDiscount(seg)

	var extra decimal.Decimal
	if c.Input.RequestedDiscountPct != nil {
		extra = *c.Input.RequestedDiscountPct
		max := c.Data.MaxExtraDiscount(seg)
		if extra.Cmp(max) > 0 {
			if c.Once("customer_discount:capped") {
				c.Warn("DISCOUNT_CAPPED", fmt.Sprintf(
					"requested extra discount %s%% capped to %s%% for segment %s",
					extra.String(), max.String(), seg))
			}
			extra = max
		}
		if extra.Sign() < 0 {
			extra = decimal.Zero
		}
	}

	total := profile.Add(extra)
	if total.Sign() <= 0 {
		return nil
	}

	before := ls.Sell
	delta := money.QuantizeMoney(before.Mul(money.Percent(total)))
	ls.Sell = before.Sub(delta)

	label := fmt.Sprintf("Klantkorting (%s): -%s%% (van %s naar %s)",
		seg, total.StringFixed(2), money.FormatMoney(before), money.FormatMoney(ls.Sell))
	c.Trail.AddLineStep(ls.Req.LineID, order, explain.KindPct, label, delta.Neg(), nil)
	return nil
}
