package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/acewholesale/ace/internal/explain"
)

// ApprovalDiscount flags quotes whose requested extra discount exceeds the
// segment ceiling for manual approval. The whole rule is quote-scoped: it
// claims an explicit latch on the context and runs for the first line only,
// never by inspecting what earlier lines did.
type ApprovalDiscount struct{}

func (ApprovalDiscount) ID() string { return "approval_discount" }

func (ApprovalDiscount) Apply(c *Context, ls *LineState, order int) error {
	if !c.Once("approval_discount") {
		return nil
	}

	req := c.Input.RequestedDiscountPct
	max := c.Data.MaxExtraDiscount(c.Input.CustomerSegment)

	label := "Geen goedkeuring nodig"
	if req != nil && req.Cmp(max) > 0 {
		c.Warn("APPROVAL_REQUIRED", fmt.Sprintf(
			"requested extra discount %s%% exceeds segment maximum %s%%, approval required",
			req.String(), max.String()))
		label = "Goedkeuring vereist voor extra korting"
	}
	c.Trail.AddLineStep(ls.Req.LineID, order, explain.KindNote, label, decimal.Zero, nil)
	return nil
}
