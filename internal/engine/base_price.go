package engine

import (
	"fmt"

	"github.com/acewholesale/ace/internal/explain"
	"github.com/acewholesale/ace/internal/money"
)

// BasePrice sets the opening sell price: list price times quantity. Its BASE
// entry is always shown, delta or not.
type BasePrice struct{}

func (BasePrice) ID() string { return "base_price" }

func (BasePrice) Apply(c *Context, ls *LineState, order int) error {
	base := money.QuantizeMoney(ls.Art.ListPrice.Mul(ls.Req.Qty))
	ls.Sell = base

	label := fmt.Sprintf("Basisprijs: %s %s (%s × %s %s)",
		c.Input.Currency, money.FormatMoney(base),
		ls.Req.Qty.String(), c.Input.Currency, money.FormatMoney(ls.Art.ListPrice))
	c.Trail.AddLineStep(ls.Req.LineID, order, explain.KindBase, label, base, nil)
	return nil
}
