package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/acewholesale/ace/internal/explain"
	"github.com/acewholesale/ace/internal/money"
)

// NetCost establishes the purchase cost basis: buy price times quantity,
// scaled by the supplier factor and the currency markup. It never moves the
// sell price; its NET_COST entry is informational and always shown.
type NetCost struct{}

func (NetCost) ID() string { return "net_cost" }

func (NetCost) Apply(c *Context, ls *LineState, order int) error {
	factor := c.Data.SupplierFactor(ls.Art.Supplier)
	markup := c.Data.CurrencyMarkup(c.Input.Currency)

	cost := ls.Art.BuyPrice.Mul(ls.Req.Qty).Mul(factor).
		Mul(decimal.New(1, 0).Add(money.Percent(markup)))
	ls.NetCost = money.QuantizeMoney(cost)

	label := fmt.Sprintf("Netto inkoop: %s %s (factor=%s, opslag=%s%%)",
		c.Input.Currency, money.FormatMoney(ls.NetCost), formatFactor(factor), markup.String())
	c.Trail.AddLineStep(ls.Req.LineID, order, explain.KindNetCost, label, decimal.Zero, nil)
	return nil
}

// formatFactor renders a supplier factor with at least one decimal place, so
// a neutral factor reads "1.0" rather than "1".
func formatFactor(d decimal.Decimal) string {
	if d.IsInteger() {
		return d.StringFixed(1)
	}
	return d.String()
}
