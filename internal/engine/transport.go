package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/acewholesale/ace/internal/explain"
	"github.com/acewholesale/ace/internal/money"
)

// Transport adds shipping cost: the line's weight (3-place quantized) times
// the zone's per-kg rate. The zone comes from the ship-to postcode by longest
// prefix. A missing or unresolvable postcode is a warning and zero cost, not
// an error; the quote stays computable.
type Transport struct{}

func (Transport) ID() string { return "transport" }

func (Transport) Apply(c *Context, ls *LineState, order int) error {
	pc := c.Input.ShipToPostcode
	if pc == "" {
		if c.Once("transport:missing") {
			c.Warn("POSTCODE_MISSING", "shipToPostcode missing, transport cost not applied")
		}
		c.Trail.AddLineStep(ls.Req.LineID, order, explain.KindNote,
			"Transport: geen postcode", decimal.Zero, nil)
		return nil
	}

	zone, ok := c.Data.Zone(pc)
	if !ok {
		if c.Once("transport:unknown") {
			c.Warn("POSTCODE_UNKNOWN", fmt.Sprintf("no transport zone for postcode %s", pc))
		}
		c.Trail.AddLineStep(ls.Req.LineID, order, explain.KindNote,
			"Transport: onbekende postcode", decimal.Zero, nil)
		return nil
	}

	rate := c.Data.ZoneRate(zone)
	weight := money.Quantize(ls.Art.WeightKg.Mul(ls.Req.Qty), 3)
	cost := money.QuantizeMoney(weight.Mul(rate))

	ls.Transport = cost
	ls.Sell = ls.Sell.Add(cost)

	label := fmt.Sprintf("Transport zone %s: +%s (%s kg × %s/kg)",
		zone, money.FormatMoney(cost), weight.StringFixed(3), money.FormatMoney(rate))
	c.Trail.AddLineStep(ls.Req.LineID, order, explain.KindTransport, label, cost, nil)
	return nil
}
