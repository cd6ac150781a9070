package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/acewholesale/ace/internal/explain"
)

// BlockCountry rejects sales into embargoed countries. The blocking notice is
// quote-scoped and fires once; each line still gets a trail note.
type BlockCountry struct{}

func (BlockCountry) ID() string { return "block_country" }

func (BlockCountry) Apply(c *Context, ls *LineState, order int) error {
	if !c.Data.CountryBlocked(c.Input.Country) {
		return nil
	}
	if c.Once("block_country") {
		c.Block("COUNTRY_BLOCK", fmt.Sprintf("country %s is blocked for sales", c.Input.Country))
	}
	c.Trail.AddLineStep(ls.Req.LineID, order, explain.KindNote,
		fmt.Sprintf("Land %s geblokkeerd", c.Input.Country), decimal.Zero, nil)
	return nil
}
