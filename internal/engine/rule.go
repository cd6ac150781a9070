package engine

// Rule is one pricing step. Apply runs once per line, in ruleset order, and
// may mutate the line state, append explain entries and record notices.
//
// Rules are stateless values: everything a rule needs arrives through the
// context and the line state, so the same rule list can serve any number of
// sequential computations.
type Rule interface {
	// ID is the stable identifier the ruleset refers to.
	ID() string

	// Apply runs the rule against one line. order is the rule's explain
	// order, derived from its position in the execution order.
	Apply(c *Context, ls *LineState, order int) error
}

// Capabilities maps rule ids to constructors. The map is built explicitly at
// startup and handed to RuleSet.Build; there is no package-level registry and
// nothing registers itself in init.
type Capabilities map[string]func() Rule

// DefaultCapabilities returns the full wholesale-vertical rule catalog.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		"block_country":     func() Rule { return BlockCountry{} },
		"base_price":        func() Rule { return BasePrice{} },
		"net_cost":          func() Rule { return NetCost{} },
		"tier_discount":     func() Rule { return TierDiscount{} },
		"customer_discount": func() Rule { return CustomerDiscount{} },
		"transport":         func() Rule { return Transport{} },
		"min_margin":        func() Rule { return MinMargin{} },
		"approval_discount": func() Rule { return ApprovalDiscount{} },
	}
}

// BoundRule is a rule bound to its place in the execution order.
type BoundRule struct {
	// ID is the rule's ruleset identifier.
	ID string

	// Order is the explain order for entries the rule emits:
	// (position in execution order + 1) * 10. Gaps are deliberate; a future
	// rule can slot between two existing ones without renumbering history.
	Order int

	// Rule is the constructed rule value.
	Rule Rule
}
