// Package refdata models the versioned reference snapshot a quote computation
// runs against: articles, staffel tiers, supplier factors, transport zones and
// customer agreements.
//
// A Set is plain read-only input. The engine never caches or mutates one
// across computations; the caller decides which snapshot a computation sees.
package refdata

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Article is the priced catalog snapshot for one sku.
type Article struct {
	SKU          string
	ListPrice    decimal.Decimal
	BuyPrice     decimal.Decimal
	WeightKg     decimal.Decimal
	Supplier     string
	ProductGroup string
}

// Tier is one staffel row. Max nil means open-ended.
type Tier struct {
	Min decimal.Decimal
	Max *decimal.Decimal
	Pct decimal.Decimal
}

// Set is a complete reference snapshot.
type Set struct {
	Version string

	Articles          map[string]Article
	SupplierFactors   map[string]decimal.Decimal
	CurrencyMarkupPct map[string]decimal.Decimal
	Tiers             []Tier

	CustomerProfileDiscountPct  map[string]decimal.Decimal
	CustomerMaxExtraDiscountPct map[string]decimal.Decimal

	PostcodeZones map[string]string
	ZoneRatePerKg map[string]decimal.Decimal

	MinMarginPctByGroup map[string]decimal.Decimal
	DefaultMinMarginPct decimal.Decimal

	BlockedCountries map[string]bool
}

// Article looks up the catalog snapshot for a sku.
func (s *Set) Article(sku string) (Article, bool) {
	a, ok := s.Articles[sku]
	return a, ok
}

// SupplierFactor returns the purchase factor for a supplier, defaulting to 1.
func (s *Set) SupplierFactor(supplier string) decimal.Decimal {
	if f, ok := s.SupplierFactors[supplier]; ok {
		return f
	}
	return decimal.New(1, 0)
}

// CurrencyMarkup returns the markup percentage for a currency, defaulting to 0.
func (s *Set) CurrencyMarkup(currency string) decimal.Decimal {
	if m, ok := s.CurrencyMarkupPct[currency]; ok {
		return m
	}
	return decimal.Zero
}

// MatchTier returns the best staffel row for a quantity: the matching row with
// the highest Min. Returns nil when no row matches.
func (s *Set) MatchTier(qty decimal.Decimal) *Tier {
	var best *Tier
	for i := range s.Tiers {
		t := &s.Tiers[i]
		if qty.Cmp(t.Min) < 0 {
			continue
		}
		if t.Max != nil && qty.Cmp(*t.Max) > 0 {
			continue
		}
		if best == nil || t.Min.Cmp(best.Min) > 0 {
			best = t
		}
	}
	return best
}

// ProfileDiscount returns the standing discount for a customer segment.
func (s *Set) ProfileDiscount(segment string) decimal.Decimal {
	if pct, ok := s.CustomerProfileDiscountPct[segment]; ok {
		return pct
	}
	return decimal.Zero
}

// MaxExtraDiscount returns the extra-discount ceiling for a customer segment.
func (s *Set) MaxExtraDiscount(segment string) decimal.Decimal {
	if pct, ok := s.CustomerMaxExtraDiscountPct[segment]; ok {
		return pct
	}
	return decimal.Zero
}

// Zone resolves a postcode to a transport zone by prefix, longest first (4,3,2).
func (s *Set) Zone(postcode string) (string, bool) {
	for _, n := range []int{4, 3, 2} {
		if len(postcode) < n {
			continue
		}
		if z, ok := s.PostcodeZones[postcode[:n]]; ok {
			return z, true
		}
	}
	return "", false
}

// ZoneRate returns the per-kg transport rate for a zone, defaulting to 0.
func (s *Set) ZoneRate(zone string) decimal.Decimal {
	if r, ok := s.ZoneRatePerKg[zone]; ok {
		return r
	}
	return decimal.Zero
}

// MinMargin returns the minimum margin percentage for a product group.
func (s *Set) MinMargin(productGroup string) decimal.Decimal {
	if m, ok := s.MinMarginPctByGroup[productGroup]; ok {
		return m
	}
	return s.DefaultMinMarginPct
}

// CountryBlocked reports whether selling into a country is forbidden.
func (s *Set) CountryBlocked(country string) bool {
	return s.BlockedCountries[country]
}

func parseDecimal(field, v string) (decimal.Decimal, error) {
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s: invalid decimal %q: %w", field, v, err)
	}
	return d, nil
}

func parseDecimalMap(field string, in map[string]string) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(in))
	for k, v := range in {
		d, err := parseDecimal(fmt.Sprintf("%s[%s]", field, k), v)
		if err != nil {
			return nil, err
		}
		out[k] = d
	}
	return out, nil
}
