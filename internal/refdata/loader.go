package refdata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Decimal-valued fields are YAML strings on purpose: "0.50" must survive the
// trip into decimal.Decimal without a float detour.
type setDoc struct {
	Version  string `yaml:"version"`
	Articles map[string]struct {
		ListPrice    string `yaml:"listPrice"`
		BuyPrice     string `yaml:"buyPrice"`
		WeightKg     string `yaml:"weightKg"`
		Supplier     string `yaml:"supplier"`
		ProductGroup string `yaml:"productGroup"`
	} `yaml:"articles"`
	SupplierFactors   map[string]string `yaml:"supplierFactors"`
	CurrencyMarkupPct map[string]string `yaml:"currencyMarkupPct"`
	Tiers             []struct {
		Min string `yaml:"min"`
		Max string `yaml:"max"`
		Pct string `yaml:"pct"`
	} `yaml:"tiers"`
	CustomerProfileDiscountPct  map[string]string `yaml:"customerProfileDiscountPct"`
	CustomerMaxExtraDiscountPct map[string]string `yaml:"customerMaxExtraDiscountPct"`
	PostcodeZones               map[string]string `yaml:"postcodeZones"`
	ZoneRatePerKg               map[string]string `yaml:"zoneRatePerKg"`
	MinMarginPctByGroup         map[string]string `yaml:"minMarginPctByGroup"`
	DefaultMinMarginPct         string            `yaml:"defaultMinMarginPct"`
	BlockedCountries            []string          `yaml:"blockedCountries"`
}

// Load reads a reference snapshot from a YAML file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference data: %w", err)
	}
	return Parse(data)
}

// Parse decodes a reference snapshot from YAML bytes.
func Parse(data []byte) (*Set, error) {
	var doc setDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse reference data: %w", err)
	}

	set := &Set{
		Version:          doc.Version,
		Articles:         make(map[string]Article, len(doc.Articles)),
		PostcodeZones:    doc.PostcodeZones,
		BlockedCountries: make(map[string]bool, len(doc.BlockedCountries)),
	}
	if set.PostcodeZones == nil {
		set.PostcodeZones = map[string]string{}
	}

	for sku, a := range doc.Articles {
		listPrice, err := parseDecimal("articles."+sku+".listPrice", a.ListPrice)
		if err != nil {
			return nil, err
		}
		buyPrice, err := parseDecimal("articles."+sku+".buyPrice", a.BuyPrice)
		if err != nil {
			return nil, err
		}
		weight, err := parseDecimal("articles."+sku+".weightKg", a.WeightKg)
		if err != nil {
			return nil, err
		}
		set.Articles[sku] = Article{
			SKU:          sku,
			ListPrice:    listPrice,
			BuyPrice:     buyPrice,
			WeightKg:     weight,
			Supplier:     a.Supplier,
			ProductGroup: a.ProductGroup,
		}
	}

	var err error
	if set.SupplierFactors, err = parseDecimalMap("supplierFactors", doc.SupplierFactors); err != nil {
		return nil, err
	}
	if set.CurrencyMarkupPct, err = parseDecimalMap("currencyMarkupPct", doc.CurrencyMarkupPct); err != nil {
		return nil, err
	}
	if set.CustomerProfileDiscountPct, err = parseDecimalMap("customerProfileDiscountPct", doc.CustomerProfileDiscountPct); err != nil {
		return nil, err
	}
	if set.CustomerMaxExtraDiscountPct, err = parseDecimalMap("customerMaxExtraDiscountPct", doc.CustomerMaxExtraDiscountPct); err != nil {
		return nil, err
	}
	if set.ZoneRatePerKg, err = parseDecimalMap("zoneRatePerKg", doc.ZoneRatePerKg); err != nil {
		return nil, err
	}
	if set.MinMarginPctByGroup, err = parseDecimalMap("minMarginPctByGroup", doc.MinMarginPctByGroup); err != nil {
		return nil, err
	}
	if set.DefaultMinMarginPct, err = parseDecimal("defaultMinMarginPct", doc.DefaultMinMarginPct); err != nil {
		return nil, err
	}

	for i, tr := range doc.Tiers {
		tierField := fmt.Sprintf("tiers[%d]", i)
		tier := Tier{}
		if tier.Min, err = parseDecimal(tierField+".min", tr.Min); err != nil {
			return nil, err
		}
		if tier.Pct, err = parseDecimal(tierField+".pct", tr.Pct); err != nil {
			return nil, err
		}
		if tr.Max != "" {
			max, err := parseDecimal(tierField+".max", tr.Max)
			if err != nil {
				return nil, err
			}
			tier.Max = &max
		}
		set.Tiers = append(set.Tiers, tier)
	}

	for _, c := range doc.BlockedCountries {
		set.BlockedCountries[c] = true
	}

	return set, nil
}
