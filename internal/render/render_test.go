package render

import (
	"github.com/acewholesale/ace/internal/quote"
)

func sampleOutput() *quote.Output {
	return &quote.Output{
		QuoteID:         "q_1523d8034a69237f",
		QuoteDate:       "2025-03-01",
		ValidUntil:      "2025-03-15",
		ContractVersion: "v1",
		Currency:        "EUR",
		Lines: []quote.Line{
			{
				LineID:    "l1",
				SKU:       "SKU-100",
				Qty:       "10",
				NetSell:   "174.16",
				MarginPct: "31.0978",
				PriceBreakdown: []string{
					"Basisprijs: EUR 180.00 (10 × EUR 18.00)",
					"Netto inkoop: EUR 110.00 (factor=1.1, opslag=0%)",
					"Staffelkorting: -5% (qty=10)",
					"Klantkorting (B): -4.00% (van 171.00 naar 164.16)",
					"Transport zone Z1: +10.00 (20.000 kg × 0.50/kg)",
					"Minimummarge: OK (≥20%)",
				},
			},
			{
				LineID:    "l2",
				SKU:       "SKU-200",
				Qty:       "4",
				NetSell:   "154.60",
				MarginPct: "34.6701",
				PriceBreakdown: []string{
					"Basisprijs: EUR 160.00 (4 × EUR 40.00)",
					"Netto inkoop: EUR 100.00 (factor=1.0, opslag=0%)",
					"Klantkorting (B): -4.00% (van 160.00 naar 153.60)",
					"Transport zone Z1: +1.00 (2.000 kg × 0.50/kg)",
					"Minimummarge: OK (≥20%)",
				},
			},
		},
		TotalSell: "328.76",
		MarginPct: "32.7777",
		Warnings:  []quote.Notice{},
		Blocking:  []quote.Notice{},
	}
}
