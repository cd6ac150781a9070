package quote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// inputDoc mirrors input.v1.schema.json. Field ambiguity (line ids, optional
// context) is resolved here, in one normalization step at the boundary; the
// engine only ever sees the fixed Input shape.
type inputDoc struct {
	AsOfDate             string      `json:"asOfDate"`
	Currency             string      `json:"currency"`
	ContractVersion      string      `json:"contractVersion"`
	CustomerID           string      `json:"customerId"`
	CustomerSegment      string      `json:"customerSegment"`
	Country              string      `json:"country"`
	ShipToPostcode       string      `json:"shipToPostcode"`
	RequestedDiscountPct json.Number `json:"requestedDiscountPct"`
	Lines                []struct {
		LineID string      `json:"lineId"`
		SKU    string      `json:"sku"`
		Qty    json.Number `json:"qty"`
	} `json:"lines"`
}

// ParseInput decodes and normalizes an input document. The caller is expected
// to have validated the bytes against input.v1.schema.json first; ParseInput
// still guards the invariants the engine depends on.
func ParseInput(data []byte) (*Input, error) {
	var doc inputDoc
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}

	var raw map[string]any
	rawDec := json.NewDecoder(bytes.NewReader(data))
	rawDec.UseNumber()
	if err := rawDec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode input payload: %w", err)
	}

	if _, err := time.Parse(DateFormat, doc.AsOfDate); err != nil {
		return nil, fmt.Errorf("invalid asOfDate %q: %w", doc.AsOfDate, err)
	}
	currency := strings.ToUpper(strings.TrimSpace(doc.Currency))
	if len(currency) != 3 {
		return nil, fmt.Errorf("invalid currency %q: want ISO 4217 code", doc.Currency)
	}
	if len(doc.Lines) == 0 {
		return nil, fmt.Errorf("input has no lines")
	}

	cv := doc.ContractVersion
	if cv == "" {
		cv = ContractVersion
	}

	in := &Input{
		AsOfDate:        doc.AsOfDate,
		Currency:        currency,
		ContractVersion: cv,
		CustomerID:      doc.CustomerID,
		CustomerSegment: strings.ToUpper(strings.TrimSpace(doc.CustomerSegment)),
		Country:         strings.ToUpper(strings.TrimSpace(doc.Country)),
		ShipToPostcode:  strings.ToUpper(strings.TrimSpace(doc.ShipToPostcode)),
		Lines:           make([]LineRequest, 0, len(doc.Lines)),
		raw:             raw,
	}

	if doc.RequestedDiscountPct != "" {
		pct, err := decimal.NewFromString(string(doc.RequestedDiscountPct))
		if err != nil {
			return nil, fmt.Errorf("invalid requestedDiscountPct %q: %w", doc.RequestedDiscountPct, err)
		}
		in.RequestedDiscountPct = &pct
	}

	for i, l := range doc.Lines {
		sku := strings.TrimSpace(l.SKU)
		if sku == "" {
			return nil, fmt.Errorf("line %d: empty sku", i+1)
		}
		qty, err := decimal.NewFromString(string(l.Qty))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid qty %q: %w", i+1, l.Qty, err)
		}
		if qty.Sign() <= 0 {
			return nil, fmt.Errorf("line %d: qty must be positive, got %s", i+1, qty)
		}
		lineID := l.LineID
		if lineID == "" {
			lineID = fmt.Sprintf("l%d", i+1)
		}
		in.Lines = append(in.Lines, LineRequest{
			LineID: lineID,
			SKU:    sku,
			Qty:    qty,
			QtyRaw: l.Qty,
		})
	}

	seen := make(map[string]bool, len(in.Lines))
	for _, l := range in.Lines {
		if seen[l.LineID] {
			return nil, fmt.Errorf("duplicate line id %q", l.LineID)
		}
		seen[l.LineID] = true
	}

	return in, nil
}

// ValidUntil computes the quote expiry date: asOfDate plus 14 calendar days.
func ValidUntil(asOfDate string) (string, error) {
	d, err := time.Parse(DateFormat, asOfDate)
	if err != nil {
		return "", fmt.Errorf("invalid asOfDate %q: %w", asOfDate, err)
	}
	return d.AddDate(0, 0, 14).Format(DateFormat), nil
}
