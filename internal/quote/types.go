// Package quote defines the contract v1 input and output models for the
// pricing engine, plus content-addressed quote identity.
package quote

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Contract constants for the v1 wholesale vertical.
const (
	VerticalID      = "ace-wholesale"
	ContractVersion = "v1"
)

// DateFormat is the ISO 8601 calendar-date layout used throughout contract v1.
const DateFormat = "2006-01-02"

// LineRequest is one requested quote line, normalized at the boundary.
type LineRequest struct {
	LineID string
	SKU    string
	// Qty is the parsed quantity used for pricing math.
	Qty decimal.Decimal
	// QtyRaw preserves the source document's number literal so output
	// round-trips the caller's value byte-for-byte.
	QtyRaw json.Number
}

// Input is the immutable, normalized computation input. It is built once by
// ParseInput and never mutated by the engine.
type Input struct {
	AsOfDate        string // ISO 8601 date
	Currency        string
	ContractVersion string

	CustomerID           string
	CustomerSegment      string
	Country              string
	ShipToPostcode       string
	RequestedDiscountPct *decimal.Decimal

	Lines []LineRequest

	// raw holds the decoded source document (json.Number literals intact).
	// Quote identity is derived from this, independent of normalization.
	raw map[string]any
}

// RawPayload returns the decoded source document used for identity hashing.
func (in *Input) RawPayload() map[string]any {
	return in.raw
}

// Notice is a business-level signal: advisory (warning) or hard stop (blocking).
// Notices are data, not errors; only structural problems cross the engine
// boundary as Go errors.
type Notice struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Line is the per-line slice of the contract v1 output.
type Line struct {
	LineID         string      `json:"lineId"`
	SKU            string      `json:"sku"`
	Qty            json.Number `json:"qty"`
	NetSell        string      `json:"netSell"`
	MarginPct      string      `json:"marginPct"`
	PriceBreakdown []string    `json:"priceBreakdown"`
}

// Output is the contract v1 quote document. Money fields are decimal-formatted
// strings ("123.45"), percentages four-place strings ("0.0950"); they are never
// serialized as binary floats.
type Output struct {
	QuoteID         string   `json:"quoteId"`
	QuoteDate       string   `json:"quoteDate"`
	ValidUntil      string   `json:"validUntil"`
	ContractVersion string   `json:"contractVersion"`
	Currency        string   `json:"currency"`
	Lines           []Line   `json:"lines"`
	TotalSell       string   `json:"totalSell"`
	MarginPct       string   `json:"marginPct"`
	Warnings        []Notice `json:"warnings"`
	Blocking        []Notice `json:"blocking"`
}

// Blocked reports whether the quote carries hard-stop notices.
func (o *Output) Blocked() bool {
	return len(o.Blocking) > 0
}
