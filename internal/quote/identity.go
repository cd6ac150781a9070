package quote

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/acewholesale/ace/internal/canonical"
)

// quoteIDPrefix tags content-addressed quote ids ("q_<16 hex digits>").
const quoteIDPrefix = "q_"

// ComputeQuoteID derives the content-addressed quote id from the contract
// version, the vertical id and the raw input payload.
//
// The id is a pure function of those three values: it reads no clock, no
// random state and nothing engine-internal, so resubmitting identical input
// is idempotent and safe to deduplicate on. Identity is computed from the
// INPUT, never from rule output.
func ComputeQuoteID(contractVersion, verticalID string, payload map[string]any) (string, error) {
	material := map[string]any{
		"contractVersion": contractVersion,
		"verticalId":      verticalID,
		"input":           payload,
	}

	data, err := canonical.Marshal(material)
	if err != nil {
		return "", fmt.Errorf("compute quote id: %w", err)
	}

	sum := sha256.Sum256(data)
	return quoteIDPrefix + hex.EncodeToString(sum[:])[:16], nil
}

// QuoteID computes the id for a normalized input using its raw payload.
func QuoteID(in *Input) (string, error) {
	return ComputeQuoteID(in.ContractVersion, VerticalID, in.RawPayload())
}
