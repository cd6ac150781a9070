package engine

import (
	"errors"
	"fmt"
)

// StructuralError represents input the engine cannot price at all, as opposed
// to business conditions, which are Notices inside a computed quote.
//
// Structural errors include:
//   - Missing sku: a line references an article absent from the snapshot
//   - Invalid ruleset: the configured rule list failed validation
type StructuralError struct {
	// Code identifies the error category.
	Code StructuralErrorCode

	// Message is a human-readable description.
	Message string

	// LineID identifies the affected line, when line-scoped.
	LineID string
}

// StructuralErrorCode categorizes structural errors.
type StructuralErrorCode string

const (
	// ErrCodeMissingSKU indicates a line references an unknown article.
	ErrCodeMissingSKU StructuralErrorCode = "MISSING_SKU"

	// ErrCodeInvalidRuleSet indicates the ruleset failed validation.
	ErrCodeInvalidRuleSet StructuralErrorCode = "INVALID_RULESET"
)

// Error implements the error interface.
func (e *StructuralError) Error() string {
	if e.LineID != "" {
		return fmt.Sprintf("%s: %s (line=%s)", e.Code, e.Message, e.LineID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsMissingSKU returns true if the error is a missing-sku structural error.
// Uses errors.As to handle wrapped errors.
func IsMissingSKU(err error) bool {
	var se *StructuralError
	if errors.As(err, &se) {
		return se.Code == ErrCodeMissingSKU
	}
	return false
}

// NewMissingSKUError creates a StructuralError for an unknown article.
func NewMissingSKUError(lineID, sku string) *StructuralError {
	return &StructuralError{
		Code:    ErrCodeMissingSKU,
		Message: fmt.Sprintf("unknown sku %q", sku),
		LineID:  lineID,
	}
}

// NewInvalidRuleSetError creates a StructuralError for a ruleset that failed
// validation.
func NewInvalidRuleSetError(msg string) *StructuralError {
	return &StructuralError{
		Code:    ErrCodeInvalidRuleSet,
		Message: msg,
	}
}
