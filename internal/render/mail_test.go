package render

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/acewholesale/ace/internal/quote"
)

func TestRenderMailOK(t *testing.T) {
	m := RenderMail(sampleOutput())

	assert.Equal(t, "[OK] Quote ready (q_1523d8034a69237f)", m.Subject)
	assert.True(t, strings.HasSuffix(m.Body, "\n"))
	assert.False(t, strings.HasSuffix(m.Body, "\n\n"))

	g := goldie.New(t)
	g.Assert(t, "mail_ok", []byte(m.Body))
}

func TestRenderMailWarnings(t *testing.T) {
	out := sampleOutput()
	out.Warnings = []quote.Notice{
		{Code: "DISCOUNT_CAPPED", Message: "requested extra discount 9% capped to 2% for segment B"},
		{Code: "APPROVAL_REQUIRED", Message: "requested extra discount 9% exceeds segment maximum 2%, approval required"},
	}

	m := RenderMail(out)
	assert.Equal(t, "[APPROVAL REQUIRED] Quote needs review (q_1523d8034a69237f)", m.Subject)
	assert.Contains(t, m.Body, "Status: APPROVAL REQUIRED")
	assert.Contains(t, m.Body, "WARNINGS (approval / attention)")
	assert.Contains(t, m.Body, "• DISCOUNT_CAPPED: requested extra discount 9% capped to 2% for segment B")
	// Warnings do not withhold the breakdown.
	assert.Contains(t, m.Body, "• Basisprijs: EUR 180.00 (10 × EUR 18.00)")
}

func TestRenderMailBlocked(t *testing.T) {
	out := sampleOutput()
	out.Blocking = []quote.Notice{
		{Code: "MARGIN_BLOCK", Message: "line l1: margin 12.50% below minimum 20%"},
	}

	m := RenderMail(out)
	assert.Equal(t, "[BLOCKED] Quote requires fix (q_1523d8034a69237f)", m.Subject)
	assert.NotContains(t, m.Body, "Basisprijs")
	assert.Contains(t, m.Body,
		"This quote may not be exported/approved until blocking issues are resolved.")

	g := goldie.New(t)
	g.Assert(t, "mail_blocked", []byte(m.Body))
}

func TestRenderMailEmptyBreakdown(t *testing.T) {
	out := sampleOutput()
	out.Lines = out.Lines[:1]
	out.Lines[0].PriceBreakdown = nil

	m := RenderMail(out)
	assert.Contains(t, m.Body, "• (no breakdown steps)")
}
