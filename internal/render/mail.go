// Package render turns a computed quote into its outbound representations:
// a plain-text mail and a spreadsheet. Renderers are pure functions of the
// output document; they never recompute, only present.
package render

import (
	"fmt"
	"strings"

	"github.com/acewholesale/ace/internal/explain"
	"github.com/acewholesale/ace/internal/quote"
)

// Mail is a rendered quote notification.
type Mail struct {
	Subject string
	Body    string
}

const blockedStatement = "This quote may not be exported/approved until blocking issues are resolved."

// RenderMail renders the notification for a computed quote. Blocking wins
// over warnings: a blocked quote mails as BLOCKED and its line breakdowns
// are withheld until the quote is fixed.
func RenderMail(out *quote.Output) Mail {
	var subject, status string
	switch {
	case out.Blocked():
		subject = fmt.Sprintf("[BLOCKED] Quote requires fix (%s)", out.QuoteID)
		status = "BLOCKED"
	case len(out.Warnings) > 0:
		subject = fmt.Sprintf("[APPROVAL REQUIRED] Quote needs review (%s)", out.QuoteID)
		status = "APPROVAL REQUIRED"
	default:
		subject = fmt.Sprintf("[OK] Quote ready (%s)", out.QuoteID)
		status = "OK"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total: %s %s\n", out.Currency, out.TotalSell)
	fmt.Fprintf(&b, "Quote ID: %s\n", out.QuoteID)
	fmt.Fprintf(&b, "Status: %s\n", status)
	b.WriteString("\n")

	if out.Blocked() {
		b.WriteString(explain.NoticesHeader("BLOCKING (hard stop)", out.Blocking, ""))
		b.WriteString("\n")
		b.WriteString(blockedStatement + "\n\n")
	} else if len(out.Warnings) > 0 {
		b.WriteString(explain.NoticesHeader("WARNINGS (approval / attention)", out.Warnings, ""))
		b.WriteString("\n\n")
	}

	b.WriteString("LINES\n-----\n")
	for _, l := range out.Lines {
		fmt.Fprintf(&b, "- Line %s | SKU=%s | qty=%s | netSell=%s %s\n",
			l.LineID, l.SKU, l.Qty.String(), out.Currency, l.NetSell)
		if out.Blocked() {
			continue
		}
		steps := explain.BulletText(l.PriceBreakdown, "")
		if steps == "" {
			steps = explain.DefaultBullet + " (no breakdown steps)"
		}
		b.WriteString(steps + "\n")
	}

	return Mail{
		Subject: subject,
		Body:    strings.TrimRight(b.String(), "\n") + "\n",
	}
}
