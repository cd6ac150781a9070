package explain

import (
	"strings"

	"github.com/acewholesale/ace/internal/quote"
)

// DefaultBullet is the marker used for bulleted step lists.
const DefaultBullet = "•"

// sanitizeSteps strips carriage returns, newlines and tabs from each step,
// trims surrounding whitespace and drops blank steps entirely. Every
// formatter runs its input through this, which is what makes identical step
// sequences render identically across UI, mail and spreadsheet.
func sanitizeSteps(steps []string) []string {
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		r := strings.NewReplacer("\r", "", "\n", "", "\t", "")
		s = strings.TrimSpace(r.Replace(s))
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// JoinNewlines renders steps as one newline-joined string, for a single
// spreadsheet cell.
func JoinNewlines(steps []string) string {
	return strings.Join(sanitizeSteps(steps), "\n")
}

// BulletList renders steps as a bullet-prefixed slice, for UI lists.
func BulletList(steps []string, bullet string) []string {
	if bullet == "" {
		bullet = DefaultBullet
	}
	clean := sanitizeSteps(steps)
	out := make([]string, 0, len(clean))
	for _, s := range clean {
		out = append(out, bullet+" "+s)
	}
	return out
}

// BulletText renders steps as one bullet-per-line text block, for mail bodies.
func BulletText(steps []string, bullet string) string {
	return strings.Join(BulletList(steps, bullet), "\n")
}

// NoticesHeader renders a titled bullet list of notices. Returns "" when
// there are no notices. Renderers call this; nobody re-implements it inline.
func NoticesHeader(title string, notices []quote.Notice, bullet string) string {
	if len(notices) == 0 {
		return ""
	}
	lines := make([]string, 0, len(notices))
	for _, n := range notices {
		lines = append(lines, n.Code+": "+n.Message)
	}
	return title + "\n" + BulletText(lines, bullet)
}
