package explain

// Policy filters a raw trail down to the steps worth showing and renders
// them. Rendering is centralized here so UI, mail and spreadsheet never
// re-derive step text.
type Policy struct{}

// alwaysShown lists the kinds that appear in the breakdown regardless of delta.
var alwaysShown = map[Kind]bool{
	KindBase:      true,
	KindNetCost:   true,
	KindMinMargin: true,
}

// FilterEntries keeps an entry when its kind is always shown or it moved the
// price. Pure: the input slice is never mutated.
func (Policy) FilterEntries(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if alwaysShown[e.Kind] || e.HasEffect() {
			out = append(out, e)
		}
	}
	return out
}

// RenderEntry turns one entry into its display string. Currently the label
// verbatim; stricter templates can land here without touching any consumer.
func (Policy) RenderEntry(e Entry) string {
	return e.Label
}

// RenderLine filters and renders one line's trail in a single pass.
func (p Policy) RenderLine(le *LineExplain) []string {
	if le == nil {
		return nil
	}
	filtered := p.FilterEntries(le.Entries)
	steps := make([]string, 0, len(filtered))
	for _, e := range filtered {
		steps = append(steps, p.RenderEntry(e))
	}
	return steps
}
