package marker

import "strings"

// Filter rewrites file content so that only marker-delimited regions remain
// verbatim. Everything else, including the marker lines themselves, collapses
// to a single placeholder per omitted span. The transformation is purely
// textual; it does not interpret code semantics.
type Filter struct {
	scanner     *Scanner
	placeholder string
}

// NewFilter returns a filter emitting the given placeholder for omitted spans.
// An empty placeholder selects the default.
func NewFilter(scanner *Scanner, placeholder string) *Filter {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return &Filter{scanner: scanner, placeholder: placeholder}
}

// Apply returns the filtered content, retaining only the line spans that
// Scanner.Regions reports visible. Files that do not use markers are
// returned unchanged, which makes the filter idempotent over its own output;
// forceMarkers treats every file as marker-using, so unmarked files collapse
// to a lone placeholder.
//
// Invariants: consecutive omitted spans collapse to one placeholder, a
// zero-line omitted span emits nothing, and a file ending inside an omitted
// span (including right after a close marker) still gets a trailing
// placeholder to signal truncation.
func (f *Filter) Apply(content string, forceMarkers bool) string {
	lines := SplitLines(content)
	if !forceMarkers && !f.scanner.UsesMarkers(lines) {
		return content
	}

	regions := f.scanner.Regions(lines)
	var b strings.Builder
	omitted := 0
	r := 0
	for i, line := range lines {
		for r < len(regions) && i >= regions[r].End {
			r++
		}
		visible := r < len(regions) && i >= regions[r].Start
		// Marker lines are omitted text even when nested inside a region.
		if !visible || f.scanner.IsOpen(line) || f.scanner.IsClose(line) {
			omitted++
			continue
		}
		if omitted > 0 {
			b.WriteString(f.placeholder)
			b.WriteString("\n")
			omitted = 0
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if omitted > 0 {
		b.WriteString(f.placeholder)
		b.WriteString("\n")
	}
	return b.String()
}
