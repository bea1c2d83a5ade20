package extract

import (
	"github.com/tomblah/auto-prompt-generator-sub000/internal/marker"
	"github.com/tomblah/auto-prompt-generator-sub000/internal/structural"
)

// Extractor discovers the smallest enclosing syntactic unit around the
// instruction marker. A structural parse is tried first when a grammar covers
// the file's dialect; on failure or inapplicability it falls back to the
// backward candidate scan plus brace balancing.
type Extractor struct {
	locator structural.Locator
}

// NewExtractor returns an extractor using the given locator for the
// structural path. A nil locator limits extraction to the heuristic path.
func NewExtractor(locator structural.Locator) *Extractor {
	return &Extractor{locator: locator}
}

// EnclosingContext returns the text of the block enclosing markerLine. ok is
// false when no enclosing context exists, an expected outcome for marker-only
// files with no surrounding code structure.
func (e *Extractor) EnclosingContext(path, content string, markerLine int) (string, bool) {
	lines := marker.SplitLines(content)

	if e.locator != nil {
		offset := ByteOffsetOfLine(lines, markerLine)
		if text, ok := e.locator.EnclosingDeclaration(path, []byte(content), offset); ok {
			return text, true
		}
	}

	cand, ok := FindCandidate(lines, markerLine)
	if !ok {
		return "", false
	}
	block := ExtractBalancedBlock(lines, cand.Line)
	return block.Text, true
}

// TypeContext returns the last type declaration preceding markerLine, using
// the structural path only. ok is false when the dialect has no grammar or no
// type declaration starts before the marker.
func (e *Extractor) TypeContext(path, content string, markerLine int) (string, bool) {
	if e.locator == nil {
		return "", false
	}
	lines := marker.SplitLines(content)
	cutoff := ByteOffsetOfLine(lines, markerLine)
	return e.locator.LastTypeDeclarationBefore(path, []byte(content), cutoff)
}
