package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/tomblah/auto-prompt-generator-sub000/internal/config"
	"github.com/tomblah/auto-prompt-generator-sub000/internal/extract"
	"github.com/tomblah/auto-prompt-generator-sub000/internal/marker"
	"github.com/tomblah/auto-prompt-generator-sub000/internal/structural"
	"github.com/tomblah/auto-prompt-generator-sub000/internal/typetoken"
)

// ContextHeader separates a file's filtered content from the appended
// enclosing-block text.
const ContextHeader = "\n\n// Enclosing function context:\n"

// Engine composes marker filtering, enclosing-context extraction, and type
// discovery over single files. It holds no per-request state; one Engine can
// serve many files, concurrently, without locking.
type Engine struct {
	cfg        *config.Config
	scanner    *marker.Scanner
	filter     *marker.Filter
	extractor  *extract.Extractor
	classifier *typetoken.Classifier
}

// New builds an engine from configuration, wiring the structural locator in
// front of the heuristic fallback.
func New(cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	scanner := marker.NewScannerWithTokens(
		cfg.Markers.Open, cfg.Markers.Close, cfg.Markers.Instruction)
	return &Engine{
		cfg:        cfg,
		scanner:    scanner,
		filter:     marker.NewFilter(scanner, cfg.Markers.Placeholder),
		extractor:  extract.NewExtractor(structural.NewTreeSitterLocator()),
		classifier: typetoken.NewClassifier(cfg.Markers.Instruction),
	}
}

// ProcessFile returns the prompt-ready text for one file: its marker-filtered
// content, plus the enclosing-block appendix when the file's basename equals
// expectedBasename. The gate lets a multi-file batch run full structural
// extraction only on the one file known to contain the instruction marker.
func (e *Engine) ProcessFile(path, content, expectedBasename string) string {
	out := e.filter.Apply(content, e.cfg.Markers.ForceAll)

	if expectedBasename == "" || filepath.Base(path) != expectedBasename {
		return out
	}

	lines := marker.SplitLines(content)
	idx, ok := e.scanner.InstructionLine(lines)
	if !ok {
		return out
	}
	// A marker already inside a visible region needs no extraction: the
	// region itself is the context.
	if e.scanner.InsideVisibleRegion(lines, idx) {
		return out
	}
	block, ok := e.extractor.EnclosingContext(path, content, idx)
	if !ok {
		return out
	}
	return out + ContextHeader + block
}

// InstructionText returns the text of the first instruction-marker line in
// content, trimmed, for echoing in the assembled prompt.
func (e *Engine) InstructionText(content string) (string, bool) {
	lines := marker.SplitLines(content)
	idx, ok := e.scanner.InstructionLine(lines)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(lines[idx]), true
}

// ExtractTypes classifies candidate type tokens in content, after marker
// filtering when the file uses markers.
func (e *Engine) ExtractTypes(content string) []string {
	filtered := e.filter.Apply(content, e.cfg.Markers.ForceAll)
	return e.classifier.Extract(filtered)
}

// WriteTypesFile persists the token list, newline-joined, to a uniquely named
// file under the system temp directory and returns its path for the caller to
// reference.
func (e *Engine) WriteTypesFile(tokens []string) (string, error) {
	path := filepath.Join(os.TempDir(), fmt.Sprintf("promptgen-types-%s.txt", uuid.NewString()))
	data := strings.Join(tokens, "\n")
	if len(tokens) > 0 {
		data += "\n"
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return "", fmt.Errorf("failed to write types file: %w", err)
	}
	return path, nil
}
