package typetoken

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tomblah/auto-prompt-generator-sub000/internal/marker"
)

var (
	// A bare capitalized identifier of length >= 2.
	bareTypeRe = regexp.MustCompile(`^[A-Z][A-Za-z0-9]+$`)
	// A single-element bracket generic; the inner identifier is extracted.
	bracketTypeRe = regexp.MustCompile(`^\[([A-Z][A-Za-z0-9]+)\]$`)
	nonAlnumRe    = regexp.MustCompile(`[^A-Za-z0-9]+`)
)

var importPrefixes = []string{"import", "#import", "@import", "#include"}

// Classifier gathers candidate type names from source text by capitalization
// and bracket-generic shape. It drives downstream symbol search, so output is
// deterministic: de-duplicated and lexically sorted.
type Classifier struct {
	instruction string
}

// NewClassifier returns a classifier aware of the instruction-marker comment,
// whose remainder is still scanned for type names.
func NewClassifier(instruction string) *Classifier {
	if instruction == "" {
		instruction = marker.DefaultInstruction
	}
	return &Classifier{instruction: instruction}
}

// Extract returns the sorted, de-duplicated type tokens found in content.
// Empty lines, import-style lines, and comments are skipped, except that the
// instruction-marker comment has its marker prefix stripped and the remainder
// scanned.
func (c *Classifier) Extract(content string) []string {
	seen := make(map[string]struct{})
	for _, line := range marker.SplitLines(content) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isImport(trimmed) {
			continue
		}
		if strings.HasPrefix(trimmed, c.instruction) {
			trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, c.instruction))
		} else if isComment(trimmed) {
			continue
		}
		collectTokens(trimmed, seen)
	}

	tokens := make([]string, 0, len(seen))
	for tok := range seen {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)
	return tokens
}

func collectTokens(line string, seen map[string]struct{}) {
	// Bracket generics are recognized on raw whitespace-split tokens before
	// the non-alphanumeric scrub dissolves the brackets.
	for _, raw := range strings.Fields(line) {
		if m := bracketTypeRe.FindStringSubmatch(raw); m != nil {
			seen[m[1]] = struct{}{}
		}
	}
	scrubbed := nonAlnumRe.ReplaceAllString(line, " ")
	for _, tok := range strings.Fields(scrubbed) {
		if bareTypeRe.MatchString(tok) {
			seen[tok] = struct{}{}
		}
	}
}

func isImport(trimmed string) bool {
	for _, prefix := range importPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

func isComment(trimmed string) bool {
	return strings.HasPrefix(trimmed, "//") ||
		strings.HasPrefix(trimmed, "/*") ||
		strings.HasPrefix(trimmed, "*")
}
