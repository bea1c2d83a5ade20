package marker

import "strings"

// Default marker tokens. A visible region opens on a line that is exactly the
// open marker (after trimming) and closes on a line that is exactly the close
// marker. The instruction marker is matched as a substring anywhere on a line.
const (
	DefaultOpen        = "// v"
	DefaultClose       = "// ^"
	DefaultInstruction = "// TODO: -"
	DefaultPlaceholder = "// ..."
)

// Region is a half-open interval [Start, End) of the line indices that are
// visible inside one marker-delimited block. The open-marker line sits at
// Start-1 and the close-marker line (when present) at End.
type Region struct {
	Start int
	End   int
}

// Scanner locates visible-region boundaries and the instruction marker inside
// a file's lines. It holds no per-file state and is safe for concurrent use.
type Scanner struct {
	open        string
	close       string
	instruction string
}

// NewScanner returns a scanner using the default marker tokens.
func NewScanner() *Scanner {
	return NewScannerWithTokens(DefaultOpen, DefaultClose, DefaultInstruction)
}

// NewScannerWithTokens returns a scanner using caller-supplied marker tokens.
func NewScannerWithTokens(open, close, instruction string) *Scanner {
	return &Scanner{open: open, close: close, instruction: instruction}
}

// InstructionToken returns the instruction-marker substring this scanner
// matches against.
func (s *Scanner) InstructionToken() string {
	return s.instruction
}

// IsOpen reports whether line, trimmed of surrounding whitespace, is exactly
// the open-marker token.
func (s *Scanner) IsOpen(line string) bool {
	return strings.TrimSpace(line) == s.open
}

// IsClose reports whether line, trimmed of surrounding whitespace, is exactly
// the close-marker token.
func (s *Scanner) IsClose(line string) bool {
	return strings.TrimSpace(line) == s.close
}

// UsesMarkers reports whether the file opts into marker filtering: at least
// one open marker and at least one close marker must both occur, in any order
// or count.
func (s *Scanner) UsesMarkers(lines []string) bool {
	var hasOpen, hasClose bool
	for _, line := range lines {
		switch {
		case s.IsOpen(line):
			hasOpen = true
		case s.IsClose(line):
			hasClose = true
		}
		if hasOpen && hasClose {
			return true
		}
	}
	return false
}

// Regions returns the visible regions in order of appearance. Nested opens are
// tolerated: a region starts when depth goes 0->1 and ends when it returns to
// 0. An open with no matching close yields a region running to end of input.
func (s *Scanner) Regions(lines []string) []Region {
	var regions []Region
	depth := 0
	start := 0
	for i, line := range lines {
		switch {
		case s.IsOpen(line):
			if depth == 0 {
				start = i + 1
			}
			depth++
		case s.IsClose(line):
			if depth > 0 {
				depth--
				if depth == 0 {
					regions = append(regions, Region{Start: start, End: i})
				}
			}
		}
	}
	if depth > 0 {
		regions = append(regions, Region{Start: start, End: len(lines)})
	}
	return regions
}

// InstructionLine returns the index of the first line containing the
// instruction-marker substring. The marker may appear anywhere on the line,
// including inline after code. ok is false when no line contains it.
func (s *Scanner) InstructionLine(lines []string) (int, bool) {
	for i, line := range lines {
		if strings.Contains(line, s.instruction) {
			return i, true
		}
	}
	return 0, false
}

// SplitLines splits content on newlines without producing a phantom empty
// line for a trailing newline.
func SplitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" && strings.HasSuffix(content, "\n") {
		lines = lines[:n-1]
	}
	return lines
}
