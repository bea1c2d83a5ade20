package extract

import "strings"

// FindCandidate scans the window of lines strictly before the given index for
// a plausible block opener and returns the one nearest the marker: every
// match overwrites the previous one, so the largest qualifying line index
// wins. A split message-passing declaration also qualifies when a signature
// line is immediately followed, within the window, by a line that is exactly
// "{". ok is false when the scanned prefix holds no candidate, a normal
// outcome for marker-only files with no code structure.
func FindCandidate(lines []string, before int) (Candidate, bool) {
	if before > len(lines) {
		before = len(lines)
	}

	var cand Candidate
	found := false
	for i := 0; i < before; i++ {
		if kind, ok := MatchCandidate(lines[i]); ok {
			cand = Candidate{Line: i, Kind: kind}
			found = true
			continue
		}
		if MatchesSplitSignature(lines[i]) && i+1 < before && strings.TrimSpace(lines[i+1]) == "{" {
			cand = Candidate{Line: i, Kind: KindMethod}
			found = true
		}
	}
	return cand, found
}
