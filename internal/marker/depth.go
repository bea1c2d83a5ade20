package marker

// InsideVisibleRegion reports whether the line at idx falls inside an open
// visible region. It walks from the first line up to and including idx,
// incrementing a depth counter on open-marker lines and decrementing it,
// floored at zero, on close-marker lines. The floor treats a stray close
// marker with no matching open as a no-op rather than driving depth negative.
//
// Callers use this as a policy gate: when the instruction marker already sits
// inside a visible region, the region itself is sufficient context and no
// enclosing-block extraction is attempted.
func (s *Scanner) InsideVisibleRegion(lines []string, idx int) bool {
	depth := 0
	for i := 0; i <= idx && i < len(lines); i++ {
		switch {
		case s.IsOpen(lines[i]):
			depth++
		case s.IsClose(lines[i]):
			if depth > 0 {
				depth--
			}
		}
	}
	return depth > 0
}
