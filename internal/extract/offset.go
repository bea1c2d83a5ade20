package extract

// ByteOffsetOfLine converts a line index into the byte offset of that line's
// first character, assuming one-byte newlines. This is the single handoff
// point between line-oriented marker scanning and byte-oriented structural
// parsing.
func ByteOffsetOfLine(lines []string, idx int) int {
	offset := 0
	for i := 0; i < idx && i < len(lines); i++ {
		offset += len(lines[i]) + 1
	}
	return offset
}
