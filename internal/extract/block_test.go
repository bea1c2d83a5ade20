package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomblah/auto-prompt-generator-sub000/internal/marker"
)

// Test Plan for Brace-Balance Block Extractor:
// - N opens and N closes terminate exactly on the N-th close
// - Nested braces keep the block open until the outermost close
// - Single-line blocks close on their own line
// - Closing braces before the first open never close the block
// - End-of-file without balance yields an unterminated best-effort block
// - Out-of-range start yields an empty block

func TestExtractBalancedBlock_TerminatesOnBalance(t *testing.T) {
	t.Parallel()

	lines := marker.SplitLines("func f() {\n  if x {\n    y()\n  }\n}\nfunc g() {\n}")
	block := ExtractBalancedBlock(lines, 0)

	require.True(t, block.Closed)
	assert.Equal(t, 0, block.Start)
	assert.Equal(t, 4, block.End)
	assert.Equal(t, "func f() {\n  if x {\n    y()\n  }\n}", block.Text)
}

func TestExtractBalancedBlock_SingleLine(t *testing.T) {
	t.Parallel()

	lines := []string{"var isEmpty: Bool { count == 0 }", "next()"}
	block := ExtractBalancedBlock(lines, 0)

	require.True(t, block.Closed)
	assert.Equal(t, 0, block.End)
	assert.Equal(t, lines[0], block.Text)
}

func TestExtractBalancedBlock_IgnoresClosesBeforeFirstOpen(t *testing.T) {
	t.Parallel()

	// The signature spans two lines; the stray close glyph in the comment on
	// the first line must not terminate anything before a brace has opened.
	lines := []string{
		"- (void)reset // clears state }",
		"{",
		"  [self clear];",
		"}",
	}
	block := ExtractBalancedBlock(lines, 0)

	require.True(t, block.Closed)
	assert.Equal(t, 3, block.End)
}

func TestExtractBalancedBlock_UnterminatedRunsToEOF(t *testing.T) {
	t.Parallel()

	lines := marker.SplitLines("func f() {\n  x()\n  if y {\n    z()")
	block := ExtractBalancedBlock(lines, 0)

	assert.False(t, block.Closed)
	assert.Equal(t, len(lines)-1, block.End)
	assert.Equal(t, "func f() {\n  x()\n  if y {\n    z()", block.Text)
}

func TestExtractBalancedBlock_StartOutOfRange(t *testing.T) {
	t.Parallel()

	block := ExtractBalancedBlock([]string{"a"}, 5)
	assert.Empty(t, block.Text)
	assert.False(t, block.Closed)
}

func TestByteOffsetOfLine(t *testing.T) {
	t.Parallel()

	lines := []string{"ab", "", "cdef"}
	assert.Equal(t, 0, ByteOffsetOfLine(lines, 0))
	assert.Equal(t, 3, ByteOffsetOfLine(lines, 1))
	assert.Equal(t, 4, ByteOffsetOfLine(lines, 2))
	assert.Equal(t, 9, ByteOffsetOfLine(lines, 10))
}
