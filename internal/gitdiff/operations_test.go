package gitdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for git Operations:
// - Outside a repository every query degrades gracefully
// - The mock honors its configured scenario

func TestCurrentBranch_OutsideRepository(t *testing.T) {
	t.Parallel()

	ops := NewOperations()
	assert.Equal(t, "unknown", ops.CurrentBranch(t.TempDir()))
}

func TestBranchExists_OutsideRepository(t *testing.T) {
	t.Parallel()

	ops := NewOperations()
	assert.False(t, ops.BranchExists(t.TempDir(), "main"))
}

func TestMockOps(t *testing.T) {
	t.Parallel()

	m := NewMockOps()
	m.Diff = "diff --git a/x b/x\n"

	assert.Equal(t, "main", m.CurrentBranch("."))
	assert.True(t, m.BranchExists(".", "main"))
	assert.False(t, m.BranchExists(".", "feature"))

	diff, err := m.DiffAgainstBranch(".", "main", "x")
	assert.NoError(t, err)
	assert.Equal(t, "diff --git a/x b/x\n", diff)
}
