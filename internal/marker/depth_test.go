package marker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Marker-Depth Classifier:
// - Marker after a closed region is outside (depth 0)
// - Marker between open and close is inside (depth 1)
// - Excess close markers never drive depth negative (floor invariant)
// - Nested opens keep the marker inside until both regions close
// - Depth at every prefix of an arbitrary marker sequence stays >= 0

func TestInsideVisibleRegion_OutsideAfterClosedRegion(t *testing.T) {
	t.Parallel()

	s := NewScanner()

	lines := SplitLines("// v\nfunc f() {\n  x()\n}\n// ^\n// TODO: - y")
	idx, ok := s.InstructionLine(lines)
	require.True(t, ok)
	assert.Equal(t, 5, idx)
	assert.False(t, s.InsideVisibleRegion(lines, idx))
}

func TestInsideVisibleRegion_InsideOpenRegion(t *testing.T) {
	t.Parallel()

	s := NewScanner()

	lines := SplitLines("// v\n// TODO: - z\n// ^")
	idx, ok := s.InstructionLine(lines)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.True(t, s.InsideVisibleRegion(lines, idx))
}

func TestInsideVisibleRegion_ExcessClosesFloorAtZero(t *testing.T) {
	t.Parallel()

	s := NewScanner()

	lines := []string{"// ^", "// ^", "// v", "// TODO: - q"}
	assert.True(t, s.InsideVisibleRegion(lines, 3))

	lines = []string{"// ^", "// ^", "// TODO: - q"}
	assert.False(t, s.InsideVisibleRegion(lines, 2))
}

func TestInsideVisibleRegion_NestedOpens(t *testing.T) {
	t.Parallel()

	s := NewScanner()

	lines := []string{"// v", "// v", "// ^", "// TODO: - still inside outer"}
	assert.True(t, s.InsideVisibleRegion(lines, 3))
}

func TestInsideVisibleRegion_DepthNeverNegative(t *testing.T) {
	t.Parallel()

	s := NewScanner()

	// A pathological marker sequence: depth must stay >= 0 at every prefix,
	// which InsideVisibleRegion exposes as never reporting "inside" after an
	// all-closes prefix.
	lines := []string{"// ^", "// ^", "// ^", "code", "// ^"}
	for i := range lines {
		assert.False(t, s.InsideVisibleRegion(lines, i), "prefix ending at line %d", i)
	}
}
