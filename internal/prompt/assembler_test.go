package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for Assembler:
// - Sections appear in order with their basenames
// - Diff section appears only when the diff is non-empty
// - Instruction echo closes the prompt
// - Empty instruction omits the closing question

func TestAssemble_SectionsAndInstruction(t *testing.T) {
	t.Parallel()

	a := NewAssembler()

	out := a.Assemble("// TODO: - wire it up", []Section{
		{Path: "/p/model.swift", Content: "func f() {}\n"},
		{Path: "/p/view.swift", Content: "func g() {}\n"},
	}, "", "")

	first := strings.Index(out, "The contents of model.swift is as follows:")
	second := strings.Index(out, "The contents of view.swift is as follows:")
	assert.GreaterOrEqual(t, first, 0)
	assert.Greater(t, second, first)
	assert.Contains(t, out, `Can you do the "// TODO: - wire it up" in the above code?`)
}

func TestAssemble_DiffSection(t *testing.T) {
	t.Parallel()

	a := NewAssembler()

	out := a.Assemble("", nil, "diff --git a/x b/x\n+added\n", "main")
	assert.Contains(t, out, "The diff against branch main is as follows:")
	assert.Contains(t, out, "+added")

	out = a.Assemble("", nil, "   \n", "main")
	assert.NotContains(t, out, "diff against branch")
}

func TestAssemble_NoInstruction(t *testing.T) {
	t.Parallel()

	a := NewAssembler()

	out := a.Assemble("", []Section{{Path: "a.swift", Content: "x"}}, "", "")
	assert.NotContains(t, out, "Can you do the")
}
