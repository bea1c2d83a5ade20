package prompt

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Section is one file's contribution to the assembled prompt.
type Section struct {
	Path    string
	Content string
}

// Assembler renders the final prompt string. It owns only formatting; all
// content decisions (filtering, extraction) happen upstream.
type Assembler struct{}

// NewAssembler returns a prompt assembler.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Assemble joins the per-file sections, an optional diff section, and the
// closing instruction echo into one prompt.
func (a *Assembler) Assemble(instruction string, sections []Section, diff, diffBranch string) string {
	var b strings.Builder

	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "The contents of %s is as follows:\n\n", filepath.Base(s.Path))
		b.WriteString(strings.TrimRight(s.Content, "\n"))
		b.WriteString("\n")
	}

	if strings.TrimSpace(diff) != "" {
		fmt.Fprintf(&b, "\n--------\nThe diff against branch %s is as follows:\n\n", diffBranch)
		b.WriteString(strings.TrimRight(diff, "\n"))
		b.WriteString("\n")
	}

	if instruction != "" {
		b.WriteString("\n--------\n\n")
		fmt.Fprintf(&b, "Can you do the %q in the above code?\n", instruction)
		b.WriteString("It is located in the file marked with the instruction comment.\n")
	}

	return b.String()
}
