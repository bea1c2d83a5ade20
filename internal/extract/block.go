package extract

import "strings"

// Block is the contiguous line range produced by brace counting. Either the
// brace balance returned to zero before end of input (Closed) or the range
// runs to the last line as a best-effort, unterminated block.
type Block struct {
	Start  int // first line index, inclusive
	End    int // last line index, inclusive
	Text   string
	Closed bool
}

// ExtractBalancedBlock grows a block forward from the line at start until
// the count of unmatched opening braces returns to zero. Before the first
// '{' appears on an accumulated line the balance only increases; once braces
// have opened, each line adjusts the balance by opens minus closes, floored
// at zero, and extraction stops after the line that restores balance to
// exactly zero. Counting is purely lexical (brace glyphs), not comment or
// string aware.
func ExtractBalancedBlock(lines []string, start int) Block {
	if start < 0 || start >= len(lines) {
		return Block{Start: start, End: start}
	}

	var picked []string
	balance := 0
	opened := false
	end := len(lines) - 1
	closed := false
	for i := start; i < len(lines); i++ {
		line := lines[i]
		picked = append(picked, line)
		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")
		if !opened {
			if opens == 0 {
				continue
			}
			opened = true
		}
		balance += opens - closes
		if balance <= 0 {
			balance = 0
			end = i
			closed = true
			break
		}
	}
	return Block{
		Start:  start,
		End:    end,
		Text:   strings.Join(picked, "\n"),
		Closed: closed,
	}
}
