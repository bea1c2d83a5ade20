package prompt

import (
	"os/exec"
	"strings"
)

// clipboard helper commands, tried in order.
var clipboardCommands = [][]string{
	{"pbcopy"},
	{"wl-copy"},
	{"xclip", "-selection", "clipboard"},
}

// CopyToClipboard writes text to the system clipboard using the first
// available helper. It returns false when no helper is installed or the copy
// fails; clipboard delivery is best-effort and never aborts the pipeline.
func CopyToClipboard(text string) bool {
	for _, argv := range clipboardCommands {
		if _, err := exec.LookPath(argv[0]); err != nil {
			continue
		}
		cmd := exec.Command(argv[0], argv[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return true
		}
	}
	return false
}
