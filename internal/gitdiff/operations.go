package gitdiff

import (
	"fmt"
	"os/exec"
	"strings"
)

// Operations defines the git operations the prompt pipeline needs.
// This allows mocking git commands in tests.
type Operations interface {
	// CurrentBranch returns the current branch name.
	// For detached HEAD, returns "detached-{short-hash}".
	// Returns "unknown" if all git commands fail.
	CurrentBranch(projectPath string) string

	// BranchExists reports whether the named branch resolves to a commit.
	BranchExists(projectPath, branch string) bool

	// FindAncestorBranch finds the ancestor branch (main or master).
	// Returns empty string if no ancestor found.
	FindAncestorBranch(projectPath, currentBranch string) string

	// DiffAgainstBranch returns the unified diff of filePath between the
	// given branch and the working tree. An empty diff is a valid result.
	DiffAgainstBranch(projectPath, branch, filePath string) (string, error)
}

// gitOps is the real implementation using exec.Command.
type gitOps struct{}

// NewOperations returns the default git operations implementation.
func NewOperations() Operations {
	return &gitOps{}
}

func (g *gitOps) CurrentBranch(projectPath string) string {
	cmd := exec.Command("git", "branch", "--show-current")
	cmd.Dir = projectPath
	output, err := cmd.Output()
	if err != nil || len(strings.TrimSpace(string(output))) == 0 {
		// Might be detached HEAD
		cmd = exec.Command("git", "rev-parse", "--short", "HEAD")
		cmd.Dir = projectPath
		output, err = cmd.Output()
		if err != nil {
			return "unknown"
		}
		return "detached-" + strings.TrimSpace(string(output))
	}
	return strings.TrimSpace(string(output))
}

func (g *gitOps) BranchExists(projectPath, branch string) bool {
	cmd := exec.Command("git", "rev-parse", "--verify", "--quiet", branch)
	cmd.Dir = projectPath
	return cmd.Run() == nil
}

func (g *gitOps) FindAncestorBranch(projectPath, currentBranch string) string {
	// Try merge-base with main
	cmd := exec.Command("git", "merge-base", currentBranch, "main")
	cmd.Dir = projectPath
	if output, err := cmd.Output(); err == nil && len(output) > 0 {
		return "main"
	}

	// Try merge-base with master
	cmd = exec.Command("git", "merge-base", currentBranch, "master")
	cmd.Dir = projectPath
	if output, err := cmd.Output(); err == nil && len(output) > 0 {
		return "master"
	}

	return ""
}

func (g *gitOps) DiffAgainstBranch(projectPath, branch, filePath string) (string, error) {
	cmd := exec.Command("git", "diff", branch, "--", filePath)
	cmd.Dir = projectPath
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git diff against %s failed: %w", branch, err)
	}
	return string(output), nil
}
