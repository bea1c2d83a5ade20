package gitdiff

// MockOps is a mock implementation of Operations for testing.
type MockOps struct {
	Branch         string
	Ancestor       string
	ExistingBranch map[string]bool
	Diff           string
	DiffError      error
}

// NewMockOps creates a mock with sensible defaults.
func NewMockOps() *MockOps {
	return &MockOps{
		Branch:         "main",
		Ancestor:       "",
		ExistingBranch: map[string]bool{"main": true},
		Diff:           "",
		DiffError:      nil,
	}
}

func (m *MockOps) CurrentBranch(projectPath string) string {
	return m.Branch
}

func (m *MockOps) BranchExists(projectPath, branch string) bool {
	return m.ExistingBranch[branch]
}

func (m *MockOps) FindAncestorBranch(projectPath, currentBranch string) string {
	return m.Ancestor
}

func (m *MockOps) DiffAgainstBranch(projectPath, branch, filePath string) (string, error) {
	if m.DiffError != nil {
		return "", m.DiffError
	}
	return m.Diff, nil
}
