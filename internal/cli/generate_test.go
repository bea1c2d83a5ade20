package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomblah/auto-prompt-generator-sub000/internal/config"
	"github.com/tomblah/auto-prompt-generator-sub000/internal/engine"
)

// Test Plan for the generate pipeline:
// - The marked file's section carries the enclosing-context appendix
// - Marker-using files are filtered to their visible regions
// - Files defining referenced types join the batch
// - A project without the instruction marker errors out
// - watchedExtensions derives extensions from include patterns

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestGeneratePrompt_FullPipeline(t *testing.T) {
	t.Parallel()

	root := writeProject(t, map[string]string{
		"src/feature.swift": "func build() -> Widget {\n  // TODO: - return a real Widget\n  return Widget()\n}\n",
		"src/widget.swift":  "class Widget {\n  var id: Int = 0\n}\n",
		"src/marked.swift":  "setup code\n// v\nfunc visible() {}\n// ^\nhidden code\n",
		"src/noise.swift":   "func unrelated() {}\n",
	})

	result, err := generatePrompt(root, config.Default())
	require.NoError(t, err)

	assert.Equal(t, "feature.swift", filepath.Base(result.MarkedFile))
	assert.Equal(t, "// TODO: - return a real Widget", result.Instruction)
	assert.Equal(t, []string{"Widget"}, result.Types)

	// Marked file gets the enclosing context appendix.
	assert.Contains(t, result.Prompt, engine.ContextHeader[2:])
	assert.Contains(t, result.Prompt, "func build() -> Widget {")

	// Marker-using file is filtered down to its visible region.
	assert.Contains(t, result.Prompt, "func visible() {}")
	assert.NotContains(t, result.Prompt, "hidden code")

	// Type-defining file joins the batch; unrelated noise does not.
	assert.Contains(t, result.Prompt, "class Widget {")
	assert.NotContains(t, result.Prompt, "func unrelated()")

	// Closing instruction echo.
	assert.Contains(t, result.Prompt, "Can you do the")
}

func TestGeneratePrompt_NoInstructionMarker(t *testing.T) {
	t.Parallel()

	root := writeProject(t, map[string]string{
		"src/a.swift": "func a() {}\n",
	})

	_, err := generatePrompt(root, config.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "instruction marker")
}

func TestWatchedExtensions(t *testing.T) {
	t.Parallel()

	exts := watchedExtensions([]string{"**/*.swift", "**/*.ts", "**/*.swift", "**/*"})
	assert.Equal(t, []string{".swift", ".ts"}, exts)
}
