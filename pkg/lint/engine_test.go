package lint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunFlagsSmells(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.py", "def handler():\n    # TODO fix this\n    try:\n        work()\n    except Exception: pass\n")

	res, err := Run(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, res.FilesScanned)

	ids := map[string]bool{}
	for _, is := range res.Issues {
		ids[is.RuleID] = true
	}
	assert.True(t, ids["LINT001"], "TODO comment")
	assert.True(t, ids["LINT004"], "except: pass")
}

func TestRunCleanFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "clean.go", "package clean\n\nfunc Add(a, b int) int {\n\treturn a + b\n}\n")

	res, err := Run(dir)
	require.NoError(t, err)
	assert.Empty(t, res.Issues)
	assert.Equal(t, 100, res.OverallScore)
	assert.Equal(t, "A+", res.OverallGrade)
}

func TestRunSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.js", "function f() {\n  console.log('debug');\n}\n")

	res, err := Run(path)
	require.NoError(t, err)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "LINT003", res.Issues[0].RuleID)
	assert.Equal(t, 2, res.Issues[0].Line)
}

func TestRunFlagsMagicNumbers(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "limits.go",
		"package limits\n\nfunc Allowed(n int) bool {\n\treturn n < 4096\n}\n")

	res, err := Run(dir)
	require.NoError(t, err)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "LINT009", res.Issues[0].RuleID)
	assert.Equal(t, 4, res.Issues[0].Line)

	// Zero and one are not magic.
	dir2 := t.TempDir()
	writeFile(t, dir2, "ok.go", "package ok\n\nfunc Positive(n int) bool {\n\treturn n > 0\n}\n")
	res, err = Run(dir2)
	require.NoError(t, err)
	assert.Empty(t, res.Issues)
}

func TestRunSkipsUnsupportedAndVendored(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "node_modules"), 0755))
	writeFile(t, dir, "README.md", "# TODO nothing\n")
	writeFile(t, filepath.Join(dir, "node_modules"), "dep.js", "console.log('x');\n")

	res, err := Run(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, res.FilesScanned)
	assert.Empty(t, res.Issues)
}

func TestRunMissingPath(t *testing.T) {
	_, err := Run(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestScoreDeduction(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "messy.py", "# TODO one\n# TODO two\ntry:\n    x()\nexcept Exception: pass\n")

	res, err := Run(dir)
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	// Two TODOs (2 each) plus a swallowed exception (10).
	assert.Equal(t, 86, res.Files[0].Score)
	assert.Equal(t, "B", res.Files[0].Grade)
}
