package wrappers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/stratkit/pkg/engine"
)

func TestLintWrapperRecordsFindings(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "messy.py"),
		[]byte("# TODO clean up\ntry:\n    work()\nexcept Exception: pass\n"), 0o644))

	ledger := engine.NewFindingLedger()
	w := &LintWrapper{Ledger: ledger}

	out, err := w.Execute(context.Background(), map[string]interface{}{"path": dir}, func(string) {})
	require.NoError(t, err)
	assert.Contains(t, out, "Lint complete")

	require.NotEmpty(t, ledger.Findings)
	for _, f := range ledger.Findings {
		assert.Equal(t, "lint", f.SourceTool)
		assert.Equal(t, "quality", f.Category)
	}
	// The swallowed exception is the worst issue in the fixture.
	assert.Equal(t, 7, ledger.MaxSeverity())
}

func TestLintWrapperMissingPath(t *testing.T) {
	w := &LintWrapper{Ledger: engine.NewFindingLedger()}
	out, err := w.Execute(context.Background(), map[string]interface{}{}, func(string) {})
	require.NoError(t, err)
	assert.Contains(t, out, "'path' argument is required")
}
