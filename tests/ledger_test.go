package tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/stratkit/pkg/engine"
	"github.com/user/stratkit/pkg/secscan"
)

// End-to-end: scan a small source tree, verify the ledger contents, save a
// baseline, rescan after a "fix", and check the diff.
func TestScanLedgerIntegration(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "app.py")
	require.NoError(t, os.WriteFile(src, []byte(
		"import requests\n"+
			"password = \"hunter2secret\"\n"+
			"requests.get(\"http://internal.example.com/api\")\n"), 0o644))

	scanner := secscan.NewScanner(engine.NewFindingLedger())
	require.NoError(t, scanner.Scan(dir))
	require.NotEmpty(t, scanner.Ledger.Findings)
	assert.Equal(t, 9, scanner.Ledger.MaxSeverity(), "hardcoded password is the worst finding")

	baselineFile := filepath.Join(t.TempDir(), "baseline.json")
	require.NoError(t, scanner.Ledger.SaveSnapshot(baselineFile))

	// Fix the hardcoded password, keep the http URL on the same line.
	require.NoError(t, os.WriteFile(src, []byte(
		"import requests\n"+
			"password = os.environ[\"APP_PASSWORD\"]\n"+
			"requests.get(\"http://internal.example.com/api\")\n"), 0o644))

	rescan := secscan.NewScanner(engine.NewFindingLedger())
	require.NoError(t, rescan.Scan(dir))

	baseline := engine.NewFindingLedger()
	require.NoError(t, baseline.LoadSnapshot(baselineFile))

	diff := rescan.Ledger.CompareSnapshot(baseline)

	var fixed []string
	for _, f := range diff.Fixed {
		fixed = append(fixed, f.Evidence)
	}
	assert.Contains(t, fixed, "Hardcoded password")
	assert.NotEmpty(t, diff.Unchanged, "the http URL finding should be unchanged")
}
