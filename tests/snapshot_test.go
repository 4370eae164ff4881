package tests

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/stratkit/pkg/engine"
)

func TestSnapshotOperations(t *testing.T) {
	baseline := engine.NewFindingLedger()
	baseline.AddFindings([]engine.Finding{
		{
			SourceTool: "sec-scan",
			Category:   "secrets",
			Subject:    "config.py:12",
			Evidence:   "hardcoded password",
			Severity:   8,
		},
		{
			SourceTool: "sec-scan",
			Category:   "crypto",
			Subject:    "auth.py:40",
			Evidence:   "weak hash algorithm",
			Severity:   6,
		},
	})

	tmpFile := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, baseline.SaveSnapshot(tmpFile))

	// Current scan: keeps the secret, fixes the weak hash, adds a TLS issue.
	current := engine.NewFindingLedger()
	current.AddFindings([]engine.Finding{
		{
			SourceTool: "sec-scan",
			Category:   "secrets",
			Subject:    "config.py:12",
			Evidence:   "hardcoded password",
			Severity:   8,
		},
		{
			SourceTool: "sec-scan",
			Category:   "transport",
			Subject:    "client.py:7",
			Evidence:   "TLS verification disabled",
			Severity:   9,
		},
	})

	loaded := engine.NewFindingLedger()
	require.NoError(t, loaded.LoadSnapshot(tmpFile))
	require.Len(t, loaded.Findings, 2)

	diff := current.CompareSnapshot(loaded)

	require.Len(t, diff.Unchanged, 1)
	assert.Equal(t, "config.py:12", diff.Unchanged[0].Subject)

	require.Len(t, diff.New, 1)
	assert.Equal(t, "client.py:7", diff.New[0].Subject)

	require.Len(t, diff.Fixed, 1)
	assert.Equal(t, "auth.py:40", diff.Fixed[0].Subject)
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	l := engine.NewFindingLedger()
	err := l.LoadSnapshot(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
