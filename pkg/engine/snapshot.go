package engine

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// SnapshotDiff is the result of comparing a current ledger against a baseline.
type SnapshotDiff struct {
	New       []Finding
	Fixed     []Finding
	Unchanged []Finding
}

// snapshotKey identifies a finding across runs. IDs are regenerated every run,
// so the comparison uses the stable fields instead.
func snapshotKey(f Finding) string {
	return f.SourceTool + "|" + f.Category + "|" + f.Subject + "|" + f.Evidence
}

// SaveSnapshot writes the ledger to a JSON snapshot file. The write goes
// through a temp file and rename so a crashed run never leaves a truncated
// baseline behind.
func (l *FindingLedger) SaveSnapshot(path string) error {
	l.mu.RLock()
	data, err := json.MarshalIndent(l.Findings, "", "  ")
	l.mu.RUnlock()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// LoadSnapshot replaces the ledger contents with the findings from a snapshot file.
func (l *FindingLedger) LoadSnapshot(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var findings []Finding
	if err := json.Unmarshal(data, &findings); err != nil {
		return err
	}

	l.mu.Lock()
	l.Findings = findings
	l.mu.Unlock()
	return nil
}

// CompareSnapshot diffs the current ledger against a baseline ledger.
func (l *FindingLedger) CompareSnapshot(baseline *FindingLedger) SnapshotDiff {
	l.mu.RLock()
	defer l.mu.RUnlock()
	baseline.mu.RLock()
	defer baseline.mu.RUnlock()

	baseKeys := make(map[string]bool, len(baseline.Findings))
	for _, f := range baseline.Findings {
		baseKeys[snapshotKey(f)] = true
	}
	currKeys := make(map[string]bool, len(l.Findings))
	for _, f := range l.Findings {
		currKeys[snapshotKey(f)] = true
	}

	var diff SnapshotDiff
	for _, f := range l.Findings {
		if baseKeys[snapshotKey(f)] {
			diff.Unchanged = append(diff.Unchanged, f)
		} else {
			diff.New = append(diff.New, f)
		}
	}
	for _, f := range baseline.Findings {
		if !currKeys[snapshotKey(f)] {
			diff.Fixed = append(diff.Fixed, f)
		}
	}
	return diff
}
