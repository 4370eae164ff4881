package wrappers

import (
	"context"
	"fmt"
	"strings"

	"github.com/user/stratkit/pkg/engine"
)

const DefaultSnapshotPath = ".stratkit-snapshot.json"

// SaveSnapshotWrapper saves the current ledger as a baseline for later diffs.
type SaveSnapshotWrapper struct {
	Ledger *engine.FindingLedger
}

func (s *SaveSnapshotWrapper) Name() string {
	return "SaveSnapshot"
}

func (s *SaveSnapshotWrapper) Description() string {
	return "Saves the current findings to a snapshot file for future comparison."
}

func (s *SaveSnapshotWrapper) Schema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"filename": map[string]interface{}{
				"type":        "string",
				"description": "Optional filename for the snapshot (default: " + DefaultSnapshotPath + ")",
			},
		},
	}
}

func (s *SaveSnapshotWrapper) Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error) {
	if s.Ledger == nil {
		return "Error: finding ledger not initialized.", nil
	}

	filename := DefaultSnapshotPath
	if val, ok := args["filename"].(string); ok && val != "" {
		filename = val
	}

	if err := s.Ledger.SaveSnapshot(filename); err != nil {
		return fmt.Sprintf("Error saving snapshot: %v", err), nil
	}

	return fmt.Sprintf("Successfully saved %d findings to snapshot '%s'.", len(s.Ledger.Findings), filename), nil
}

// DiffSnapshotWrapper compares the current ledger against a saved baseline.
type DiffSnapshotWrapper struct {
	Ledger *engine.FindingLedger
}

func (d *DiffSnapshotWrapper) Name() string {
	return "CompareWithBaseline"
}

func (d *DiffSnapshotWrapper) Description() string {
	return "Compares the current findings against a previously saved snapshot to identify new, fixed, and unchanged issues."
}

func (d *DiffSnapshotWrapper) Schema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"filename": map[string]interface{}{
				"type":        "string",
				"description": "Optional filename of the baseline snapshot (default: " + DefaultSnapshotPath + ")",
			},
		},
	}
}

func (d *DiffSnapshotWrapper) Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error) {
	if d.Ledger == nil {
		return "Error: finding ledger not initialized.", nil
	}

	filename := DefaultSnapshotPath
	if val, ok := args["filename"].(string); ok && val != "" {
		filename = val
	}

	baseline := engine.NewFindingLedger()
	if err := baseline.LoadSnapshot(filename); err != nil {
		return fmt.Sprintf("Error loading baseline snapshot '%s': %v. Have you saved a snapshot before?", filename, err), nil
	}

	diff := d.Ledger.CompareSnapshot(baseline)
	return FormatSnapshotDiff(filename, diff), nil
}

// FormatSnapshotDiff renders a diff the way the CLI and the agent both show it.
func FormatSnapshotDiff(filename string, diff engine.SnapshotDiff) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Snapshot Comparison (vs %s):\n", filename))
	sb.WriteString("--------------------------------------------------\n")

	sb.WriteString(fmt.Sprintf("NEW: %d\n", len(diff.New)))
	for _, f := range diff.New {
		sb.WriteString(fmt.Sprintf("  [+] [%d/10] %s (%s) - %s\n", f.Severity, f.Category, f.SourceTool, f.Evidence))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("FIXED: %d\n", len(diff.Fixed)))
	for _, f := range diff.Fixed {
		sb.WriteString(fmt.Sprintf("  [-] [%d/10] %s (%s) - %s\n", f.Severity, f.Category, f.SourceTool, f.Evidence))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("UNCHANGED: %d\n", len(diff.Unchanged)))
	if len(diff.Unchanged) > 0 {
		count := 0
		for _, f := range diff.Unchanged {
			sb.WriteString(fmt.Sprintf("  [=] [%d/10] %s (%s) - %s\n", f.Severity, f.Category, f.SourceTool, f.Evidence))
			count++
			if count >= 10 {
				sb.WriteString(fmt.Sprintf("  ... and %d more.\n", len(diff.Unchanged)-10))
				break
			}
		}
	}

	return sb.String()
}
