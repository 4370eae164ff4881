package wrappers

import (
	"context"
	"fmt"

	"github.com/user/stratkit/pkg/engine"
	"github.com/user/stratkit/pkg/secscan"
)

// SecScanWrapper exposes the security pattern scanner as an agent tool.
// Findings accumulate in the shared ledger so the snapshot tools see them.
type SecScanWrapper struct {
	Ledger *engine.FindingLedger
}

func (s *SecScanWrapper) Name() string {
	return "SecurityScan"
}

func (s *SecScanWrapper) Description() string {
	return "Scans a source directory for security anti-patterns (hardcoded secrets, weak crypto, injection risks) and records findings."
}

func (s *SecScanWrapper) Schema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"path": map[string]interface{}{
				"type":        "string",
				"description": "File or directory to scan",
			},
		},
		"required": []string{"path"},
	}
}

func (s *SecScanWrapper) Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error) {
	if s.Ledger == nil {
		return "Error: finding ledger not initialized.", nil
	}
	path, _ := args["path"].(string)
	if path == "" {
		return "Error: 'path' argument is required.", nil
	}

	progress(fmt.Sprintf("Scanning %s", path))
	scanner := secscan.NewScanner(s.Ledger)
	if err := scanner.Scan(path); err != nil {
		return fmt.Sprintf("Error scanning %s: %v", path, err), nil
	}

	return fmt.Sprintf("Scan complete: %d findings recorded (%d critical).",
		len(s.Ledger.Findings), scanner.CriticalCount()), nil
}
