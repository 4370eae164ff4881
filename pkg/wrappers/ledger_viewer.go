package wrappers

import (
	"context"

	"github.com/user/stratkit/pkg/engine"
)

// LedgerViewerWrapper lets the agent read back the current findings.
type LedgerViewerWrapper struct {
	Ledger *engine.FindingLedger
}

func (l *LedgerViewerWrapper) Name() string {
	return "ViewFindings"
}

func (l *LedgerViewerWrapper) Description() string {
	return "Shows all findings recorded so far in this session, highest severity first."
}

func (l *LedgerViewerWrapper) Schema() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (l *LedgerViewerWrapper) Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error) {
	if l.Ledger == nil {
		return "Error: finding ledger not initialized.", nil
	}
	if len(l.Ledger.Findings) == 0 {
		return "No findings recorded yet. Run a scan first.", nil
	}
	return l.Ledger.GetReport(), nil
}
