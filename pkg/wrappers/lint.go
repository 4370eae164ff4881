package wrappers

import (
	"context"
	"fmt"

	"github.com/user/stratkit/pkg/engine"
	"github.com/user/stratkit/pkg/lint"
)

// LintWrapper exposes the code-quality linter as an agent tool. Issues are
// recorded in the shared ledger alongside the security findings.
type LintWrapper struct {
	Ledger *engine.FindingLedger
}

func (l *LintWrapper) Name() string {
	return "CodeQualityScan"
}

func (l *LintWrapper) Description() string {
	return "Lints a source directory for code smells (TODOs, debug prints, swallowed errors, magic numbers) and records the issues."
}

func (l *LintWrapper) Schema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"path": map[string]interface{}{
				"type":        "string",
				"description": "File or directory to lint",
			},
		},
		"required": []string{"path"},
	}
}

func (l *LintWrapper) Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error) {
	if l.Ledger == nil {
		return "Error: finding ledger not initialized.", nil
	}
	path, _ := args["path"].(string)
	if path == "" {
		return "Error: 'path' argument is required.", nil
	}

	progress(fmt.Sprintf("Linting %s", path))
	res, err := lint.Run(path)
	if err != nil {
		return fmt.Sprintf("Error linting %s: %v", path, err), nil
	}
	l.Ledger.AddFindings(res.Findings())

	return fmt.Sprintf("Lint complete: %d files, score %d/100 (%s), %d issues recorded (highest severity %d/10).",
		res.FilesScanned, res.OverallScore, res.OverallGrade, len(res.Issues), l.Ledger.MaxSeverity()), nil
}
