package engine

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// FindingLedger holds the normalized findings collected during a run.
// Findings are deduplicated on (tool, category, subject, evidence) so the
// same issue reported twice only appears once.
type FindingLedger struct {
	Findings []Finding
	mu       sync.RWMutex
}

// NewFindingLedger creates an empty ledger.
func NewFindingLedger() *FindingLedger {
	return &FindingLedger{
		Findings: make([]Finding, 0),
	}
}

// AddFindings ingests findings, clamping severity and deduplicating.
func (l *FindingLedger) AddFindings(newFindings []Finding) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, f := range newFindings {
		if f.Severity < 1 {
			f.Severity = 1
		}
		if f.Severity > 10 {
			f.Severity = 10
		}

		exists := false
		for i, existing := range l.Findings {
			if existing.Subject == f.Subject && existing.Category == f.Category &&
				existing.SourceTool == f.SourceTool && existing.Evidence == f.Evidence {
				l.Findings[i] = f // Overwrite with latest
				exists = true
				break
			}
		}
		if !exists {
			l.Findings = append(l.Findings, f)
		}
	}
}

// MaxSeverity returns the highest severity present, or 0 for an empty ledger.
func (l *FindingLedger) MaxSeverity() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	max := 0
	for _, f := range l.Findings {
		if f.Severity > max {
			max = f.Severity
		}
	}
	return max
}

// CountBySeverity returns how many findings have severity >= threshold.
func (l *FindingLedger) CountBySeverity(threshold int) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := 0
	for _, f := range l.Findings {
		if f.Severity >= threshold {
			n++
		}
	}
	return n
}

// GetReport returns a text summary of the ledger, highest severity first.
func (l *FindingLedger) GetReport() string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	sorted := make([]Finding, len(l.Findings))
	copy(sorted, l.Findings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity > sorted[j].Severity
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Finding Ledger (%d findings):\n", len(sorted)))
	sb.WriteString("--------------------------------------------------\n")
	for _, f := range sorted {
		sb.WriteString(fmt.Sprintf("[%d/10] %s (%s)\n", f.Severity, f.Category, f.SourceTool))
		sb.WriteString(fmt.Sprintf("  Subject: %s\n", f.Subject))
		sb.WriteString(fmt.Sprintf("  Evidence: %s\n", f.Evidence))
		if f.Recommendation != "" {
			sb.WriteString(fmt.Sprintf("  Fix: %s\n", f.Recommendation))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
