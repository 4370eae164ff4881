package secscan

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/user/stratkit/pkg/engine"
	"github.com/user/stratkit/pkg/report"
)

// scannable extensions; everything else is skipped as likely binary or
// irrelevant.
var scanExts = map[string]bool{
	".go": true, ".py": true, ".js": true, ".ts": true, ".java": true,
	".rb": true, ".php": true, ".sh": true, ".yaml": true, ".yml": true,
	".json": true, ".env": true, ".tf": true, ".cfg": true, ".ini": true,
	".properties": true, ".xml": true, ".txt": true,
}

// Scanner matches the pattern catalog against source trees.
type Scanner struct {
	Ledger *engine.FindingLedger
}

// NewScanner creates a scanner writing into the given ledger.
func NewScanner(ledger *engine.FindingLedger) *Scanner {
	return &Scanner{Ledger: ledger}
}

// Scan walks root and records findings for every pattern match.
func (s *Scanner) Scan(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return report.IOError(err)
	}

	if !info.IsDir() {
		return s.scanFile(root)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			name := d.Name()
			if name == ".git" || name == "node_modules" || name == "vendor" {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !scanExts[ext] && !strings.HasPrefix(d.Name(), ".env") {
			return nil
		}
		return s.scanFile(path)
	})
}

func (s *Scanner) scanFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return report.IOError(err)
	}
	defer f.Close()

	var findings []engine.Finding
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		for _, p := range patterns {
			if p.Pattern.MatchString(line) {
				fd := engine.NewFinding("secscan", "security",
					fmt.Sprintf("%s:%d", path, lineNo), p.Name, p.Severity)
				fd.Recommendation = p.Fix
				fd.Tags = []string{p.ID}
				fd.Confidence = "medium"
				findings = append(findings, fd)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return report.IOError(fmt.Errorf("reading %s: %w", path, err))
	}

	s.Ledger.AddFindings(findings)
	return nil
}

// CriticalCount returns how many recorded findings are critical.
func (s *Scanner) CriticalCount() int {
	return s.Ledger.CountBySeverity(CriticalSeverity)
}
