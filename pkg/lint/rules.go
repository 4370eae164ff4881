// Package lint walks a source tree and flags code smells with a fixed regex
// rule catalog, scoring each file 0-100.
package lint

import "regexp"

// Rule is one code-smell pattern. An empty Languages list applies the rule to
// every supported language.
type Rule struct {
	ID        string
	Name      string
	Pattern   *regexp.Regexp
	Severity  int // normalized 1-10
	Deduction int // points removed per occurrence
	Languages []string
}

// languageByExt maps file extensions to the language keys rules filter on.
var languageByExt = map[string]string{
	".go":   "go",
	".py":   "python",
	".js":   "javascript",
	".ts":   "typescript",
	".java": "java",
}

var rules = []Rule{
	{
		ID: "LINT001", Name: "TODO/FIXME left in code",
		Pattern:  regexp.MustCompile(`(?i)//\s*(todo|fixme|hack)\b|#\s*(todo|fixme|hack)\b`),
		Severity: 2, Deduction: 2,
	},
	{
		ID: "LINT002", Name: "Line longer than 120 characters",
		Pattern:  regexp.MustCompile(`^.{121,}$`),
		Severity: 2, Deduction: 1,
	},
	{
		ID: "LINT003", Name: "Debug print statement",
		Pattern:   regexp.MustCompile(`\b(console\.log|fmt\.Println|print)\s*\(`),
		Severity:  3, Deduction: 3,
		Languages: []string{"go", "python", "javascript", "typescript"},
	},
	{
		ID: "LINT004", Name: "Swallowed error",
		Pattern:   regexp.MustCompile(`except\s*(Exception)?\s*:\s*pass|catch\s*\([^)]*\)\s*\{\s*\}`),
		Severity:  7, Deduction: 10,
		Languages: []string{"python", "javascript", "typescript", "java"},
	},
	{
		ID: "LINT005", Name: "Ignored error return",
		Pattern:   regexp.MustCompile(`,\s*_\s*=\s*\w+.*\(`),
		Severity:  5, Deduction: 5,
		Languages: []string{"go"},
	},
	{
		ID: "LINT006", Name: "Deep nesting",
		Pattern:  regexp.MustCompile(`^(\t{5,}|[ ]{20,})\S`),
		Severity: 4, Deduction: 4,
	},
	{
		ID: "LINT007", Name: "Trailing whitespace",
		Pattern:  regexp.MustCompile(`\S[ \t]+$`),
		Severity: 1, Deduction: 1,
	},
	{
		ID: "LINT008", Name: "Commented-out code block",
		Pattern:  regexp.MustCompile(`^\s*(//|#)\s*(if|for|while|func|def|return)\b`),
		Severity: 3, Deduction: 2,
	},
	{
		// Two or more digits next to an operator or return/case; 0 and 1
		// and other single-digit literals are exempt.
		ID: "LINT009", Name: "Magic number",
		Pattern:   regexp.MustCompile(`(?:[=<>!+\-*/%]=?\s*|\breturn\s+|\bcase\s+)\d{2,}(?:\.\d+)?\b`),
		Severity:  3, Deduction: 2,
		Languages: []string{"go", "python", "javascript", "typescript", "java"},
	},
}

func ruleApplies(r Rule, lang string) bool {
	if len(r.Languages) == 0 {
		return true
	}
	for _, l := range r.Languages {
		if l == lang {
			return true
		}
	}
	return false
}
