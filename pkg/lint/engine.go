package lint

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/user/stratkit/pkg/engine"
	"github.com/user/stratkit/pkg/report"
)

// Issue is one rule match at a location.
type Issue struct {
	RuleID   string `json:"rule_id"`
	Name     string `json:"name"`
	File     string `json:"file"`
	Line     int    `json:"line"`
	Severity int    `json:"severity"`
	Context  string `json:"context"`
}

// FileScore is the per-file quality score.
type FileScore struct {
	File   string `json:"file"`
	Score  int    `json:"score"`
	Grade  string `json:"grade"`
	Issues int    `json:"issues"`
}

// Result is a completed lint run over a tree.
type Result struct {
	Root         string      `json:"root"`
	FilesScanned int         `json:"files_scanned"`
	Issues       []Issue     `json:"issues"`
	Files        []FileScore `json:"files"`
	OverallScore int         `json:"overall_score"`
	OverallGrade string      `json:"overall_grade"`
}

// Run lints every supported source file under root.
func Run(root string) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, report.IOError(err)
	}

	res := &Result{Root: root}
	scores := map[string]int{}

	scan := func(path, lang string) error {
		issues, err := lintFile(path, lang)
		if err != nil {
			return err
		}
		res.FilesScanned++
		score := 100
		for _, is := range issues {
			score -= deductionFor(is.RuleID)
		}
		if score < 0 {
			score = 0
		}
		scores[path] = score
		res.Issues = append(res.Issues, issues...)
		return nil
	}

	if !info.IsDir() {
		lang, ok := languageByExt[strings.ToLower(filepath.Ext(root))]
		if !ok {
			return nil, report.ValidationErrorf("unsupported file type: %s", root)
		}
		if err := scan(root, lang); err != nil {
			return nil, err
		}
	} else {
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
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
			lang, ok := languageByExt[strings.ToLower(filepath.Ext(path))]
			if !ok {
				return nil
			}
			return scan(path, lang)
		})
		if err != nil {
			return nil, err
		}
	}

	total := 0
	for path, score := range scores {
		issues := 0
		for _, is := range res.Issues {
			if is.File == path {
				issues++
			}
		}
		res.Files = append(res.Files, FileScore{
			File: path, Score: score, Grade: grade(score), Issues: issues,
		})
		total += score
	}
	sort.Slice(res.Files, func(i, j int) bool { return res.Files[i].File < res.Files[j].File })

	if res.FilesScanned > 0 {
		res.OverallScore = total / res.FilesScanned
	} else {
		res.OverallScore = 100
	}
	res.OverallGrade = grade(res.OverallScore)
	return res, nil
}

func lintFile(path, lang string) ([]Issue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, report.IOError(err)
	}
	defer f.Close()

	var issues []Issue
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		for _, r := range rules {
			if !ruleApplies(r, lang) {
				continue
			}
			if r.Pattern.MatchString(line) {
				issues = append(issues, Issue{
					RuleID:   r.ID,
					Name:     r.Name,
					File:     path,
					Line:     lineNo,
					Severity: r.Severity,
					Context:  strings.TrimSpace(line),
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, report.IOError(fmt.Errorf("reading %s: %w", path, err))
	}
	return issues, nil
}

func deductionFor(ruleID string) int {
	for _, r := range rules {
		if r.ID == ruleID {
			return r.Deduction
		}
	}
	return 0
}

func grade(score int) string {
	switch {
	case score >= 97:
		return "A+"
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// Findings converts lint issues to normalized findings for the ledger.
func (r *Result) Findings() []engine.Finding {
	out := make([]engine.Finding, 0, len(r.Issues))
	for _, is := range r.Issues {
		f := engine.NewFinding("lint", "quality",
			fmt.Sprintf("%s:%d", is.File, is.Line), is.Name, is.Severity)
		f.Tags = []string{is.RuleID}
		out = append(out, f)
	}
	return out
}
