package compliance

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/user/stratkit/pkg/report"
)

// MaxMaturity is the top of the 0-5 maturity scale.
const MaxMaturity = 5

// Assessment is the parsed input document: observed maturity per control.
type Assessment struct {
	Standard       string         `json:"standard"`
	Maturity       map[string]int `json:"maturity"` // control id -> 0-5
	TargetOverride int            `json:"target_maturity,omitempty"`
}

// Gap is one control below the target maturity.
type Gap struct {
	Control     Control `json:"control"`
	Maturity    int     `json:"maturity"`
	Target      int     `json:"target"`
	Remediation string  `json:"remediation"`
}

// DomainScore is the weighted maturity of one control domain.
type DomainScore struct {
	Domain   string  `json:"domain"`
	Controls int     `json:"controls"`
	Score    float64 `json:"score"` // percent of max weighted maturity
}

// Result is a completed assessment.
type Result struct {
	Standard     string        `json:"standard"`
	Target       int           `json:"target_maturity"`
	OverallScore float64       `json:"overall_score"` // percent
	Domains      []DomainScore `json:"domains"`
	Gaps         []Gap         `json:"gaps"`
	Unassessed   []string      `json:"unassessed,omitempty"`
}

// LoadAssessment parses an assessment document from JSON.
func LoadAssessment(path string) (*Assessment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, report.IOError(err)
	}

	var a Assessment
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, report.ValidationErrorf("parsing assessment JSON: %v", err)
	}
	if len(a.Maturity) == 0 {
		return nil, report.ValidationErrorf("assessment contains no control maturity entries")
	}
	for id, m := range a.Maturity {
		if m < 0 || m > MaxMaturity {
			return nil, report.ValidationErrorf("control %s maturity %d outside 0-%d", id, m, MaxMaturity)
		}
	}
	return &a, nil
}

// Assess scores an assessment against a profile. Controls missing from the
// assessment count as maturity 0 and are listed as unassessed.
func Assess(p Profile, a *Assessment, targetMaturity int) *Result {
	if a.TargetOverride > 0 {
		targetMaturity = a.TargetOverride
	}
	if targetMaturity <= 0 || targetMaturity > MaxMaturity {
		targetMaturity = 3
	}

	res := &Result{Standard: p.Standard, Target: targetMaturity}

	type bucket struct {
		weighted float64
		max      float64
		controls int
	}
	domains := map[string]*bucket{}

	totalWeighted, totalMax := 0.0, 0.0
	for _, c := range p.Controls {
		m, assessed := a.Maturity[c.ID]
		if !assessed {
			res.Unassessed = append(res.Unassessed, c.ID)
		}

		w := float64(c.Weight)
		totalWeighted += w * float64(m)
		totalMax += w * MaxMaturity

		b := domains[c.Domain]
		if b == nil {
			b = &bucket{}
			domains[c.Domain] = b
		}
		b.weighted += w * float64(m)
		b.max += w * MaxMaturity
		b.controls++

		if m < targetMaturity {
			res.Gaps = append(res.Gaps, Gap{
				Control:     c,
				Maturity:    m,
				Target:      targetMaturity,
				Remediation: c.Remediation,
			})
		}
	}

	if totalMax > 0 {
		res.OverallScore = totalWeighted / totalMax * 100
	}
	for domain, b := range domains {
		score := 0.0
		if b.max > 0 {
			score = b.weighted / b.max * 100
		}
		res.Domains = append(res.Domains, DomainScore{
			Domain: domain, Controls: b.controls, Score: score,
		})
	}
	sort.Slice(res.Domains, func(i, j int) bool { return res.Domains[i].Domain < res.Domains[j].Domain })

	// Widest weighted gaps first, so the report leads with what matters.
	sort.SliceStable(res.Gaps, func(i, j int) bool {
		gi := (res.Gaps[i].Target - res.Gaps[i].Maturity) * res.Gaps[i].Control.Weight
		gj := (res.Gaps[j].Target - res.Gaps[j].Maturity) * res.Gaps[j].Control.Weight
		return gi > gj
	})
	sort.Strings(res.Unassessed)
	return res
}

// TextReport renders the assessment result.
func (r *Result) TextReport() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Compliance Assessment: %s\n", r.Standard))
	sb.WriteString("--------------------------------------------------\n")
	sb.WriteString(fmt.Sprintf("Overall maturity: %.1f%% (target level %d/%d)\n\n", r.OverallScore, r.Target, MaxMaturity))

	sb.WriteString("Domains:\n")
	for _, d := range r.Domains {
		sb.WriteString(fmt.Sprintf("  %-18s %5.1f%%  (%d controls)\n", d.Domain, d.Score, d.Controls))
	}

	sb.WriteString(fmt.Sprintf("\nGaps (%d):\n", len(r.Gaps)))
	for _, g := range r.Gaps {
		sb.WriteString(fmt.Sprintf("  [%s] %s: level %d of %d\n", g.Control.ID, g.Control.Name, g.Maturity, g.Target))
		if g.Remediation != "" {
			sb.WriteString(fmt.Sprintf("      Fix: %s\n", g.Remediation))
		}
	}

	if len(r.Unassessed) > 0 {
		sb.WriteString(fmt.Sprintf("\nUnassessed controls (counted as level 0): %s\n", strings.Join(r.Unassessed, ", ")))
	}
	return sb.String()
}
