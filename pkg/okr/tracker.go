// Package okr scores OKR (Objectives and Key Results) progress and keeps a
// local history of runs so trends can be reviewed.
package okr

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/user/stratkit/pkg/report"
)

// Metric kinds for key results.
const (
	MetricPercent = "percent"
	MetricNumber  = "number"
	MetricBoolean = "boolean"
)

// Status bands, Google-style 0.0-1.0 grading.
const (
	StatusOnTrack  = "on-track"
	StatusAtRisk   = "at-risk"
	StatusOffTrack = "off-track"
)

// KeyResult is one measurable outcome under an objective.
type KeyResult struct {
	Description string  `json:"description"`
	Metric      string  `json:"metric"` // percent / number / boolean
	Start       float64 `json:"start"`
	Target      float64 `json:"target"`
	Current     float64 `json:"current"`

	Progress float64 `json:"progress"` // computed, 0.0-1.0
	Status   string  `json:"status"`   // computed
}

// Objective groups key results.
type Objective struct {
	Name       string      `json:"name"`
	Owner      string      `json:"owner,omitempty"`
	KeyResults []KeyResult `json:"key_results"`

	Score  float64 `json:"score"`  // computed, mean of KR progress
	Status string  `json:"status"` // computed
}

// Plan is the parsed input document.
type Plan struct {
	Period     string      `json:"period"`
	Objectives []Objective `json:"objectives"`

	OverallScore float64 `json:"overall_score"` // computed
}

// Load parses an OKR plan from JSON.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, report.IOError(err)
	}

	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, report.ValidationErrorf("parsing OKR JSON: %v", err)
	}
	if len(p.Objectives) == 0 {
		return nil, report.ValidationErrorf("OKR plan defines no objectives")
	}
	for _, o := range p.Objectives {
		if len(o.KeyResults) == 0 {
			return nil, report.ValidationErrorf("objective %q has no key results", o.Name)
		}
	}
	return &p, nil
}

// progress normalizes a key result to [0,1].
func progress(kr KeyResult) float64 {
	switch kr.Metric {
	case MetricBoolean:
		if kr.Current != 0 {
			return 1
		}
		return 0
	default: // percent and number share the linear formula
		span := kr.Target - kr.Start
		if span == 0 {
			// Already-met target counts as done.
			if kr.Current >= kr.Target {
				return 1
			}
			return 0
		}
		p := (kr.Current - kr.Start) / span
		if p < 0 {
			return 0
		}
		if p > 1 {
			return 1
		}
		return p
	}
}

func statusFor(score float64) string {
	switch {
	case score >= 0.7:
		return StatusOnTrack
	case score >= 0.4:
		return StatusAtRisk
	default:
		return StatusOffTrack
	}
}

// Score computes progress, per-objective scores, and the overall score in
// place.
func Score(p *Plan) {
	total := 0.0
	for i := range p.Objectives {
		o := &p.Objectives[i]
		sum := 0.0
		for j := range o.KeyResults {
			kr := &o.KeyResults[j]
			kr.Progress = progress(*kr)
			kr.Status = statusFor(kr.Progress)
			sum += kr.Progress
		}
		o.Score = sum / float64(len(o.KeyResults))
		o.Status = statusFor(o.Score)
		total += o.Score
	}
	p.OverallScore = total / float64(len(p.Objectives))
}

// TextReport renders the scored plan.
func (p *Plan) TextReport() string {
	var sb strings.Builder
	if p.Period != "" {
		sb.WriteString(fmt.Sprintf("OKR Report: %s\n", p.Period))
	} else {
		sb.WriteString("OKR Report\n")
	}
	sb.WriteString("--------------------------------------------------\n")
	for _, o := range p.Objectives {
		sb.WriteString(fmt.Sprintf("Objective: %s [%.2f, %s]\n", o.Name, o.Score, o.Status))
		for _, kr := range o.KeyResults {
			sb.WriteString(fmt.Sprintf("  - %s: %.0f%% (%s)\n", kr.Description, kr.Progress*100, kr.Status))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("Overall score: %.2f (%s)\n", p.OverallScore, statusFor(p.OverallScore)))
	return sb.String()
}
