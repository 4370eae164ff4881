// Package slo computes error budgets and multiwindow burn-rate alerts for
// service level objectives.
package slo

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/user/stratkit/pkg/report"
)

// SLO is one service level objective with its observed counts.
type SLO struct {
	Name        string  `json:"name"`
	Target      float64 `json:"target"`      // e.g. 0.999
	WindowDays  int     `json:"window_days"` // budget window, usually 28 or 30
	GoodEvents  int64   `json:"good_events"`
	TotalEvents int64   `json:"total_events"`
	// ErrorRates holds observed error rates keyed by lookback label ("1h",
	// "5m", "6h", "30m", ...), used for burn-rate alerting. The short labels
	// confirm their paired long window.
	ErrorRates map[string]float64 `json:"error_rates,omitempty"`
}

// Document is the parsed input file.
type Document struct {
	SLOs []SLO `json:"slos"`
}

// BudgetStatus is the computed error-budget state of one SLO.
type BudgetStatus struct {
	Name            string  `json:"name"`
	Target          float64 `json:"target"`
	Availability    float64 `json:"availability"`
	BudgetTotal     float64 `json:"budget_total"`    // allowed error fraction
	BudgetConsumed  float64 `json:"budget_consumed"` // fraction of budget, may exceed 1
	BudgetRemaining float64 `json:"budget_remaining"`
	Alerts          []Alert `json:"alerts"`
	Healthy         bool    `json:"healthy"`
}

// Alert is one fired burn-rate alert.
type Alert struct {
	Window    string  `json:"window"`
	BurnRate  float64 `json:"burn_rate"`
	Threshold float64 `json:"threshold"`
	Severity  string  `json:"severity"` // page / ticket
}

// burnWindow is one row of the standard multiwindow burn-rate table. Short is
// the paired confirmation window: when its rate is reported, the burn must
// still be above the threshold there too, so a spike that has already
// subsided does not fire.
type burnWindow struct {
	Label     string
	Short     string
	Threshold float64
	Severity  string
}

// The conventional multiwindow thresholds: fast burn pages, slow burn tickets.
var burnWindows = []burnWindow{
	{Label: "1h", Short: "5m", Threshold: 14.4, Severity: "page"},
	{Label: "6h", Short: "30m", Threshold: 6, Severity: "page"},
	{Label: "24h", Threshold: 3, Severity: "ticket"},
	{Label: "72h", Threshold: 1, Severity: "ticket"},
}

// Load parses an SLO document from JSON.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, report.IOError(err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, report.ValidationErrorf("parsing SLO JSON: %v", err)
	}
	if len(doc.SLOs) == 0 {
		return nil, report.ValidationErrorf("document defines no SLOs")
	}
	for _, s := range doc.SLOs {
		if s.Target <= 0 || s.Target >= 1 {
			return nil, report.ValidationErrorf("SLO %q target %v must be in (0,1)", s.Name, s.Target)
		}
		if s.TotalEvents <= 0 {
			return nil, report.ValidationErrorf("SLO %q has no recorded events", s.Name)
		}
		if s.GoodEvents < 0 || s.GoodEvents > s.TotalEvents {
			return nil, report.ValidationErrorf("SLO %q good events out of range", s.Name)
		}
	}
	return &doc, nil
}

// Analyze computes the budget status of every SLO.
func Analyze(doc *Document) []BudgetStatus {
	out := make([]BudgetStatus, 0, len(doc.SLOs))
	for _, s := range doc.SLOs {
		out = append(out, analyzeOne(s))
	}
	return out
}

func analyzeOne(s SLO) BudgetStatus {
	availability := float64(s.GoodEvents) / float64(s.TotalEvents)
	budget := 1 - s.Target
	errorRate := 1 - availability
	consumed := errorRate / budget

	st := BudgetStatus{
		Name:            s.Name,
		Target:          s.Target,
		Availability:    availability,
		BudgetTotal:     budget,
		BudgetConsumed:  consumed,
		BudgetRemaining: 1 - consumed,
	}

	for _, w := range burnWindows {
		rate, ok := s.ErrorRates[w.Label]
		if !ok {
			continue
		}
		burn := rate / budget
		if burn < w.Threshold {
			continue
		}
		if w.Short != "" {
			if shortRate, ok := s.ErrorRates[w.Short]; ok && shortRate/budget < w.Threshold {
				// The burn has already subsided in the short window.
				continue
			}
		}
		st.Alerts = append(st.Alerts, Alert{
			Window:    w.Label,
			BurnRate:  burn,
			Threshold: w.Threshold,
			Severity:  w.Severity,
		})
	}

	st.Healthy = consumed < 1 && !hasPage(st.Alerts)
	return st
}

func hasPage(alerts []Alert) bool {
	for _, a := range alerts {
		if a.Severity == "page" {
			return true
		}
	}
	return false
}

// TextReport renders the budget statuses.
func TextReport(statuses []BudgetStatus) string {
	var sb strings.Builder
	sb.WriteString("SLO Error Budget Report\n")
	sb.WriteString("--------------------------------------------------\n")
	for _, st := range statuses {
		state := "HEALTHY"
		if !st.Healthy {
			state = "AT RISK"
		}
		sb.WriteString(fmt.Sprintf("\n%s [%s]\n", st.Name, state))
		sb.WriteString(fmt.Sprintf("  Target: %.4f  Availability: %.4f\n", st.Target, st.Availability))
		sb.WriteString(fmt.Sprintf("  Budget consumed: %.1f%%  remaining: %.1f%%\n",
			st.BudgetConsumed*100, st.BudgetRemaining*100))
		for _, a := range st.Alerts {
			sb.WriteString(fmt.Sprintf("  [%s] %s burn rate %.1fx (threshold %.1fx)\n",
				strings.ToUpper(a.Severity), a.Window, a.BurnRate, a.Threshold))
		}
	}
	return sb.String()
}
