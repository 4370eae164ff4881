package slo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeHealthySLO(t *testing.T) {
	doc := &Document{SLOs: []SLO{{
		Name: "api-availability", Target: 0.999, WindowDays: 28,
		GoodEvents: 999_900, TotalEvents: 1_000_000,
	}}}

	statuses := Analyze(doc)
	require.Len(t, statuses, 1)
	st := statuses[0]

	assert.InDelta(t, 0.9999, st.Availability, 1e-9)
	assert.InDelta(t, 0.001, st.BudgetTotal, 1e-9)
	// 0.0001 error rate against a 0.001 budget: 10% consumed.
	assert.InDelta(t, 0.1, st.BudgetConsumed, 1e-9)
	assert.True(t, st.Healthy)
	assert.Empty(t, st.Alerts)
}

func TestAnalyzeExhaustedBudget(t *testing.T) {
	doc := &Document{SLOs: []SLO{{
		Name: "checkout", Target: 0.99,
		GoodEvents: 9_700, TotalEvents: 10_000,
	}}}

	st := Analyze(doc)[0]
	// 3% error rate against a 1% budget.
	assert.InDelta(t, 3.0, st.BudgetConsumed, 1e-9)
	assert.False(t, st.Healthy)
}

func TestAnalyzeBurnRateAlerts(t *testing.T) {
	doc := &Document{SLOs: []SLO{{
		Name: "api", Target: 0.999,
		GoodEvents: 999_000, TotalEvents: 1_000_000,
		ErrorRates: map[string]float64{
			"1h":  0.02,   // 20x burn -> page
			"6h":  0.004,  // 4x, below the 6x threshold -> nothing
			"24h": 0.0035, // 3.5x -> ticket
		},
	}}}

	st := Analyze(doc)[0]
	require.Len(t, st.Alerts, 2)

	bySeverity := map[string]string{}
	for _, a := range st.Alerts {
		bySeverity[a.Severity] = a.Window
	}
	assert.Equal(t, "1h", bySeverity["page"])
	assert.Equal(t, "24h", bySeverity["ticket"])
	assert.False(t, st.Healthy, "a page-severity alert marks the SLO unhealthy")
}

func TestBurnAlertNeedsShortWindowConfirmation(t *testing.T) {
	// A 1h spike that has already subsided: the 5m rate is quiet, so the
	// page must not fire.
	doc := &Document{SLOs: []SLO{{
		Name: "api", Target: 0.999,
		GoodEvents: 999_500, TotalEvents: 1_000_000,
		ErrorRates: map[string]float64{
			"1h": 0.02,   // 20x burn
			"5m": 0.0001, // 0.1x, recovered
		},
	}}}

	st := Analyze(doc)[0]
	assert.Empty(t, st.Alerts)
	assert.True(t, st.Healthy)

	// Same spike still burning in the short window fires as before.
	doc.SLOs[0].ErrorRates["5m"] = 0.03
	st = Analyze(doc)[0]
	require.Len(t, st.Alerts, 1)
	assert.Equal(t, "1h", st.Alerts[0].Window)
	assert.Equal(t, "page", st.Alerts[0].Severity)
}

func TestBurnAlertFiresWithoutShortWindowData(t *testing.T) {
	// No 30m rate reported: the 6h window alerts on its own.
	doc := &Document{SLOs: []SLO{{
		Name: "api", Target: 0.999,
		GoodEvents: 995_000, TotalEvents: 1_000_000,
		ErrorRates: map[string]float64{"6h": 0.008}, // 8x burn
	}}}

	st := Analyze(doc)[0]
	require.Len(t, st.Alerts, 1)
	assert.Equal(t, "6h", st.Alerts[0].Window)
}

func TestLoadValidation(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]string{
		"empty.json":   `{"slos":[]}`,
		"target.json":  `{"slos":[{"name":"x","target":1.5,"good_events":1,"total_events":1}]}`,
		"events.json":  `{"slos":[{"name":"x","target":0.99,"good_events":5,"total_events":0}]}`,
		"badgood.json": `{"slos":[{"name":"x","target":0.99,"good_events":11,"total_events":10}]}`,
	}
	for name, doc := range cases {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
		_, err := Load(path)
		assert.Error(t, err, name)
	}
}

func TestTextReport(t *testing.T) {
	doc := &Document{SLOs: []SLO{{
		Name: "api", Target: 0.999, GoodEvents: 999, TotalEvents: 1000,
	}}}
	out := TextReport(Analyze(doc))
	assert.Contains(t, out, "api")
	assert.Contains(t, out, "Budget consumed")
}
