package okr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlan() *Plan {
	return &Plan{
		Period: "2026-Q3",
		Objectives: []Objective{
			{
				Name: "Grow self-serve revenue",
				KeyResults: []KeyResult{
					{Description: "MRR", Metric: MetricNumber, Start: 100, Target: 200, Current: 170},
					{Description: "Conversion rate", Metric: MetricPercent, Start: 2, Target: 4, Current: 2.5},
					{Description: "Launch pricing page", Metric: MetricBoolean, Current: 1},
				},
			},
		},
	}
}

func TestScoreKeyResults(t *testing.T) {
	p := samplePlan()
	Score(p)

	krs := p.Objectives[0].KeyResults
	assert.InDelta(t, 0.7, krs[0].Progress, 1e-9)
	assert.InDelta(t, 0.25, krs[1].Progress, 1e-9)
	assert.InDelta(t, 1.0, krs[2].Progress, 1e-9)

	assert.InDelta(t, (0.7+0.25+1.0)/3, p.Objectives[0].Score, 1e-9)
	assert.Equal(t, p.Objectives[0].Score, p.OverallScore)
}

func TestScoreClampsProgress(t *testing.T) {
	p := &Plan{Objectives: []Objective{{
		Name: "o",
		KeyResults: []KeyResult{
			{Description: "overshoot", Metric: MetricNumber, Start: 0, Target: 10, Current: 25},
			{Description: "regression", Metric: MetricNumber, Start: 10, Target: 20, Current: 5},
		},
	}}}
	Score(p)

	assert.Equal(t, 1.0, p.Objectives[0].KeyResults[0].Progress)
	assert.Equal(t, 0.0, p.Objectives[0].KeyResults[1].Progress)
}

func TestScoreZeroSpanTarget(t *testing.T) {
	p := &Plan{Objectives: []Objective{{
		Name: "o",
		KeyResults: []KeyResult{
			{Description: "held", Metric: MetricNumber, Start: 5, Target: 5, Current: 5},
			{Description: "missed", Metric: MetricNumber, Start: 5, Target: 5, Current: 3},
		},
	}}}
	Score(p)

	assert.Equal(t, 1.0, p.Objectives[0].KeyResults[0].Progress)
	assert.Equal(t, 0.0, p.Objectives[0].KeyResults[1].Progress)
}

func TestStatusBands(t *testing.T) {
	assert.Equal(t, StatusOnTrack, statusFor(0.7))
	assert.Equal(t, StatusAtRisk, statusFor(0.4))
	assert.Equal(t, StatusAtRisk, statusFor(0.69))
	assert.Equal(t, StatusOffTrack, statusFor(0.39))
}

func TestLoadValidation(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"objectives":[]}`), 0644))
	_, err := Load(empty)
	assert.Error(t, err)

	noKRs := filepath.Join(dir, "nokr.json")
	require.NoError(t, os.WriteFile(noKRs, []byte(`{"objectives":[{"name":"o","key_results":[]}]}`), 0644))
	_, err = Load(noKRs)
	assert.Error(t, err)
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := OpenStore(path)
	require.NoError(t, err)
	defer store.Close()

	p := samplePlan()
	Score(p)
	require.NoError(t, store.Record(p))
	require.NoError(t, store.Record(p))

	entries, err := store.History(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2026-Q3", entries[0].Period)
	assert.InDelta(t, p.OverallScore, entries[0].Score, 1e-9)
	assert.Greater(t, entries[0].ID, entries[1].ID, "newest first")
}
