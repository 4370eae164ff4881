package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityScoreMonotonicInVolume(t *testing.T) {
	volumes := []int{0, 50, 100, 500, 1000, 5000, 10000, 50000, 100000, 500000}
	prev := -1.0
	for _, v := range volumes {
		score := PriorityScore(v, 0.5, IntentInformational)
		assert.GreaterOrEqual(t, score, prev, "volume %d", v)
		prev = score
	}
}

func TestPriorityScoreMonotonicInCompetition(t *testing.T) {
	prev := 1000.0
	for _, comp := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
		score := PriorityScore(5000, comp, IntentTransactional)
		assert.LessOrEqual(t, score, prev, "competition %f", comp)
		prev = score
	}
}

func TestPriorityScoreIntentOrdering(t *testing.T) {
	tx := PriorityScore(1000, 0.5, IntentTransactional)
	co := PriorityScore(1000, 0.5, IntentCommercial)
	in := PriorityScore(1000, 0.5, IntentInformational)
	nav := PriorityScore(1000, 0.5, IntentNavigational)

	assert.Greater(t, tx, co)
	assert.Greater(t, co, in)
	assert.Greater(t, in, nav)
}

func TestPriorityScoreBounds(t *testing.T) {
	max := PriorityScore(1000000, 0, IntentTransactional)
	min := PriorityScore(0, 1, IntentNavigational)

	assert.InDelta(t, 100, max, 1e-9)
	assert.InDelta(t, 13, min, 1e-9) // 0.4*10 + 0 + 0.3*30
}

func TestClassifyIntent(t *testing.T) {
	cases := []struct {
		keyword string
		want    Intent
	}{
		{"how to make sourdough bread", IntentInformational},
		{"acme crm login", IntentNavigational},
		{"buy standing desk discount", IntentTransactional},
		{"best project management software review", IntentCommercial},
		{"notion vs asana", IntentCommercial},
		{"sourdough bread", IntentInformational}, // no hits defaults to informational
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyIntent(tc.keyword), tc.keyword)
	}
}

func TestClassifyIntentTieGoesToEarlierGroup(t *testing.T) {
	// One informational hit and one transactional hit: the earlier group wins.
	assert.Equal(t, IntentInformational, ClassifyIntent("how to buy a house"))
}
