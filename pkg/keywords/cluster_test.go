package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildClustersScenario(t *testing.T) {
	kws := []Keyword{
		{Keyword: "python tutorial", Volume: 5000, Competition: 0.4},
		{Keyword: "learn python", Volume: 8000, Competition: 0.5},
		{Keyword: "java tutorial", Volume: 3000, Competition: 0.3},
	}

	clusters := BuildClusters(kws, DefaultClusterOptions())
	require.Len(t, clusters, 2)

	// "python tutorial" and "learn python" share the core term "python";
	// their Jaccard (1/3) meets the 0.3 threshold.
	var python, unclustered *Cluster
	for i := range clusters {
		if clusters[i].ID == UnclusteredID {
			unclustered = &clusters[i]
		} else {
			python = &clusters[i]
		}
	}
	require.NotNil(t, python)
	require.NotNil(t, unclustered)

	assert.Len(t, python.Members, 2)
	assert.Equal(t, "learn python", python.Pillar, "pillar is the highest-volume member")
	assert.Equal(t, 13000, python.TotalVolume)

	// "java tutorial" shares the term "tutorial" with the cluster only after
	// "python tutorial" joined; 1/4 < 0.3, so it dissolves into the catch-all.
	require.Len(t, unclustered.Members, 1)
	assert.Equal(t, "java tutorial", unclustered.Members[0].Keyword.Keyword)
	assert.Equal(t, "Unclustered", unclustered.Name)
}

func TestBuildClustersPartition(t *testing.T) {
	kws := []Keyword{
		{Keyword: "seo audit checklist", Volume: 900},
		{Keyword: "seo audit tool", Volume: 2500},
		{Keyword: "technical seo audit", Volume: 1100},
		{Keyword: "buy running shoes", Volume: 9000},
		{Keyword: "best running shoes", Volume: 14000},
		{Keyword: "ai", Volume: 50000}, // empty core set, routed to catch-all
		{Keyword: "quantum computing", Volume: 700},
	}

	clusters := BuildClusters(kws, DefaultClusterOptions())

	seen := map[string]int{}
	for _, c := range clusters {
		for _, m := range c.Members {
			seen[m.Keyword.Keyword]++
		}
	}
	for _, kw := range kws {
		assert.Equal(t, 1, seen[kw.Keyword], "keyword %q must be in exactly one cluster", kw.Keyword)
	}
}

func TestBuildClustersTotalVolume(t *testing.T) {
	kws := []Keyword{
		{Keyword: "crm software pricing", Volume: 4000},
		{Keyword: "crm software comparison", Volume: 2000},
		{Keyword: "crm software for startups", Volume: 1500},
	}

	clusters := BuildClusters(kws, DefaultClusterOptions())
	for _, c := range clusters {
		sum := 0
		for _, m := range c.Members {
			sum += m.Keyword.Volume
		}
		assert.Equal(t, sum, c.TotalVolume)
	}
}

func TestBuildClustersDissolutionIdempotent(t *testing.T) {
	kws := []Keyword{
		{Keyword: "python tutorial", Volume: 5000},
		{Keyword: "learn python", Volume: 8000},
		{Keyword: "java tutorial", Volume: 3000},
		{Keyword: "rust basics", Volume: 400},
		{Keyword: "ml", Volume: 100},
	}

	first := BuildClusters(kws, DefaultClusterOptions())
	second := BuildClusters(kws, DefaultClusterOptions())

	catchAll := func(cs []Cluster) []string {
		for _, c := range cs {
			if c.ID == UnclusteredID {
				var names []string
				for _, m := range c.Members {
					names = append(names, m.Keyword.Keyword)
				}
				return names
			}
		}
		return nil
	}
	assert.Equal(t, catchAll(first), catchAll(second))
}

func TestBuildClustersRunningUnionAbsorption(t *testing.T) {
	// "learn online course" is 0.25 similar to the seed terms {python,
	// course} but crosses the threshold once "python course online" has
	// grown the union, so absorption against the running union picks it up.
	kws := []Keyword{
		{Keyword: "python course", Volume: 3000},
		{Keyword: "python course online", Volume: 2000},
		{Keyword: "learn online course", Volume: 1000},
	}

	clusters := BuildClusters(kws, ClusterOptions{Threshold: 0.5, MinClusterSize: 2})
	require.NotEmpty(t, clusters)
	assert.Len(t, clusters[0].Members, 3)
}

func TestBuildClustersEmptyInput(t *testing.T) {
	assert.Empty(t, BuildClusters(nil, DefaultClusterOptions()))
}

func TestClusterRepresentativeTermsCapped(t *testing.T) {
	kws := []Keyword{
		{Keyword: "alpha bravo charlie delta echo foxtrot golf hotel india juliett kilo lima", Volume: 100},
		{Keyword: "alpha bravo charlie delta echo foxtrot golf hotel india juliett kilo mike", Volume: 200},
	}

	clusters := BuildClusters(kws, DefaultClusterOptions())
	require.NotEmpty(t, clusters)
	assert.LessOrEqual(t, len(clusters[0].Terms), 10)
}
