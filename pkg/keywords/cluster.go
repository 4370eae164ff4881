package keywords

import (
	"sort"
)

// UnclusteredID is the cluster ID of the catch-all cluster.
const UnclusteredID = -1

// ClusterOptions control the greedy clustering pass.
type ClusterOptions struct {
	Threshold      float64 // minimum Jaccard similarity to join a cluster
	MinClusterSize int     // clusters smaller than this are dissolved
}

// DefaultClusterOptions returns the standard threshold and minimum size.
func DefaultClusterOptions() ClusterOptions {
	return ClusterOptions{Threshold: 0.3, MinClusterSize: 2}
}

// Member is a keyword annotated with its intent and priority.
type Member struct {
	Keyword
	Intent   Intent  `json:"intent"`
	Priority float64 `json:"priority"`
}

// Cluster is a group of lexically related keywords.
type Cluster struct {
	ID             int      `json:"id"` // -1 is the catch-all
	Name           string   `json:"name"`
	Pillar         string   `json:"pillar_keyword"`
	Members        []Member `json:"members"`
	TotalVolume    int      `json:"total_volume"`
	AvgVolume      float64  `json:"avg_volume"`
	AvgCompetition float64  `json:"avg_competition"`
	DominantIntent Intent   `json:"dominant_intent"`
	Terms          []string `json:"terms"` // up to 10 representative core terms
	Priority       float64  `json:"priority"`
}

// BuildClusters groups keywords into topic clusters.
//
// Clustering is greedy in input order: the next unclustered keyword seeds a
// new cluster, which then absorbs every unclustered keyword whose similarity
// to the running union of the cluster's terms meets the threshold. The sweep
// repeats while the union keeps growing. Cluster membership is final once
// assigned.
//
// Clusters smaller than MinClusterSize are dissolved into the catch-all
// cluster (ID -1), as are keywords whose core term set is empty. Every input
// keyword ends up in exactly one cluster.
func BuildClusters(kws []Keyword, opts ClusterOptions) []Cluster {
	n := len(kws)
	cores := make([]map[string]bool, n)
	for i, kw := range kws {
		cores[i] = CoreTerms(kw.Keyword)
	}

	clustered := make([]bool, n)
	var groups [][]int

	for i := 0; i < n; i++ {
		if clustered[i] || len(cores[i]) == 0 {
			continue
		}

		members := []int{i}
		clustered[i] = true
		union := make(map[string]bool, len(cores[i]))
		for t := range cores[i] {
			union[t] = true
		}

		// The union grows as members join, so sweep until a full pass
		// absorbs nothing.
		for {
			absorbed := false
			for j := i + 1; j < n; j++ {
				if clustered[j] || len(cores[j]) == 0 {
					continue
				}
				if Jaccard(cores[j], union) >= opts.Threshold {
					members = append(members, j)
					clustered[j] = true
					for t := range cores[j] {
						union[t] = true
					}
					absorbed = true
				}
			}
			if !absorbed {
				break
			}
		}

		groups = append(groups, members)
	}

	// Dissolve small clusters into the catch-all, along with keywords that
	// never produced a core term set.
	var catchAll []int
	var surviving [][]int
	for _, g := range groups {
		if len(g) < opts.MinClusterSize {
			catchAll = append(catchAll, g...)
		} else {
			surviving = append(surviving, g)
		}
	}
	for i := 0; i < n; i++ {
		if !clustered[i] {
			catchAll = append(catchAll, i)
		}
	}

	clusters := make([]Cluster, 0, len(surviving)+1)
	for id, g := range surviving {
		clusters = append(clusters, summarize(id, g, kws, cores))
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].Priority > clusters[j].Priority
	})

	if len(catchAll) > 0 {
		sort.Ints(catchAll)
		uc := summarize(UnclusteredID, catchAll, kws, cores)
		uc.Name = "Unclustered"
		clusters = append(clusters, uc)
	}

	return clusters
}

// summarize computes the member annotations and aggregate statistics for one
// cluster.
func summarize(id int, indexes []int, kws []Keyword, cores []map[string]bool) Cluster {
	c := Cluster{ID: id}

	totalVolume := 0
	totalCompetition := 0.0
	intentVotes := map[Intent]int{}
	termFreq := map[string]int{}

	pillarIdx := indexes[0]
	for _, idx := range indexes {
		kw := kws[idx]
		intent := ClassifyIntent(kw.Keyword)
		c.Members = append(c.Members, Member{
			Keyword:  kw,
			Intent:   intent,
			Priority: PriorityScore(kw.Volume, kw.Competition, intent),
		})

		totalVolume += kw.Volume
		totalCompetition += kw.Competition
		intentVotes[intent]++
		for t := range cores[idx] {
			termFreq[t]++
		}
		if kw.Volume > kws[pillarIdx].Volume {
			pillarIdx = idx
		}
	}

	c.Pillar = kws[pillarIdx].Keyword
	c.Name = c.Pillar
	c.TotalVolume = totalVolume
	c.AvgVolume = float64(totalVolume) / float64(len(indexes))
	c.AvgCompetition = totalCompetition / float64(len(indexes))
	c.DominantIntent = dominantIntent(intentVotes)
	c.Terms = topTerms(termFreq, 10)
	c.Priority = PriorityScore(totalVolume, c.AvgCompetition, c.DominantIntent)
	return c
}

// dominantIntent is a plurality vote, ties resolved by the fixed intent order.
func dominantIntent(votes map[Intent]int) Intent {
	order := []Intent{IntentInformational, IntentNavigational, IntentTransactional, IntentCommercial}
	best := IntentInformational
	bestVotes := 0
	for _, intent := range order {
		if votes[intent] > bestVotes {
			best = intent
			bestVotes = votes[intent]
		}
	}
	return best
}

// topTerms returns up to limit terms ordered by frequency, then alphabetically.
func topTerms(freq map[string]int, limit int) []string {
	terms := make([]string, 0, len(freq))
	for t := range freq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}
