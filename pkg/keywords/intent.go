package keywords

import "regexp"

// Intent is the search intent classification of a keyword.
type Intent string

const (
	IntentInformational Intent = "informational"
	IntentNavigational  Intent = "navigational"
	IntentTransactional Intent = "transactional"
	IntentCommercial    Intent = "commercial"
)

// intentGroup is one ordered group of patterns voting for an intent.
type intentGroup struct {
	intent   Intent
	patterns []*regexp.Regexp
}

// intentGroups are evaluated in order; the group with the most pattern hits
// wins, ties resolved in favor of the earlier group. A keyword matching
// nothing defaults to informational.
var intentGroups = []intentGroup{
	{
		intent: IntentInformational,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(how|what|why|when|where|who)\b`),
			regexp.MustCompile(`(?i)\b(guide|tutorial|learn|tips|examples?|ideas?)\b`),
			regexp.MustCompile(`(?i)\b(meaning|definition|explained)\b`),
		},
	},
	{
		intent: IntentNavigational,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(login|log in|sign in|signup|sign up)\b`),
			regexp.MustCompile(`(?i)\b(website|official|homepage|portal)\b`),
			regexp.MustCompile(`(?i)\b(download|app|dashboard)\b`),
		},
	},
	{
		intent: IntentTransactional,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(buy|purchase|order|book|shop)\b`),
			regexp.MustCompile(`(?i)\b(price|pricing|cost|cheap|deal|discount|coupon)\b`),
			regexp.MustCompile(`(?i)\b(for sale|free shipping|subscription)\b`),
		},
	},
	{
		intent: IntentCommercial,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(best|top|review|reviews)\b`),
			regexp.MustCompile(`(?i)\b(compare|comparison|alternatives?)\b`),
			regexp.MustCompile(`(?i)\bvs\b`),
		},
	},
}

// ClassifyIntent classifies a keyword's search intent by counting pattern
// hits across the four ordered groups.
func ClassifyIntent(keyword string) Intent {
	best := IntentInformational
	bestHits := 0
	for _, g := range intentGroups {
		hits := 0
		for _, p := range g.patterns {
			if p.MatchString(keyword) {
				hits++
			}
		}
		if hits > bestHits {
			best = g.intent
			bestHits = hits
		}
	}
	return best
}
