package keywords

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

// stopWords are excluded from core term sets.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "from": true,
	"that": true, "this": true, "are": true, "was": true, "were": true,
	"have": true, "has": true, "had": true, "not": true, "but": true,
	"you": true, "your": true, "can": true, "will": true, "all": true,
	"any": true, "get": true, "near": true, "out": true, "into": true,
	"about": true, "what": true, "when": true, "where": true, "which": true,
	"how": true, "why": true, "who": true, "does": true, "did": true,
}

// CoreTerms derives the core term set for a keyword: lowercased word tokens
// minus stop words, keeping only tokens longer than 2 characters.
func CoreTerms(keyword string) map[string]bool {
	terms := make(map[string]bool)
	for _, tok := range wordPattern.FindAllString(strings.ToLower(keyword), -1) {
		if len(tok) <= 2 || stopWords[tok] {
			continue
		}
		terms[tok] = true
	}
	return terms
}

// Jaccard computes |A∩B| / |A∪B|. An empty set never matches anything, so the
// similarity is 0 whenever either set is empty.
func Jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if b[t] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}
