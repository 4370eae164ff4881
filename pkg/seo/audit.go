package seo

import (
	"fmt"

	"github.com/user/stratkit/pkg/engine"
)

// check is one on-page rule. Weight is the number of points deducted from the
// 100-point budget when the check fails.
type check struct {
	ID       string
	Weight   int
	Severity int
	Run      func(*Page) (ok bool, evidence, fix string)
}

var checks = []check{
	{
		ID: "SEO001", Weight: 15, Severity: 8,
		Run: func(p *Page) (bool, string, string) {
			if p.Title == "" {
				return false, "page has no <title>", "add a descriptive title tag"
			}
			return true, "", ""
		},
	},
	{
		ID: "SEO002", Weight: 8, Severity: 5,
		Run: func(p *Page) (bool, string, string) {
			n := len(p.Title)
			if p.Title != "" && (n < 30 || n > 60) {
				return false, fmt.Sprintf("title length %d outside 30-60 chars", n), "rewrite the title to 30-60 characters"
			}
			return true, "", ""
		},
	},
	{
		ID: "SEO003", Weight: 12, Severity: 7,
		Run: func(p *Page) (bool, string, string) {
			if p.MetaDescription == "" {
				return false, "missing meta description", "add a meta description tag"
			}
			return true, "", ""
		},
	},
	{
		ID: "SEO004", Weight: 6, Severity: 4,
		Run: func(p *Page) (bool, string, string) {
			n := len(p.MetaDescription)
			if p.MetaDescription != "" && (n < 70 || n > 160) {
				return false, fmt.Sprintf("meta description length %d outside 70-160 chars", n), "rewrite the description to 70-160 characters"
			}
			return true, "", ""
		},
	},
	{
		ID: "SEO005", Weight: 12, Severity: 7,
		Run: func(p *Page) (bool, string, string) {
			switch p.H1Count {
			case 1:
				return true, "", ""
			case 0:
				return false, "page has no <h1>", "add exactly one h1 heading"
			default:
				return false, fmt.Sprintf("page has %d <h1> tags", p.H1Count), "keep exactly one h1 heading"
			}
		},
	},
	{
		ID: "SEO006", Weight: 8, Severity: 5,
		Run: func(p *Page) (bool, string, string) {
			prev := 0
			for _, level := range p.Headings {
				if prev > 0 && level > prev+1 {
					return false, fmt.Sprintf("heading level jumps from h%d to h%d", prev, level), "do not skip heading levels"
				}
				prev = level
			}
			return true, "", ""
		},
	},
	{
		ID: "SEO007", Weight: 10, Severity: 6,
		Run: func(p *Page) (bool, string, string) {
			if p.ImagesNoAlt > 0 {
				return false, fmt.Sprintf("%d of %d images missing alt text", p.ImagesNoAlt, p.Images), "add alt attributes to all images"
			}
			return true, "", ""
		},
	},
	{
		ID: "SEO008", Weight: 12, Severity: 6,
		Run: func(p *Page) (bool, string, string) {
			if p.WordCount < 300 {
				return false, fmt.Sprintf("thin content: %d words", p.WordCount), "expand the page to at least 300 words"
			}
			return true, "", ""
		},
	},
	{
		ID: "SEO009", Weight: 7, Severity: 4,
		Run: func(p *Page) (bool, string, string) {
			if p.Canonical == "" {
				return false, "missing canonical link", "add a rel=canonical link"
			}
			return true, "", ""
		},
	},
	{
		ID: "SEO010", Weight: 5, Severity: 3,
		Run: func(p *Page) (bool, string, string) {
			if p.InternalLinks == 0 {
				return false, "page has no internal links", "link to related pages on the site"
			}
			return true, "", ""
		},
	},
}

// Result is a completed page audit.
type Result struct {
	Path     string           `json:"path"`
	Score    int              `json:"score"` // 0-100
	Grade    string           `json:"grade"` // A+ .. F
	Findings []engine.Finding `json:"findings"`
}

// Audit runs every on-page check against the page.
func Audit(path string, p *Page) Result {
	res := Result{Path: path, Score: 100}
	for _, c := range checks {
		ok, evidence, fix := c.Run(p)
		if ok {
			continue
		}
		res.Score -= c.Weight
		f := engine.NewFinding("seo-audit", "seo", path, evidence, c.Severity)
		f.Recommendation = fix
		f.Tags = []string{c.ID}
		res.Findings = append(res.Findings, f)
	}
	if res.Score < 0 {
		res.Score = 0
	}
	res.Grade = Grade(res.Score)
	return res
}

// Grade maps a 0-100 score to a letter grade.
func Grade(score int) string {
	switch {
	case score >= 97:
		return "A+"
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
