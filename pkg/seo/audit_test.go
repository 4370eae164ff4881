package seo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var goodPage = `<!DOCTYPE html>
<html>
<head>
<title>Complete Guide to Sourdough Baking at Home</title>
<meta name="description" content="Learn how to bake sourdough bread at home with this step by step guide covering starters, proofing, and baking.">
<link rel="canonical" href="https://example.com/sourdough">
</head>
<body>
<h1>Sourdough Baking</h1>
<h2>Starters</h2>
<p>` + fourHundredWords + `</p>
<img src="loaf.jpg" alt="finished loaf">
<a href="/recipes">More recipes</a>
</body>
</html>`

var fourHundredWords = func() string {
	out := ""
	for i := 0; i < 400; i++ {
		out += "flour "
	}
	return out
}()

func loadFixture(t *testing.T, content string) *Page {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	p, err := LoadPage(path)
	require.NoError(t, err)
	return p
}

func TestLoadPageExtraction(t *testing.T) {
	p := loadFixture(t, goodPage)

	assert.Equal(t, "Complete Guide to Sourdough Baking at Home", p.Title)
	assert.NotEmpty(t, p.MetaDescription)
	assert.Equal(t, "https://example.com/sourdough", p.Canonical)
	assert.Equal(t, 1, p.H1Count)
	assert.Equal(t, 1, p.Images)
	assert.Equal(t, 0, p.ImagesNoAlt)
	assert.Equal(t, 1, p.InternalLinks)
	assert.GreaterOrEqual(t, p.WordCount, 300)
}

func TestAuditCleanPage(t *testing.T) {
	p := loadFixture(t, goodPage)
	res := Audit("page.html", p)

	assert.Equal(t, 100, res.Score)
	assert.Equal(t, "A+", res.Grade)
	assert.Empty(t, res.Findings)
}

func TestAuditFlagsProblems(t *testing.T) {
	p := loadFixture(t, `<html><head></head><body><h1>One</h1><h1>Two</h1><img src="x.png"><p>short text</p></body></html>`)
	res := Audit("page.html", p)

	ids := map[string]bool{}
	for _, f := range res.Findings {
		for _, tag := range f.Tags {
			ids[tag] = true
		}
	}
	assert.True(t, ids["SEO001"], "missing title")
	assert.True(t, ids["SEO003"], "missing meta description")
	assert.True(t, ids["SEO005"], "duplicate h1")
	assert.True(t, ids["SEO007"], "image without alt")
	assert.True(t, ids["SEO008"], "thin content")
	assert.Less(t, res.Score, 60)
	assert.Equal(t, "F", res.Grade)
}

func TestGradeBands(t *testing.T) {
	assert.Equal(t, "A+", Grade(100))
	assert.Equal(t, "A", Grade(92))
	assert.Equal(t, "B", Grade(85))
	assert.Equal(t, "C", Grade(71))
	assert.Equal(t, "D", Grade(60))
	assert.Equal(t, "F", Grade(30))
}
