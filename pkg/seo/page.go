// Package seo audits a static HTML page for on-page SEO problems and scores
// the result 0-100.
package seo

import (
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/user/stratkit/pkg/report"
)

// Page is the extracted on-page signal set for one HTML document.
type Page struct {
	Title           string
	MetaDescription string
	Canonical       string
	H1Count         int
	Headings        []int // heading levels in document order
	Images          int
	ImagesNoAlt     int
	InternalLinks   int
	ExternalLinks   int
	WordCount       int
}

// LoadPage parses an HTML file and extracts the signals the audit needs.
func LoadPage(path string) (*Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, report.IOError(err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, report.ValidationErrorf("parsing HTML: %v", err)
	}

	p := &Page{}
	walk(doc, p, false)
	return p, nil
}

func walk(n *html.Node, p *Page, inBody bool) {
	switch n.Type {
	case html.ElementNode:
		switch n.Data {
		case "body":
			inBody = true
		case "title":
			p.Title = strings.TrimSpace(textContent(n))
		case "meta":
			if strings.EqualFold(attr(n, "name"), "description") {
				p.MetaDescription = strings.TrimSpace(attr(n, "content"))
			}
		case "link":
			if strings.EqualFold(attr(n, "rel"), "canonical") {
				p.Canonical = attr(n, "href")
			}
		case "h1", "h2", "h3", "h4", "h5", "h6":
			level := int(n.Data[1] - '0')
			p.Headings = append(p.Headings, level)
			if level == 1 {
				p.H1Count++
			}
		case "img":
			p.Images++
			if strings.TrimSpace(attr(n, "alt")) == "" {
				p.ImagesNoAlt++
			}
		case "a":
			href := attr(n, "href")
			if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
				p.ExternalLinks++
			} else if href != "" && !strings.HasPrefix(href, "#") {
				p.InternalLinks++
			}
		case "script", "style", "noscript":
			return // skip non-content text
		}
	case html.TextNode:
		if inBody {
			p.WordCount += len(strings.Fields(n.Data))
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, p, inBody)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		} else {
			sb.WriteString(textContent(c))
		}
	}
	return sb.String()
}
