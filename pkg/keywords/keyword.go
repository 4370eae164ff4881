// Package keywords groups keyword research records into topic clusters using
// lexical similarity, classifies search intent, and ranks clusters by a
// composite priority score.
//
// Clustering is a single-pass greedy heuristic: a keyword joins the first
// cluster whose growing term union crosses the similarity threshold, and
// never moves again. Results therefore depend on input order. This is an
// accepted property of the algorithm, not a bug.
package keywords

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/user/stratkit/pkg/report"
)

// Keyword is one keyword research record.
type Keyword struct {
	Keyword     string  `json:"keyword"`
	Volume      int     `json:"volume"`      // monthly search volume, non-negative
	Competition float64 `json:"competition"` // 0.0 (easy) to 1.0 (hard)
	CPC         float64 `json:"cpc"`         // cost per click, USD
}

// Load reads keyword records from a CSV or JSON file, chosen by extension.
func Load(path string) ([]Keyword, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, report.IOError(err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return parseJSON(data)
	}
	return parseCSV(data)
}

func parseJSON(data []byte) ([]Keyword, error) {
	var kws []Keyword
	if err := json.Unmarshal(data, &kws); err != nil {
		return nil, report.ValidationErrorf("parsing keyword JSON: %v", err)
	}
	for i := range kws {
		sanitize(&kws[i])
	}
	return kws, nil
}

// parseCSV expects a header row naming at least a "keyword" column; volume,
// competition, and cpc columns are optional. Malformed numeric cells default
// to 0 rather than failing the row.
func parseCSV(data []byte) ([]Keyword, error) {
	r := csv.NewReader(strings.NewReader(string(data)))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, report.ValidationErrorf("keyword CSV is empty")
	}
	if err != nil {
		return nil, report.ValidationErrorf("parsing keyword CSV header: %v", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	kwCol, ok := cols["keyword"]
	if !ok {
		return nil, report.ValidationErrorf("keyword CSV is missing a 'keyword' column")
	}

	var kws []Keyword
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, report.ValidationErrorf("parsing keyword CSV: %v", err)
		}
		if kwCol >= len(rec) {
			continue
		}
		kw := Keyword{
			Keyword:     strings.TrimSpace(rec[kwCol]),
			Volume:      intField(rec, cols, "volume"),
			Competition: floatField(rec, cols, "competition"),
			CPC:         floatField(rec, cols, "cpc"),
		}
		if kw.Keyword == "" {
			continue
		}
		sanitize(&kw)
		kws = append(kws, kw)
	}
	return kws, nil
}

func intField(rec []string, cols map[string]int, name string) int {
	i, ok := cols[name]
	if !ok || i >= len(rec) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(rec[i]))
	if err != nil {
		return 0
	}
	return n
}

func floatField(rec []string, cols map[string]int, name string) float64 {
	i, ok := cols[name]
	if !ok || i >= len(rec) {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
	if err != nil {
		return 0
	}
	return f
}

func sanitize(kw *Keyword) {
	if kw.Volume < 0 {
		kw.Volume = 0
	}
	if kw.Competition < 0 {
		kw.Competition = 0
	}
	if kw.Competition > 1 {
		kw.Competition = 1
	}
	if kw.CPC < 0 {
		kw.CPC = 0
	}
}
