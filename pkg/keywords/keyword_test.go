package keywords

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeTemp(t, "kw.csv", "keyword,volume,competition,cpc\npython tutorial,5000,0.4,1.25\nlearn python,8000,0.5,0.90\n")

	kws, err := Load(path)
	require.NoError(t, err)
	require.Len(t, kws, 2)
	assert.Equal(t, "python tutorial", kws[0].Keyword)
	assert.Equal(t, 5000, kws[0].Volume)
	assert.InDelta(t, 0.4, kws[0].Competition, 1e-9)
	assert.InDelta(t, 1.25, kws[0].CPC, 1e-9)
}

func TestLoadCSVMalformedNumbersDefaultToZero(t *testing.T) {
	path := writeTemp(t, "kw.csv", "keyword,volume,competition,cpc\nbad row,n/a,-,\n")

	kws, err := Load(path)
	require.NoError(t, err)
	require.Len(t, kws, 1)
	assert.Equal(t, 0, kws[0].Volume)
	assert.Equal(t, 0.0, kws[0].Competition)
	assert.Equal(t, 0.0, kws[0].CPC)
}

func TestLoadCSVMissingKeywordColumn(t *testing.T) {
	path := writeTemp(t, "kw.csv", "term,volume\nfoo,1\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadJSON(t *testing.T) {
	path := writeTemp(t, "kw.json", `[{"keyword":"learn python","volume":8000,"competition":0.5,"cpc":0.9}]`)

	kws, err := Load(path)
	require.NoError(t, err)
	require.Len(t, kws, 1)
	assert.Equal(t, "learn python", kws[0].Keyword)
}

func TestLoadJSONClampsOutOfRangeValues(t *testing.T) {
	path := writeTemp(t, "kw.json", `[{"keyword":"x y z keyword","volume":-5,"competition":1.7,"cpc":-1}]`)

	kws, err := Load(path)
	require.NoError(t, err)
	require.Len(t, kws, 1)
	assert.Equal(t, 0, kws[0].Volume)
	assert.Equal(t, 1.0, kws[0].Competition)
	assert.Equal(t, 0.0, kws[0].CPC)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
