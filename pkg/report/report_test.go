package report

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"text", "JSON", "Csv", "markdown"} {
		_, err := ParseFormat(in)
		assert.NoError(t, err, in)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestCodeFor(t *testing.T) {
	assert.Equal(t, ExitOK, CodeFor(nil))
	assert.Equal(t, ExitValidation, CodeFor(ValidationErrorf("bad input")))
	assert.Equal(t, ExitCriticalFindings, CodeFor(CriticalFindingsError(3)))
	assert.Equal(t, ExitIO, CodeFor(IOError(fmt.Errorf("open: %w", fs.ErrNotExist))))
	assert.Equal(t, ExitPermission, CodeFor(IOError(fs.ErrPermission)))

	// Wrapped ExitErrors keep their code through the chain.
	wrapped := fmt.Errorf("loading report: %w", ValidationErrorf("no rows"))
	assert.Equal(t, ExitValidation, CodeFor(wrapped))
}

func TestRenderCSV(t *testing.T) {
	out, err := RenderCSV([]string{"a", "b"}, [][]string{{"1", "with,comma"}})
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,\"with,comma\"\n", out)
}

func TestRenderMarkdownTableEscapesPipes(t *testing.T) {
	out := RenderMarkdownTable([]string{"col"}, [][]string{{"a|b"}})
	assert.Contains(t, out, `a\|b`)
	assert.Contains(t, out, "| --- |")
}

func TestEmitWritesFileAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, Emit("hello\n", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))

	// No leftover temp files next to the report.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
