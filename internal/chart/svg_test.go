package chart

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/wkbudget/internal/budget"
)

func TestWriteSVGDrawsOnePathPerBucket(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, budget.AllocateInput("1000")))
	out := buf.String()

	assert.Equal(t, 3, strings.Count(out, "<path "))
	assert.Contains(t, out, `d="M 100 100 L 180 100 A 80 80 0 0 1 20 100 Z"`)
	assert.Contains(t, out, "fill:#10b981")
	assert.Contains(t, out, "fill:#3b82f6")
	assert.Contains(t, out, "fill:#8b5cf6")
	assert.Contains(t, out, `data-bucket="savings"`)
	assert.Contains(t, out, "rotate(-90 100 100)")
	assert.Contains(t, out, "£1,000.00")
	assert.NotContains(t, out, Placeholder)

	// Essentials, wants, savings in that order.
	e := strings.Index(out, "#10b981")
	w := strings.Index(out, "#3b82f6")
	s := strings.Index(out, "#8b5cf6")
	assert.Less(t, e, w)
	assert.Less(t, w, s)
}

func TestWriteSVGPlaceholderWhenZero(t *testing.T) {
	for _, raw := range []string{"", "0", "abc"} {
		var buf bytes.Buffer
		require.NoError(t, WriteSVG(&buf, budget.AllocateInput(raw)))

		out := buf.String()
		assert.Contains(t, out, Placeholder, "input %q", raw)
		assert.NotContains(t, out, "<path ", "input %q", raw)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSVGReportsWriteErrors(t *testing.T) {
	err := WriteSVG(failingWriter{}, budget.Allocate(10))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestWriteSVGFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "budget.svg")
	require.NoError(t, WriteSVGFile(path, budget.Allocate(250)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<?xml"))
	assert.Contains(t, string(data), "£250.00")
}
