// Package chart renders the allocation pie chart as SVG.
package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/theirongolddev/wkbudget/internal/budget"
	"github.com/theirongolddev/wkbudget/internal/cli"

	svg "github.com/ajstarks/svgo"
)

// Placeholder is shown instead of a chart when there is nothing to split.
const Placeholder = "Enter income to see chart"

const (
	size   = int(budget.ChartSize)
	center = size / 2
)

// errWriter remembers the first write error; svgo ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// WriteSVG draws the allocation as a pie chart. Slices start at twelve
// o'clock and run clockwise, essentials first. A zero allocation produces
// a placeholder panel instead.
func WriteSVG(w io.Writer, a budget.Allocation) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(size, size)
	canvas.Title("Budget Breakdown")

	slices := budget.Slices(a)
	if len(slices) == 0 {
		canvas.Roundrect(0, 0, size, size, 16, 16, "fill:#f1f5f9;stroke:#e2e8f0")
		canvas.Text(center, center, Placeholder,
			"text-anchor:middle;dominant-baseline:middle;font-size:12px;fill:#64748b")
		canvas.End()
		return ew.err
	}

	canvas.Gtransform(fmt.Sprintf("rotate(-90 %d %d)", center, center))
	for _, s := range slices {
		canvas.Path(s.Path(), "fill:"+s.Color, `data-bucket="`+s.Bucket.String()+`"`)
	}
	canvas.Gend()

	canvas.Text(center, center-6, "Total",
		"text-anchor:middle;font-size:10px;fill:#64748b")
	canvas.Text(center, center+10, cli.FormatCurrency(a.Total()),
		"text-anchor:middle;font-size:13px;font-weight:600;fill:#334155")
	canvas.End()

	return ew.err
}

// WriteSVGFile writes the chart to path, creating parent directories.
func WriteSVGFile(path string, a budget.Allocation) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating chart dir: %w", err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}

	if err := WriteSVG(f, a); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing chart: %w", err)
	}
	return f.Close()
}
