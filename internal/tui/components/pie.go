package components

import (
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/wkbudget/internal/budget"
	"github.com/theirongolddev/wkbudget/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// SliceAt returns the slice covering the point (dx, dy) relative to the
// pie centre, with y growing downward. Angles run clockwise from twelve
// o'clock, matching the SVG chart after its -90 degree rotation.
func SliceAt(slices []budget.Slice, dx, dy float64) (budget.Slice, bool) {
	deg := math.Atan2(dx, -dy) * 180 / math.Pi
	if deg < 0 {
		deg += budget.FullCircle
	}
	for _, s := range slices {
		if s.Contains(deg) {
			return s, true
		}
	}
	return budget.Slice{}, false
}

// PieChart rasterises slices into a disc of the given radius. Each
// terminal cell holds two vertical pixels drawn with half blocks, so the
// result is 2*radius columns by radius rows.
func PieChart(slices []budget.Slice, radius int) string {
	if len(slices) == 0 || radius < 1 {
		return ""
	}
	t := theme.Active

	size := 2 * radius
	r := float64(radius)
	pixel := func(px, py int) (lipgloss.Color, bool) {
		dx := float64(px) + 0.5 - r
		dy := float64(py) + 0.5 - r
		if dx*dx+dy*dy > r*r {
			return "", false
		}
		s, ok := SliceAt(slices, dx, dy)
		if !ok {
			return "", false
		}
		return t.BucketColor(s.Bucket), true
	}

	var b strings.Builder
	for row := 0; row < radius; row++ {
		for col := 0; col < size; col++ {
			top, hasTop := pixel(col, 2*row)
			bottom, hasBottom := pixel(col, 2*row+1)

			switch {
			case hasTop && hasBottom:
				b.WriteString(lipgloss.NewStyle().Foreground(top).Background(bottom).Render("▀"))
			case hasTop:
				b.WriteString(lipgloss.NewStyle().Foreground(top).Render("▀"))
			case hasBottom:
				b.WriteString(lipgloss.NewStyle().Foreground(bottom).Render("▄"))
			default:
				b.WriteByte(' ')
			}
		}
		if row < radius-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Legend renders one "● Essentials (50%)" entry per bucket on a single line.
func Legend() string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	parts := make([]string, 0, len(budget.Buckets))
	for _, bucket := range budget.Buckets {
		dot := lipgloss.NewStyle().Foreground(t.BucketColor(bucket)).Render("●")
		parts = append(parts, dot+" "+labelStyle.Render(bucket.Title()+" ("+strconv.Itoa(bucket.Percent())+"%)"))
	}
	return strings.Join(parts, "  ")
}
