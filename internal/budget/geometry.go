package budget

import (
	"math"
	"strconv"
	"strings"
)

// Chart dimensions, in SVG user units.
const (
	ChartSize   = 200.0
	ChartRadius = 80.0
	FullCircle  = 360.0
)

// ChartCenter is the centre of the ChartSize x ChartSize viewport.
var ChartCenter = Point{X: ChartSize / 2, Y: ChartSize / 2}

// Point is a position in chart coordinates (y grows downward).
type Point struct {
	X, Y float64
}

// Slice is one bucket's angular span of the pie chart. Angles are in
// degrees, measured clockwise from the positive x axis.
type Slice struct {
	Bucket     Bucket
	StartAngle float64
	EndAngle   float64
	Start      Point
	End        Point
	LargeArc   bool
	Color      string
}

// PolarToCartesian converts an angle in degrees on a circle around center
// to chart coordinates.
func PolarToCartesian(center Point, radius, degrees float64) Point {
	rad := degrees * math.Pi / 180
	return Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

// Layout turns magnitudes into contiguous slices that start at 0 degrees and
// end at exactly 360. It returns nil when total is not positive. Slice i
// takes its Bucket from the index; callers with their own ordering can
// overwrite it.
func Layout(values []float64, total float64) []Slice {
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) || len(values) == 0 {
		return nil
	}

	slices := make([]Slice, len(values))
	angle := 0.0
	for i, v := range values {
		span := v / total * FullCircle
		if span < 0 || math.IsNaN(span) {
			span = 0
		}
		end := angle + span
		if i == len(values)-1 {
			// Pin the last edge so rounding never leaves a gap or overlap.
			end = FullCircle
		}
		slices[i] = Slice{
			Bucket:     Bucket(i),
			StartAngle: angle,
			EndAngle:   end,
			Start:      PolarToCartesian(ChartCenter, ChartRadius, angle),
			End:        PolarToCartesian(ChartCenter, ChartRadius, end),
			LargeArc:   end-angle > 180,
		}
		angle = end
	}
	return slices
}

// Slices lays out the allocation as essentials, wants, savings. It returns
// nil for a zero allocation; the caller shows a placeholder instead.
func Slices(a Allocation) []Slice {
	slices := Layout(a.Amounts(), a.Total())
	for i := range slices {
		slices[i].Bucket = Buckets[i]
		slices[i].Color = Buckets[i].Color()
	}
	return slices
}

// Span returns the angular width of the slice in degrees.
func (s Slice) Span() float64 { return s.EndAngle - s.StartAngle }

// Contains reports whether deg (normalised to [0, 360)) falls in the slice.
func (s Slice) Contains(deg float64) bool {
	deg = math.Mod(deg, FullCircle)
	if deg < 0 {
		deg += FullCircle
	}
	return deg >= s.StartAngle && deg < s.EndAngle
}

// Path returns the SVG path data for the slice as a wedge from the chart
// centre. A full-circle slice is drawn as two half arcs because an arc whose
// endpoints coincide renders as nothing.
func (s Slice) Path() string {
	c := ChartCenter
	r := fmtCoord(ChartRadius)

	var b strings.Builder
	b.WriteString("M " + fmtCoord(c.X) + " " + fmtCoord(c.Y))
	b.WriteString(" L " + fmtCoord(s.Start.X) + " " + fmtCoord(s.Start.Y))

	if s.Span() >= FullCircle {
		mid := PolarToCartesian(c, ChartRadius, s.StartAngle+180)
		b.WriteString(" A " + r + " " + r + " 0 0 1 " + fmtCoord(mid.X) + " " + fmtCoord(mid.Y))
		b.WriteString(" A " + r + " " + r + " 0 0 1 " + fmtCoord(s.End.X) + " " + fmtCoord(s.End.Y))
	} else {
		flag := "0"
		if s.LargeArc {
			flag = "1"
		}
		b.WriteString(" A " + r + " " + r + " 0 " + flag + " 1 " + fmtCoord(s.End.X) + " " + fmtCoord(s.End.Y))
	}
	b.WriteString(" Z")
	return b.String()
}

// fmtCoord prints a coordinate with at most four decimals and no trailing
// zeros, so path strings stay stable across platforms.
func fmtCoord(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
