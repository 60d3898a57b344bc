package budget

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlicesZeroTotalHasNoSlices(t *testing.T) {
	assert.Nil(t, Slices(Allocate(0)))
	assert.Nil(t, Slices(AllocateInput("")))
	assert.Nil(t, Layout([]float64{1, 2}, 0))
	assert.Nil(t, Layout([]float64{1, 2}, -3))
	assert.Nil(t, Layout(nil, 10))
}

func TestSlicesCoverFullCircleInOrder(t *testing.T) {
	for _, income := range []float64{0.01, 1, 333.33, 1000, 123456.78} {
		slices := Slices(Allocate(income))
		require.Len(t, slices, 3)

		assert.Equal(t, 0.0, slices[0].StartAngle)
		assert.Equal(t, FullCircle, slices[2].EndAngle)

		sum := 0.0
		for i, s := range slices {
			assert.Equal(t, Buckets[i], s.Bucket)
			assert.Equal(t, Buckets[i].Color(), s.Color)
			if i > 0 {
				assert.Equal(t, slices[i-1].EndAngle, s.StartAngle, "gap before slice %d", i)
			}
			sum += s.Span()
		}
		assert.InDelta(t, FullCircle, sum, 1e-9)
	}
}

func TestSlicesProportionalToShares(t *testing.T) {
	slices := Slices(Allocate(1000))
	require.Len(t, slices, 3)

	assert.InDelta(t, 180.0, slices[0].Span(), 1e-9)
	assert.InDelta(t, 108.0, slices[1].Span(), 1e-9)
	assert.InDelta(t, 72.0, slices[2].Span(), 1e-9)

	// Essentials is exactly half the circle, which is not a large arc.
	for _, s := range slices {
		assert.False(t, s.LargeArc, "%s", s.Bucket)
	}
}

func TestLayoutLargeArcOnlyAboveHalf(t *testing.T) {
	slices := Layout([]float64{3, 1}, 4)
	require.Len(t, slices, 2)

	assert.InDelta(t, 270.0, slices[0].Span(), 1e-9)
	assert.True(t, slices[0].LargeArc)
	assert.False(t, slices[1].LargeArc)

	even := Layout([]float64{1, 1}, 2)
	assert.False(t, even[0].LargeArc)
	assert.False(t, even[1].LargeArc)
}

func TestSliceEndpointsOnCircle(t *testing.T) {
	for _, s := range Slices(Allocate(500)) {
		for _, p := range []Point{s.Start, s.End} {
			d := math.Hypot(p.X-ChartCenter.X, p.Y-ChartCenter.Y)
			assert.InDelta(t, ChartRadius, d, 1e-9)
		}
	}

	first := Slices(Allocate(500))[0]
	assert.InDelta(t, 180.0, first.Start.X, 1e-9)
	assert.InDelta(t, 100.0, first.Start.Y, 1e-9)
	assert.InDelta(t, 20.0, first.End.X, 1e-9)
	assert.InDelta(t, 100.0, first.End.Y, 1e-9)
}

func TestPolarToCartesianQuarterTurns(t *testing.T) {
	c := Point{X: 10, Y: 10}
	cases := map[float64]Point{
		0:   {X: 15, Y: 10},
		90:  {X: 10, Y: 15},
		180: {X: 5, Y: 10},
		270: {X: 10, Y: 5},
	}
	for deg, want := range cases {
		got := PolarToCartesian(c, 5, deg)
		assert.InDelta(t, want.X, got.X, 1e-9, "x at %v", deg)
		assert.InDelta(t, want.Y, got.Y, 1e-9, "y at %v", deg)
	}
}

func TestSlicePath(t *testing.T) {
	slices := Slices(Allocate(1000))
	require.Len(t, slices, 3)

	assert.Equal(t, "M 100 100 L 180 100 A 80 80 0 0 1 20 100 Z", slices[0].Path())

	big := Layout([]float64{3, 1}, 4)[0]
	assert.Equal(t, "M 100 100 L 180 100 A 80 80 0 1 1 100 20 Z", big.Path())
}

func TestSlicePathFullCircle(t *testing.T) {
	whole := Layout([]float64{5}, 5)
	require.Len(t, whole, 1)

	assert.Equal(t,
		"M 100 100 L 180 100 A 80 80 0 0 1 20 100 A 80 80 0 0 1 180 100 Z",
		whole[0].Path())
}

func TestSliceContains(t *testing.T) {
	slices := Slices(Allocate(1000))
	require.Len(t, slices, 3)

	assert.True(t, slices[0].Contains(0))
	assert.True(t, slices[0].Contains(179.9))
	assert.False(t, slices[0].Contains(180))
	assert.True(t, slices[1].Contains(180))
	assert.True(t, slices[2].Contains(359.9))
	assert.True(t, slices[0].Contains(360))
	assert.True(t, slices[2].Contains(-1))
}
