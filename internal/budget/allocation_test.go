package budget

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIncome(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"1000", 1000},
		{"333.33", 333.33},
		{"  42.5 ", 42.5},
		{"£250", 250},
		{"£ 12.50", 12.5},
		{".5", 0.5},
		{"1e3", 1000},
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"12abc", 0},
		{"1,000", 0},
		{"0x10", 0},
		{"-50", 0},
		{"-0", 0},
		{"0", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"1e400", 0},
		{"1e-400", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseIncome(tt.raw), 1e-12)
		})
	}
}

func TestAllocateSplitsFiftyThirtyTwenty(t *testing.T) {
	a := Allocate(1000)

	assert.InDelta(t, 500.0, a.Essentials, 1e-9)
	assert.InDelta(t, 300.0, a.Wants, 1e-9)
	assert.InDelta(t, 200.0, a.Savings, 1e-9)
	assert.Equal(t, 1000.0, a.Total())
	assert.False(t, a.IsZero())
}

func TestAllocateKeepsFullPrecision(t *testing.T) {
	income := 333.33
	a := AllocateInput("333.33")

	assert.Equal(t, income*0.5, a.Essentials)
	assert.Equal(t, income*0.3, a.Wants)
	assert.Equal(t, income*0.2, a.Savings)
	assert.InDelta(t, 166.665, a.Essentials, 1e-9)
	assert.InDelta(t, 99.999, a.Wants, 1e-9)
	assert.InDelta(t, 66.666, a.Savings, 1e-9)
}

func TestAllocateSumsToIncome(t *testing.T) {
	for _, income := range []float64{0, 0.01, 1, 7.77, 333.33, 1234.56, 99999.99, 1e12} {
		a := Allocate(income)
		sum := a.Essentials + a.Wants + a.Savings
		// Within half a penny, i.e. equal at display precision.
		assert.InDelta(t, income, sum, 0.005, "income %v", income)
		for _, b := range Buckets {
			assert.Equal(t, income*b.Share(), a.Amount(b), "%s of %v", b, income)
		}
	}
}

func TestAllocateInputEmptyIsZero(t *testing.T) {
	for _, raw := range []string{"", "0", "nope", "-50"} {
		a := AllocateInput(raw)
		require.True(t, a.IsZero(), "input %q", raw)
		assert.Zero(t, a.Essentials)
		assert.Zero(t, a.Wants)
		assert.Zero(t, a.Savings)
	}
}

func TestAllocateCoercesInvalidIncome(t *testing.T) {
	for _, income := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.True(t, Allocate(income).IsZero(), "income %v", income)
	}
}

func TestBucketMetadata(t *testing.T) {
	assert.Equal(t, []Bucket{Essentials, Wants, Savings}, Buckets)

	total := 0
	for _, b := range Buckets {
		total += b.Percent()
		assert.InDelta(t, float64(b.Percent())/100, b.Share(), 1e-12)
		assert.NotEmpty(t, b.Description())
		assert.NotEmpty(t, b.Tip().Title)
	}
	assert.Equal(t, 100, total)

	assert.Equal(t, "Essentials", Essentials.Title())
	assert.Equal(t, "wants", Wants.String())
	assert.Equal(t, "#8b5cf6", Savings.Color())
	assert.Equal(t, "unknown", Bucket(7).String())
}
