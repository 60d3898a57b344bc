// Package budget implements the 50/30/20 weekly income split and the pie
// chart geometry derived from it.
package budget

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Bucket is one of the three fixed spending categories.
type Bucket int

const (
	Essentials Bucket = iota
	Wants
	Savings
)

// Buckets lists every bucket in display and chart order.
var Buckets = []Bucket{Essentials, Wants, Savings}

// Tip is a short piece of advice attached to a bucket.
type Tip struct {
	Title string
	Body  string
}

type bucketInfo struct {
	name        string
	share       float64
	percent     int
	description string
	color       string
	tip         Tip
}

var bucketTable = [...]bucketInfo{
	Essentials: {
		name:        "essentials",
		share:       0.5,
		percent:     50,
		description: "Rent, utilities, groceries, transport",
		color:       "#10b981",
		tip:         Tip{"Track Essentials", "Keep essential costs under 50% to maintain financial stability"},
	},
	Wants: {
		name:        "wants",
		share:       0.3,
		percent:     30,
		description: "Entertainment, dining out, hobbies",
		color:       "#3b82f6",
		tip:         Tip{"Mindful Spending", "Enjoy life within your 30% wants budget to avoid overspending"},
	},
	Savings: {
		name:        "savings",
		share:       0.2,
		percent:     20,
		description: "Emergency fund, investments, goals",
		color:       "#8b5cf6",
		tip:         Tip{"Save Consistently", "Automate your 20% savings to build wealth over time"},
	},
}

var titleCaser = cases.Title(language.BritishEnglish)

func (b Bucket) info() bucketInfo {
	if b < Essentials || b > Savings {
		return bucketInfo{name: "unknown"}
	}
	return bucketTable[b]
}

// String returns the lower-case bucket name, e.g. "essentials".
func (b Bucket) String() string { return b.info().name }

// Title returns the display name, e.g. "Essentials".
func (b Bucket) Title() string { return titleCaser.String(b.info().name) }

// Share returns the bucket's fraction of income.
func (b Bucket) Share() float64 { return b.info().share }

// Percent returns the bucket's share as a whole percentage.
func (b Bucket) Percent() int { return b.info().percent }

// Description lists typical spending that belongs in the bucket.
func (b Bucket) Description() string { return b.info().description }

// Color returns the bucket's chart colour as a hex string.
func (b Bucket) Color() string { return b.info().color }

// Tip returns the budgeting tip shown for the bucket.
func (b Bucket) Tip() Tip { return b.info().tip }

// Allocation is the split of a single income figure across the buckets.
// Amounts are kept at full precision; rounding happens only when formatting.
type Allocation struct {
	Income     float64
	Essentials float64
	Wants      float64
	Savings    float64
}

// Allocate splits income 50/30/20. Negative, NaN and infinite incomes are
// treated as zero.
func Allocate(income float64) Allocation {
	if income < 0 || math.IsNaN(income) || math.IsInf(income, 0) {
		income = 0
	}
	return Allocation{
		Income:     income,
		Essentials: income * Essentials.Share(),
		Wants:      income * Wants.Share(),
		Savings:    income * Savings.Share(),
	}
}

// AllocateInput parses raw text input and allocates it.
func AllocateInput(raw string) Allocation {
	return Allocate(ParseIncome(raw))
}

// Amount returns the allocated amount for b.
func (a Allocation) Amount(b Bucket) float64 {
	switch b {
	case Essentials:
		return a.Essentials
	case Wants:
		return a.Wants
	case Savings:
		return a.Savings
	}
	return 0
}

// Amounts returns the bucket amounts in Buckets order.
func (a Allocation) Amounts() []float64 {
	return []float64{a.Essentials, a.Wants, a.Savings}
}

// Total is the income the allocation was derived from.
func (a Allocation) Total() float64 { return a.Income }

// IsZero reports whether there is nothing to allocate.
func (a Allocation) IsZero() bool { return a.Income == 0 }

// float64 covers roughly 1e-324 to 1e308; anything outside is coerced
// before it reaches big.Rat.
const (
	maxMagnitude = 309
	minMagnitude = -330
)

// ParseIncome reads a non-negative decimal income from user input.
// A single leading "£" is allowed. Empty, unparsable, negative or
// out-of-range input yields 0; it never fails.
func ParseIncome(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimPrefix(s, "£"))
	if s == "" {
		return 0
	}

	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() || d.IsZero() {
		return 0
	}

	magnitude := int(d.Exponent()) + d.NumDigits()
	if magnitude > maxMagnitude || magnitude < minMagnitude {
		return 0
	}

	f, _ := d.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return f
}
