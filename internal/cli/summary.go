package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/wkbudget/internal/budget"

	"github.com/charmbracelet/lipgloss"
	"github.com/mitchellh/go-wordwrap"
)

// shareBarWidth is the length of the per-bucket bars under the table.
const shareBarWidth = 30

// tipWrapWidth keeps tip bodies inside the title box.
const tipWrapWidth = 50

// RenderAllocation renders the full CLI summary: a bucket table with a
// total row, share bars and, when there is income to split, the tips.
func RenderAllocation(a budget.Allocation) string {
	var b strings.Builder

	rows := make([][]string, 0, len(budget.Buckets)+2)
	for _, bucket := range budget.Buckets {
		rows = append(rows, []string{
			bucket.Title(),
			FormatShare(bucket.Percent()),
			FormatCurrency(a.Amount(bucket)),
		})
	}
	rows = append(rows, SeparatorRow)
	rows = append(rows, []string{"TOTAL", "", FormatCurrency(a.Total())})

	b.WriteString(RenderTable(Table{
		Title:   "Weekly Allocation",
		Headers: []string{"Bucket", "Share", "Amount"},
		Rows:    rows,
	}))
	b.WriteString("\n")

	if a.IsZero() {
		b.WriteString(RenderMuted("Enter income to see chart"))
		b.WriteString("\n")
		return b.String()
	}

	labelW := 0
	for _, bucket := range budget.Buckets {
		labelW = max(labelW, lipgloss.Width(bucket.Title()))
	}
	for _, bucket := range budget.Buckets {
		fmt.Fprintf(&b, "  %s  %s  %s\n",
			mutedStyle.Render(padRight(bucket.Title(), labelW)),
			RenderHorizontalBar(a.Amount(bucket), a.Total(), shareBarWidth, lipgloss.Color(bucket.Color())),
			valueStyle.Render(FormatCurrency(a.Amount(bucket))))
	}
	b.WriteString("\n")

	b.WriteString(RenderHeading("Budget Tips"))
	b.WriteString("\n")
	for _, bucket := range budget.Buckets {
		tip := bucket.Tip()
		b.WriteString("  " + valueStyle.Render(tip.Title) + "\n")
		for _, line := range strings.Split(wordwrap.WrapString(tip.Body, tipWrapWidth), "\n") {
			b.WriteString("    " + mutedStyle.Render(line) + "\n")
		}
	}

	return b.String()
}

// PlainSummary is an unstyled multi-line summary, used for the clipboard.
func PlainSummary(a budget.Allocation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Weekly income: %s\n", FormatCurrency(a.Total()))
	for _, bucket := range budget.Buckets {
		fmt.Fprintf(&b, "%s (%d%%): %s\n", bucket.Title(), bucket.Percent(), FormatCurrency(a.Amount(bucket)))
	}
	return b.String()
}

// JSONSummary is the machine-readable form of an allocation.
type JSONSummary struct {
	Income     float64           `json:"income"`
	Essentials float64           `json:"essentials"`
	Wants      float64           `json:"wants"`
	Savings    float64           `json:"savings"`
	Currency   string            `json:"currency"`
	Formatted  map[string]string `json:"formatted"`
}

// NewJSONSummary builds a JSONSummary, keeping full-precision amounts next
// to their display strings.
func NewJSONSummary(a budget.Allocation) JSONSummary {
	formatted := map[string]string{"income": FormatCurrency(a.Total())}
	for _, bucket := range budget.Buckets {
		formatted[bucket.String()] = FormatCurrency(a.Amount(bucket))
	}
	return JSONSummary{
		Income:     a.Income,
		Essentials: a.Essentials,
		Wants:      a.Wants,
		Savings:    a.Savings,
		Currency:   CurrencyCode,
		Formatted:  formatted,
	}
}
