// Package components provides reusable TUI widgets for the wkbudget screen.
package components

import (
	"github.com/theirongolddev/wkbudget/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// BucketCard describes one allocation bucket card.
type BucketCard struct {
	Title       string
	Share       string // e.g. "50% of income"
	Amount      string
	Description string
	Fraction    float64 // bucket share of income, 0-1
	Color       lipgloss.Color
}

// RenderBucketCard renders a bucket card with a colored accent border.
// outerWidth is the total rendered width including border.
func RenderBucketCard(c BucketCard, outerWidth int) string {
	t := theme.Active

	contentWidth := max(outerWidth-2, 10)

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.Color).
		Width(contentWidth).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Foreground(c.Color).
		Bold(true)

	shareStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	amountStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	content := titleStyle.Render(c.Title) + shareStyle.Render("  "+c.Share) + "\n" +
		amountStyle.Render(c.Amount) + "\n" +
		ShareBar(c.Fraction, CardInnerWidth(outerWidth)-5, c.Color) + "\n" +
		descStyle.Render(c.Description)

	return cardStyle.Render(content)
}

// ContentCard renders a bordered content card with an optional title.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	contentWidth := max(outerWidth-2, 10)

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(contentWidth).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Bold(true)

	content := ""
	if title != "" {
		content = titleStyle.Render(title) + "\n"
	}
	content += body

	return cardStyle.Render(content)
}

// PlaceholderCard renders a card with a centered, dimmed message and a
// fixed inner height, used where the chart would otherwise go.
func PlaceholderCard(msg string, outerWidth, innerHeight int) string {
	t := theme.Active

	contentWidth := max(outerWidth-2, 10)

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(contentWidth).
		Height(max(innerHeight, 1)).
		Align(lipgloss.Center, lipgloss.Center)

	msgStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	return cardStyle.Render(msgStyle.Render("◔ " + msg))
}

// CardRow joins pre-rendered card strings horizontally.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	return max(outerWidth-4, 10)
}
