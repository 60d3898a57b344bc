package components

import (
	"fmt"

	"github.com/theirongolddev/wkbudget/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ShareBar renders a solid bar for a 0-1 share followed by its percentage.
func ShareBar(pct float64, barWidth int, color lipgloss.Color) string {
	t := theme.Active

	pct = min(max(pct, 0), 1)
	barWidth = max(barWidth, 4)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return bar.ViewAs(pct) + " " + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
