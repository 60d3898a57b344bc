package components

import (
	"strings"

	"github.com/theirongolddev/wkbudget/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StatusHints lists the key hints shown on the left of the status bar.
const StatusHints = " [?]help  [^y]copy  [^e]export  [^t]theme  [^r]clear  [esc]quit"

// RenderStatusBar renders the bottom status bar. notice, if set, is
// right-aligned (e.g. "Saved budget.svg").
func RenderStatusBar(width int, notice string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	noticeStyle := lipgloss.NewStyle().
		Foreground(t.Accent)

	left := StatusHints
	right := ""
	if notice != "" {
		right = noticeStyle.Render(notice + " ")
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
