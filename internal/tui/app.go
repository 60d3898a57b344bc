// Package tui provides the interactive Bubble Tea budget allocator.
package tui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/theirongolddev/wkbudget/internal/budget"
	"github.com/theirongolddev/wkbudget/internal/chart"
	"github.com/theirongolddev/wkbudget/internal/cli"
	"github.com/theirongolddev/wkbudget/internal/config"
	"github.com/theirongolddev/wkbudget/internal/tui/components"
	"github.com/theirongolddev/wkbudget/internal/tui/theme"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ExportDoneMsg is sent when an SVG export finishes.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// CopyDoneMsg is sent when the summary has been written to the clipboard.
type CopyDoneMsg struct {
	Err error
}

// ConfigSavedMsg is sent after a preference change has been written.
type ConfigSavedMsg struct {
	Err error
}

// clearNoticeMsg expires the status bar notice with the matching id.
type clearNoticeMsg struct {
	id int
}

// App is the root Bubble Tea model.
type App struct {
	cfg config.Config

	// Input and the values derived from it on every change
	input  textinput.Model
	alloc  budget.Allocation
	slices []budget.Slice

	// UI state
	width    int
	height   int
	showHelp bool
	notice   string
	noticeID int

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool
}

const (
	minTerminalWidth = 60
	compactWidth     = 100
	maxContentWidth  = 140

	pieRadius        = 7
	minContentHeight = 5
	noticeTimeout    = 3 * time.Second
	incomeCharLimit  = 12
)

// NewApp creates a new TUI app model. income pre-fills the input field;
// firstRun shows the setup form before the allocator.
func NewApp(cfg config.Config, income string, firstRun bool) App {
	theme.SetActive(cfg.Appearance.Theme)

	a := App{
		cfg:       cfg,
		input:     newIncomeInput(),
		needSetup: firstRun,
	}

	if v := SanitizeIncome(income); v != "" {
		a.input.SetValue(v)
	}
	a.recompute()

	if firstRun {
		a.setupVals = setupValuesFrom(cfg)
		a.setupForm = newSetupForm(a.setupVals)
	}
	return a
}

func newIncomeInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "£ "
	ti.Placeholder = "0.00"
	ti.CharLimit = incomeCharLimit
	ti.Width = 20
	ti.Focus()
	return ti
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// recompute derives the allocation and pie slices from the current input.
func (a *App) recompute() {
	a.alloc = budget.AllocateInput(a.input.Value())
	a.slices = budget.Slices(a.alloc)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = ws.Width
		a.height = ws.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(ws.Width).WithHeight(ws.Height)
		}
		return a, nil
	}

	// First-run setup wizard intercepts everything else
	if a.needSetup && a.setupForm != nil {
		if km, ok := msg.(tea.KeyMsg); ok && km.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.updateSetupForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.updateKey(msg)

	case ExportDoneMsg:
		if msg.Err != nil {
			log.Printf("export %s: %v", msg.Path, msg.Err)
			return a.flash("Export failed: " + msg.Err.Error())
		}
		log.Printf("exported chart to %s", msg.Path)
		return a.flash("Saved " + msg.Path)

	case CopyDoneMsg:
		if msg.Err != nil {
			log.Printf("clipboard: %v", msg.Err)
			return a.flash("Clipboard unavailable")
		}
		return a.flash("Copied to clipboard")

	case ConfigSavedMsg:
		if msg.Err != nil {
			log.Printf("saving config: %v", msg.Err)
			return a.flash("Theme not saved: " + msg.Err.Error())
		}
		return a.flash("Theme: " + a.cfg.Appearance.Theme)

	case clearNoticeMsg:
		if msg.id == a.noticeID {
			a.notice = ""
		}
		return a, nil
	}

	// Cursor blink, clipboard paste and anything else the input understands
	return a.updateInput(msg)
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// Any key dismisses help
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "esc":
		return a, tea.Quit
	case "?":
		a.showHelp = true
		return a, nil
	case "ctrl+r":
		a.input.Reset()
		a.recompute()
		return a, nil
	case "ctrl+t":
		next := theme.Next(a.cfg.Appearance.Theme)
		a.cfg.Appearance.Theme = next.Name
		theme.SetActive(next.Name)
		return a, saveConfigCmd(a.cfg)
	case "ctrl+e":
		return a, exportCmd(a.cfg.Chart.SVGFile, a.alloc)
	case "ctrl+y":
		return a, copyCmd(cli.PlainSummary(a.alloc))
	}

	if !a.acceptsKey(msg) {
		return a, nil
	}

	return a.updateInput(msg)
}

// updateInput forwards msg to the income field. A change that leaves the
// field holding anything but an unsigned decimal is undone; any other
// change recomputes the allocation.
func (a App) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	prev := a.input.Value()

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)

	if v := a.input.Value(); v != prev {
		if !isIncomeText(v) {
			a.input.SetValue(prev)
			return a, cmd
		}
		a.recompute()
	}
	return a, cmd
}

// acceptsKey rejects typed or pasted text that would make the income
// something other than an unsigned decimal. Editing keys pass through.
func (a App) acceptsKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeySpace:
		return false
	case tea.KeyRunes:
	default:
		return true
	}

	dots := strings.Count(a.input.Value(), ".")
	for _, r := range msg.Runes {
		switch {
		case r >= '0' && r <= '9':
		case r == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// flash shows a notice in the status bar for a few seconds.
func (a App) flash(notice string) (tea.Model, tea.Cmd) {
	a.noticeID++
	a.notice = notice
	id := a.noticeID
	return a, tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return clearNoticeMsg{id: id}
	})
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.cfg = a.setupVals.apply(a.cfg)
		theme.SetActive(a.cfg.Appearance.Theme)
		a.needSetup = false
		a.setupForm = nil
		return a, tea.Batch(saveConfigCmd(a.cfg), textinput.Blink)
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, textinput.Blink
	}

	return a, cmd
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  wkbudget needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"0-9 .", "Edit weekly income"},
		{"⌫", "Delete"},
		{"^r", "Clear income"},
		{"^y", "Copy summary to clipboard"},
		{"^e", "Export chart to " + a.cfg.Chart.SVGFile},
		{"^t", "Next theme"},
		{"?", "Toggle help"},
		{"Esc", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-6s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()))
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()
	h := a.height

	statusBar := components.RenderStatusBar(w, a.notice)
	contentH := max(h-lipgloss.Height(statusBar), minContentHeight)

	sections := []string{
		a.renderHeader(cw),
		components.ContentCard("Enter your weekly income (£):", a.input.View(), cw),
		a.renderResults(cw),
	}
	if !a.alloc.IsZero() && a.cfg.TUI.ShowTips {
		sections = append(sections, a.renderTips(cw))
	}

	content := strings.Join(sections, "\n")
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.PlaceHorizontal(w, lipgloss.Center, content)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (a App) renderHeader(cw int) string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(cw).
		Align(lipgloss.Center)

	return titleStyle.Render("UK Weekly Budget Allocator") + "\n" +
		subtitleStyle.Render("Smart budgeting made simple. Follow the 50/30/20 rule to manage your weekly finances.")
}

// renderResults lays the bucket cards next to the chart, or stacks them
// in compact layouts.
func (a App) renderResults(cw int) string {
	if a.isCompactLayout() {
		return a.renderBucketCards(cw) + "\n" + a.renderChart(cw, 0)
	}

	widths := components.LayoutRow(cw, 2)
	cards := a.renderBucketCards(widths[0])
	// Match the chart card to the card column so the row looks even.
	chartCard := a.renderChart(widths[1], lipgloss.Height(cards)-2)
	return components.CardRow([]string{cards, chartCard})
}

func (a App) renderBucketCards(width int) string {
	t := theme.Active

	cards := make([]string, 0, len(budget.Buckets))
	for _, bucket := range budget.Buckets {
		cards = append(cards, components.RenderBucketCard(components.BucketCard{
			Title:       bucket.Title(),
			Share:       cli.FormatShare(bucket.Percent()),
			Amount:      cli.FormatCurrency(a.alloc.Amount(bucket)),
			Description: bucket.Description(),
			Fraction:    bucket.Share(),
			Color:       t.BucketColor(bucket),
		}, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderChart draws the pie, or the placeholder when there is no income.
// innerHeight pads the card to a fixed height when positive.
func (a App) renderChart(width, innerHeight int) string {
	t := theme.Active

	if len(a.slices) == 0 {
		return components.PlaceholderCard("Enter income to see chart", width, max(innerHeight, pieRadius+2))
	}

	inner := components.CardInnerWidth(width)
	center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)

	totalLabel := lipgloss.NewStyle().Foreground(t.TextMuted).Render("Total ") +
		lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(cli.FormatCurrency(a.alloc.Total()))

	body := center.Render(components.PieChart(a.slices, pieRadius)) + "\n\n" +
		center.Render(totalLabel) + "\n" +
		center.Render(components.Legend())

	card := components.ContentCard("Budget Breakdown", body, width)
	if innerHeight > 0 {
		if missing := innerHeight + 2 - lipgloss.Height(card); missing > 0 {
			card = components.ContentCard("Budget Breakdown", body+strings.Repeat("\n", missing), width)
		}
	}
	return card
}

func (a App) renderTips(cw int) string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	bodyStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	if a.isCompactLayout() {
		var b strings.Builder
		for i, bucket := range budget.Buckets {
			tip := bucket.Tip()
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(titleStyle.Foreground(t.BucketColor(bucket)).Render(tip.Title))
			b.WriteString("\n")
			b.WriteString(bodyStyle.Width(components.CardInnerWidth(cw)).Render(tip.Body))
		}
		return components.ContentCard("Budget Tips", b.String(), cw)
	}

	widths := components.LayoutRow(cw, len(budget.Buckets))
	cards := make([]string, 0, len(budget.Buckets))
	for i, bucket := range budget.Buckets {
		tip := bucket.Tip()
		body := titleStyle.Foreground(t.BucketColor(bucket)).Render(tip.Title) + "\n" +
			bodyStyle.Width(components.CardInnerWidth(widths[i])).Render(tip.Body)
		cards = append(cards, components.ContentCard("", body, widths[i]))
	}

	heading := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Bold(true).
		PaddingLeft(1).
		Render("Budget Tips")
	return heading + "\n" + components.CardRow(cards)
}

// ─── Commands ───────────────────────────────────────────────────

// exportCmd writes the SVG chart in the background.
func exportCmd(path string, a budget.Allocation) tea.Cmd {
	return func() tea.Msg {
		return ExportDoneMsg{Path: path, Err: chart.WriteSVGFile(path, a)}
	}
}

// copyCmd writes text to the system clipboard.
func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return CopyDoneMsg{Err: clipboard.WriteAll(text)}
	}
}

func saveConfigCmd(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		return ConfigSavedMsg{Err: config.Save(cfg)}
	}
}

// ─── Helpers ────────────────────────────────────────────────────

// SanitizeIncome returns s as the income field would hold it, or "" if the
// field would not accept it.
func SanitizeIncome(s string) string {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "£"))
	if !isIncomeText(s) {
		return ""
	}
	return s
}

// isIncomeText reports whether s is something the income field may hold:
// digits with at most one decimal point, within the character limit.
func isIncomeText(s string) bool {
	if len(s) > incomeCharLimit || strings.Count(s, ".") > 1 {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
