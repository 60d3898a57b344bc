package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/wkbudget/internal/config"
	"github.com/theirongolddev/wkbudget/internal/notify"
	"github.com/theirongolddev/wkbudget/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [income]",
	Short: "Launch the interactive budget allocator",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(cfg, prefillIncome(cmd, args), !config.Exists())
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// prefillIncome returns the income argument as the input field will hold
// it, warning when a given argument has to be dropped.
func prefillIncome(cmd *cobra.Command, args []string) string {
	raw := incomeArg(args)
	income := tui.SanitizeIncome(raw)
	if income == "" && strings.TrimSpace(raw) != "" {
		notify.Warningf(cmd.ErrOrStderr(), "income %q is not a valid amount; starting empty", raw)
	}
	return income
}
