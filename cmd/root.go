// Package cmd implements the wkbudget CLI commands.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/theirongolddev/wkbudget/internal/budget"
	"github.com/theirongolddev/wkbudget/internal/cli"
	"github.com/theirongolddev/wkbudget/internal/config"
	"github.com/theirongolddev/wkbudget/internal/notify"
	"github.com/theirongolddev/wkbudget/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagTheme    string
	flagQuiet    bool
	flagDebugLog string
)

// logFile is the --debug-log target, closed after the command runs.
var logFile io.Closer

var rootCmd = &cobra.Command{
	Use:   "wkbudget [income]",
	Short: "Weekly 50/30/20 budget allocator",
	Long: "Split a weekly income into essentials (50%), wants (30%) and savings (20%).\n" +
		"Run without a subcommand to print the split for the given income.",
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runSplit,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := execute(); err != nil {
		notify.Errorf(os.Stderr, "%v", err)
		os.Exit(1)
	}
}

// execute runs the root command and closes the debug log whether or not
// the command succeeded.
func execute() error {
	err := rootCmd.Execute()
	if cerr := closeLogging(); err == nil {
		err = cerr
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme ("+strings.Join(theme.Names(), ", ")+")")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress notices")
	rootCmd.PersistentFlags().StringVar(&flagDebugLog, "debug-log", "", "Write debug logs to this file")
}

func setupLogging(_ *cobra.Command, _ []string) error {
	notify.Quiet = flagQuiet

	if flagDebugLog == "" {
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := tea.LogToFile(flagDebugLog, "wkbudget")
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}
	logFile = f
	return nil
}

func closeLogging() error {
	if logFile == nil {
		return nil
	}
	log.SetOutput(io.Discard)
	err := logFile.Close()
	logFile = nil
	return err
}

// loadConfig loads the config file and applies --theme.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		notify.Warningf(cmd.ErrOrStderr(), "%v; using defaults", err)
	}

	if flagTheme != "" {
		if !theme.Valid(flagTheme) {
			return cfg, fmt.Errorf("unknown theme %q (available: %s)", flagTheme, strings.Join(theme.Names(), ", "))
		}
		cfg.Appearance.Theme = flagTheme
	}

	theme.SetActive(cfg.Appearance.Theme)
	return cfg, nil
}

// incomeArg returns the optional income argument.
func incomeArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// allocationFromArgs allocates the income argument, warning when it was
// given but could not be read as an amount.
func allocationFromArgs(cmd *cobra.Command, args []string) budget.Allocation {
	raw := incomeArg(args)
	a := budget.AllocateInput(raw)
	if a.IsZero() && !isZeroAmount(raw) {
		notify.Warningf(cmd.ErrOrStderr(), "income %q is not a valid amount; using %s", raw, cli.FormatCurrency(0))
	}
	return a
}

// isZeroAmount reports whether raw is blank or a literal zero, both of
// which legitimately allocate nothing.
func isZeroAmount(raw string) bool {
	s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "£"))
	if s == "" {
		return true
	}
	d, err := decimal.NewFromString(s)
	return err == nil && d.IsZero()
}
