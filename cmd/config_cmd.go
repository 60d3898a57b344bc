package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/wkbudget/internal/cli"
	"github.com/theirongolddev/wkbudget/internal/config"
	"github.com/theirongolddev/wkbudget/internal/tui/theme"

	"github.com/spf13/cobra"
)

// configLabelWidth fits the longest label in the config listing.
const configLabelWidth = 10

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	sections := []struct {
		name string
		rows [][2]string
	}{
		{"Appearance", [][2]string{
			{"Theme:", cfg.Appearance.Theme},
			{"Available:", strings.Join(theme.Names(), ", ")},
		}},
		{"Chart", [][2]string{
			{"SVG file:", cfg.Chart.SVGFile},
		}},
		{"TUI", [][2]string{
			{"Show tips:", strconv.FormatBool(cfg.TUI.ShowTips)},
		}},
		{"Currency", [][2]string{
			{"Code:", cli.CurrencyCode},
			{"Locale:", cli.Locale},
		}},
	}
	for _, sec := range sections {
		fmt.Fprintf(out, "  [%s]\n", sec.name)
		for _, row := range sec.rows {
			fmt.Fprintln(out, "  "+cli.RenderKeyValue(row[0], row[1], configLabelWidth))
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "  Run `wkbudget setup` to reconfigure.")
	return nil
}
