package cmd

import (
	"fmt"

	"github.com/theirongolddev/wkbudget/internal/chart"
	"github.com/theirongolddev/wkbudget/internal/notify"

	"github.com/spf13/cobra"
)

var flagOutput string

var chartCmd = &cobra.Command{
	Use:   "chart [income]",
	Short: "Write the allocation as an SVG pie chart",
	Example: `  wkbudget chart 450 > budget.svg
  wkbudget chart 450 -o charts/week.svg`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	a := allocationFromArgs(cmd, args)

	if flagOutput == "" {
		if err := chart.WriteSVG(cmd.OutOrStdout(), a); err != nil {
			return fmt.Errorf("writing chart: %w", err)
		}
		return nil
	}

	if err := chart.WriteSVGFile(flagOutput, a); err != nil {
		return err
	}
	notify.Successf(cmd.ErrOrStderr(), "Wrote chart to %s", flagOutput)
	return nil
}
