package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/theirongolddev/wkbudget/internal/cli"

	"github.com/spf13/cobra"
)

var flagJSON bool

var splitCmd = &cobra.Command{
	Use:   "split [income]",
	Short: "Print the 50/30/20 split of a weekly income",
	Example: `  wkbudget split 450
  wkbudget split £1250.50 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().BoolVar(&flagJSON, "json", false, "Output JSON")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}

	a := allocationFromArgs(cmd, args)
	out := cmd.OutOrStdout()

	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cli.NewJSONSummary(a)); err != nil {
			return fmt.Errorf("encoding summary: %w", err)
		}
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle("WEEKLY BUDGET  50 / 30 / 20"))
	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderAllocation(a))
	return nil
}
