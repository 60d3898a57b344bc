package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/wkbudget/internal/budget"
	"github.com/theirongolddev/wkbudget/internal/cli"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const ruleWrapWidth = 80

var ruleCmd = &cobra.Command{
	Use:   "rule [income]",
	Short: "Explain the 50/30/20 rule",
	Long:  "Explain the 50/30/20 rule. With an income, include what each bucket gets.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRule,
}

func init() {
	rootCmd.AddCommand(ruleCmd)
}

func runRule(cmd *cobra.Command, args []string) error {
	md := ruleMarkdown(allocationFromArgs(cmd, args))

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(ruleWrapWidth),
	)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// ruleMarkdown describes the rule and, for a non-zero allocation, the
// amount each bucket receives.
func ruleMarkdown(a budget.Allocation) string {
	var b strings.Builder

	b.WriteString("# The 50/30/20 rule\n\n")
	b.WriteString("Split every week's income into three buckets and spend each one only on what it is for.\n\n")

	b.WriteString("| Bucket | Share | What it covers |\n")
	b.WriteString("|---|---|---|\n")
	for _, bucket := range budget.Buckets {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", bucket.Title(), cli.FormatPercent(bucket.Share()), bucket.Description())
	}
	b.WriteString("\n")

	if !a.IsZero() {
		fmt.Fprintf(&b, "## Your week: %s\n\n", cli.FormatCurrency(a.Total()))
		for _, bucket := range budget.Buckets {
			fmt.Fprintf(&b, "- **%s**: %s\n", bucket.Title(), cli.FormatCurrency(a.Amount(bucket)))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Tips\n\n")
	for _, bucket := range budget.Buckets {
		tip := bucket.Tip()
		fmt.Fprintf(&b, "- **%s**: %s.\n", tip.Title, tip.Body)
	}
	return b.String()
}
