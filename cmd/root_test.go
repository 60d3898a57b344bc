package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/wkbudget/internal/budget"
	"github.com/theirongolddev/wkbudget/internal/cli"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsZeroAmount(t *testing.T) {
	for _, raw := range []string{"", "  ", "0", "£0", "0.00", "-0"} {
		assert.True(t, isZeroAmount(raw), "%q", raw)
	}
	for _, raw := range []string{"abc", "12", "1,000", "-5"} {
		assert.False(t, isZeroAmount(raw), "%q", raw)
	}
}

func TestAllocationFromArgsWarnsOnBadIncome(t *testing.T) {
	var stderr bytes.Buffer
	c := &cobra.Command{}
	c.SetErr(&stderr)

	a := allocationFromArgs(c, []string{"abc"})
	assert.True(t, a.IsZero())
	assert.Contains(t, stderr.String(), `income "abc" is not a valid amount`)

	stderr.Reset()
	a = allocationFromArgs(c, []string{"£200"})
	assert.Equal(t, 100.0, a.Essentials)
	assert.Empty(t, stderr.String())

	a = allocationFromArgs(c, nil)
	assert.True(t, a.IsZero())
	assert.Empty(t, stderr.String())
}

func TestSplitJSON(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"split", "1000", "--json"})
	t.Cleanup(func() {
		flagJSON = false
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	var got cli.JSONSummary
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, 1000.0, got.Income)
	assert.Equal(t, 500.0, got.Essentials)
	assert.Equal(t, 300.0, got.Wants)
	assert.Equal(t, 200.0, got.Savings)
	assert.Equal(t, "£200.00", got.Formatted["savings"])
}

func TestChartToStdout(t *testing.T) {
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"chart", "0"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, stdout.String(), "<svg")
	assert.Contains(t, stdout.String(), "Enter income to see chart")
}

func TestRuleMarkdown(t *testing.T) {
	md := ruleMarkdown(budget.Allocation{})
	assert.Contains(t, md, "| Essentials | 50% |")
	assert.Contains(t, md, "Save Consistently")
	assert.NotContains(t, md, "Your week")

	md = ruleMarkdown(budget.Allocate(100))
	assert.Contains(t, md, "## Your week: £100.00")
	assert.Contains(t, md, "- **Wants**: £30.00")
}

func TestUnknownThemeIsRejected(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	flagTheme = "neon"
	t.Cleanup(func() { flagTheme = "" })

	_, err := loadConfig(&cobra.Command{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown theme "neon"`)
}

func TestRootPrintsSplitByDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"1000"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, execute())

	out := stdout.String()
	assert.Contains(t, out, "WEEKLY BUDGET")
	assert.Contains(t, out, "£500.00")
	assert.Contains(t, out, "£300.00")
	assert.Contains(t, out, "£200.00")
	assert.Contains(t, out, "£1,000.00")
	assert.Contains(t, out, "Budget Tips")
}

func TestSplitWithoutIncomeShowsPlaceholder(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"split"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, execute())

	out := stdout.String()
	assert.Contains(t, out, "£0.00")
	assert.Contains(t, out, "Enter income to see chart")
	assert.NotContains(t, out, "Budget Tips")
}

func TestConfigListsEffectiveSettings(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"config"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, execute())

	out := stdout.String()
	assert.Contains(t, out, "using defaults")
	assert.Contains(t, out, "[Appearance]")
	assert.Contains(t, out, "Theme:")
	assert.Contains(t, out, "flexoki-dark")
	assert.Contains(t, out, "budget.svg")
	assert.Contains(t, out, "GBP")
}

func TestPrefillIncomeWarnsWhenDropped(t *testing.T) {
	var stderr bytes.Buffer
	c := &cobra.Command{}
	c.SetErr(&stderr)

	assert.Equal(t, "250", prefillIncome(c, []string{"£250"}))
	assert.Empty(t, stderr.String())

	assert.Equal(t, "", prefillIncome(c, []string{"abc"}))
	assert.Contains(t, stderr.String(), `income "abc" is not a valid amount`)

	stderr.Reset()
	assert.Equal(t, "", prefillIncome(c, nil))
	assert.Empty(t, stderr.String())
}

func TestDebugLogClosedWhenCommandFails(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "debug.log")

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--debug-log", path, "--theme", "neon", "split", "5"})
	t.Cleanup(func() {
		flagTheme = ""
		flagDebugLog = ""
		rootCmd.SetArgs(nil)
	})

	err := execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown theme "neon"`)
	assert.Nil(t, logFile)
	assert.FileExists(t, path)
}
