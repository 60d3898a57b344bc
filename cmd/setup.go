package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/wkbudget/internal/config"
	"github.com/theirongolddev/wkbudget/internal/notify"
	"github.com/theirongolddev/wkbudget/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cfg, err = tui.RunSetup(cfg)
	if errors.Is(err, huh.ErrUserAborted) {
		notify.Infof(cmd.ErrOrStderr(), "Setup cancelled; nothing saved")
		return nil
	}
	if err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	notify.Successf(cmd.ErrOrStderr(), "Saved to %s", config.Path())
	notify.Infof(cmd.ErrOrStderr(), "Run `wkbudget setup` anytime to reconfigure.")
	return nil
}
