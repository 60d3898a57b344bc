package tui

import (
	"fmt"

	"github.com/theirongolddev/wkbudget/internal/config"
	"github.com/theirongolddev/wkbudget/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the first-run choices bound to the huh form.
type setupValues struct {
	theme    string
	showTips bool
}

func setupValuesFrom(cfg config.Config) *setupValues {
	name := cfg.Appearance.Theme
	if !theme.Valid(name) {
		name = theme.FlexokiDark.Name
	}
	return &setupValues{
		theme:    name,
		showTips: cfg.TUI.ShowTips,
	}
}

// apply copies the chosen values onto cfg.
func (v *setupValues) apply(cfg config.Config) config.Config {
	cfg.Appearance.Theme = v.theme
	cfg.TUI.ShowTips = v.showTips
	return cfg
}

func newSetupForm(vals *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to wkbudget").
				Description("Split your weekly income with the 50/30/20 rule.\nThese settings are saved to "+config.Path()+"."),

			huh.NewSelect[string]().
				Title("Color theme").
				Description("Cycle themes later with ctrl+t.").
				Options(themeOpts...).
				Value(&vals.theme),

			huh.NewConfirm().
				Title("Show budgeting tips?").
				Affirmative("Yes").
				Negative("No").
				Value(&vals.showTips),
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(true)
}

// RunSetup runs the setup form standalone and returns cfg with the choices
// applied. It returns huh.ErrUserAborted if the user cancels.
func RunSetup(cfg config.Config) (config.Config, error) {
	vals := setupValuesFrom(cfg)
	if err := newSetupForm(vals).Run(); err != nil {
		return cfg, fmt.Errorf("setup form: %w", err)
	}
	return vals.apply(cfg), nil
}
