package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/energyexe/dashboard/internal/config"
	"github.com/energyexe/dashboard/internal/prefs"
	"github.com/energyexe/dashboard/internal/ui"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Configure theme, mode and layout",
	Args:  cobra.NoArgs,
	RunE:  runSettings,
}

func runSettings(cmd *cobra.Command, args []string) error {
	ctrl, err := prefs.FromContext(cmd.Context())
	if err != nil {
		return err
	}
	if !ui.IsInteractiveTerminal() {
		return fmt.Errorf("settings needs an interactive terminal; use 'energyexe theme' instead")
	}

	state := ctrl.State()
	theme := string(state.Theme)
	mode := string(state.Mode)
	dense := cfg.UI.Dense
	noColorPref := cfg.UI.NoColor

	themeOptions := make([]huh.Option[string], 0)
	for _, name := range themeNames() {
		themeOptions = append(themeOptions, huh.NewOption(name, name))
	}

	ui.StartScreen("SETTINGS", "Presentation preferences")
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOptions...).
				Value(&theme),
			huh.NewSelect[string]().
				Title("Mode").
				Options(
					huh.NewOption("Dark", string(prefs.ModeDark)),
					huh.NewOption("Light", string(prefs.ModeLight)),
				).
				Value(&mode),
			huh.NewConfirm().
				Title("Dense Layout").
				Description("Reduce vertical spacing").
				Value(&dense),
			huh.NewConfirm().
				Title("Disable Colors").
				Description("Use monochrome output").
				Value(&noColorPref),
		),
	).WithTheme(ui.HuhTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	if err := ctrl.SetTheme(prefs.Theme(theme)); err != nil {
		return err
	}
	if err := ctrl.SetMode(prefs.Mode(mode)); err != nil {
		return err
	}

	if dense != cfg.UI.Dense || noColorPref != cfg.UI.NoColor {
		cfg.UI.Dense = dense
		cfg.UI.NoColor = noColorPref
		if err := saveConfig(); err != nil {
			return err
		}
		ui.Dense = dense
		styleRoot.SetNoColor(noColorPref || noColor)
	}

	fmt.Println(ui.SuccessBox.Render(fmt.Sprintf("Preferences saved: %s / %s", theme, mode)))
	return nil
}

func saveConfig() error {
	path := cfgFile
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}
