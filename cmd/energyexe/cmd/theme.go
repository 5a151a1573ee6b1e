package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/energyexe/dashboard/internal/prefs"
	"github.com/energyexe/dashboard/internal/ui"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the theme and light/dark mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showTheme(cmd.Context())
	},
}

var themeSetCmd = &cobra.Command{
	Use:       "set <theme>",
	Short:     "Switch the theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: themeNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := prefs.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		if err := ctrl.SetTheme(prefs.Theme(args[0])); err != nil {
			return fmt.Errorf("%w (available: %s)", err, strings.Join(themeNames(), ", "))
		}
		return showTheme(cmd.Context())
	},
}

var themeModeCmd = &cobra.Command{
	Use:       "mode <light|dark>",
	Short:     "Switch between light and dark mode",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(prefs.ModeLight), string(prefs.ModeDark)},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := prefs.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		if err := ctrl.SetMode(prefs.Mode(args[0])); err != nil {
			return err
		}
		return showTheme(cmd.Context())
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip between light and dark mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := prefs.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		ctrl.ToggleMode()
		return showTheme(cmd.Context())
	},
}

var themeWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow preference changes made by other energyexe processes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		ctrl, err := prefs.FromContext(ctx)
		if err != nil {
			return err
		}
		kv, ok := prefsKV.(*prefs.FileKV)
		if !ok {
			return fmt.Errorf("theme watch needs a preferences file (not available with --ephemeral)")
		}

		if err := showTheme(ctx); err != nil {
			return err
		}
		logger.Info("watching preferences", "path", kv.Path())

		unsubscribe := ctrl.Subscribe(func(s prefs.State) {
			fmt.Println(stateLine(s))
		})
		defer unsubscribe()

		return kv.Watch(ctx, func() { ctrl.Reload() })
	},
}

func init() {
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeModeCmd)
	themeCmd.AddCommand(themeToggleCmd)
	themeCmd.AddCommand(themeWatchCmd)
}

func themeNames() []string {
	themes := prefs.Themes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = string(t)
	}
	return names
}

func showTheme(ctx context.Context) error {
	ctrl, err := prefs.FromContext(ctx)
	if err != nil {
		return err
	}

	ui.StartScreen("THEME", "Presentation preferences")
	fmt.Println(stateLine(ctrl.State()))
	fmt.Println(ui.MutedStyle.Render("root classes: " + strings.Join(styleRoot.Classes(), " ")))
	fmt.Println()
	fmt.Println(ui.CardGrid(ui.Width(),
		ui.Card("Preview", "1.25 GW", "palette "+ui.ActivePalette().Name),
		ui.Card("Status", ui.Badge("operational"), ""),
	))
	return nil
}

func stateLine(s prefs.State) string {
	return fmt.Sprintf("%s %s  %s %s",
		ui.MutedStyle.Render("theme"), ui.Bold.Render(string(s.Theme)),
		ui.MutedStyle.Render("mode"), ui.Bold.Render(string(s.Mode)),
	)
}
