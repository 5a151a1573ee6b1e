package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/energyexe/dashboard/internal/config"
	"github.com/energyexe/dashboard/internal/prefs"
	"github.com/energyexe/dashboard/internal/ui"
)

var (
	verbose   bool
	quiet     bool
	noColor   bool
	ephemeral bool
	cfgFile   string
	logger    *log.Logger
	cfg       *config.Config
	styleRoot *ui.Root
	prefsKV   prefs.KV
)

var rootCmd = &cobra.Command{
	Use:   "energyexe",
	Short: "Monitor a wind farm portfolio from the terminal",
	Long: `energyexe shows portfolio metrics, recently updated wind farms and
per-farm ownership from the energyexe API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadDefault()
		}
		if err != nil {
			logger.Warn("could not load config, using defaults", "error", err)
			cfg = config.DefaultConfig()
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		ctrl := newPreferenceController()
		ctrl.Subscribe(func(prefs.State) { setupLogger() })
		setupLogger()

		cmd.SetContext(prefs.WithController(cmd.Context(), ctrl))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return openPath(cmd.Context(), "/")
	},
}

// Execute runs the CLI until it finishes or is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if logger == nil {
			setupLogger()
		}
		logger.Error(err.Error())
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep preference changes in memory only")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: $XDG_CONFIG_HOME/energyexe/config.yaml)")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(windfarmCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}

// newPreferenceController builds the one controller for this process over
// the configured preference store and the terminal style root.
func newPreferenceController() *prefs.Controller {
	styleRoot = ui.NewRoot(cfg.UI.NoColor || noColor || os.Getenv("NO_COLOR") != "")
	ui.Dense = cfg.UI.Dense

	prefsKV = nil
	switch {
	case ephemeral:
		prefsKV = prefs.NewMemoryKV(nil)
	default:
		path, err := cfg.PreferencesPath()
		if err != nil {
			logger.Warn("preferences will not persist", "error", err)
			break
		}
		prefsKV = prefs.NewFileKV(path)
	}

	opts := []prefs.Option{prefs.WithLogger(logger)}
	if t, ok := prefs.ParseTheme(cfg.UI.DefaultTheme); ok {
		opts = append(opts, prefs.WithDefaultTheme(t))
	}
	if m, ok := prefs.ParseMode(cfg.UI.DefaultMode); ok {
		opts = append(opts, prefs.WithDefaultMode(m))
	}
	return prefs.New(prefs.NewStore(prefsKV, logger), styleRoot, opts...)
}

func setupLogger() {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.WarnLevel
	}

	styles := log.DefaultStyles()
	if !ui.ActivePalette().Disabled && !noColor && os.Getenv("NO_COLOR") == "" {
		styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
			SetString("DEBUG").
			Foreground(ui.Muted).
			Bold(true)
		styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
			SetString("INFO").
			Foreground(ui.Primary).
			Bold(true)
		styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
			SetString("WARN").
			Foreground(ui.Warning).
			Bold(true)
		styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
			SetString("ERROR").
			Foreground(ui.Error).
			Bold(true)
	}

	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: verbose,
			TimeFormat:      time.Kitchen,
		})
	}
	logger.SetLevel(level)
	logger.SetReportTimestamp(verbose)
	logger.SetStyles(styles)
}
