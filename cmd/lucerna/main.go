package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/modoterra/lucerna/internal/buildinfo"
	"github.com/modoterra/lucerna/pkg/console"
	"github.com/modoterra/lucerna/pkg/core"
	"github.com/modoterra/lucerna/pkg/settings"
	tuimodel "github.com/modoterra/lucerna/pkg/tui/model"
)

var settingsPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lucerna",
	Short: "Console log decoration preview and settings tool",
	Long:  "Lucerna decorates console output with caller, severity and timestamp prefixes. The root command opens an interactive theme preview; subcommands manage the settings file.",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "settings file path (default: per-user lucerna.yaml)")

	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func resolvePath() string {
	if settingsPath != "" {
		return settingsPath
	}
	return settings.DefaultPath()
}

// --- Root: TUI ---

func runTUI(_ *cobra.Command, _ []string) error {
	cfg := settings.Effective(resolvePath())
	app := tuimodel.New(cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// --- Sample ---

var sampleTheme string

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print one decorated sample line per level",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := settings.Effective(resolvePath())
		if sampleTheme != "" {
			cfg.Theme = core.Theme(sampleTheme)
		}

		l := console.New(
			console.WithConfig(cfg),
			console.WithSink(console.NewConsoleSink(os.Stdout)),
		)
		l.Log("ready to serve")
		l.Info("listening on :8080")
		l.Warning("cache miss rate above 20%")
		l.Error("upstream timed out")
		l.Debug("retry scheduled in 250ms")
		return nil
	},
}

func init() {
	sampleCmd.Flags().StringVar(&sampleTheme, "theme", "", "override theme (dark, light, neon, minimal)")
}

// --- Config ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the lucerna.yaml settings file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a commented default settings file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := resolvePath()
		if len(args) > 0 {
			path = args[0]
		}
		if err := settings.WriteDefault(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a settings file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := resolvePath()
		if len(args) > 0 {
			path = args[0]
		}

		o, err := settings.Load(path)
		if err != nil {
			return err
		}

		errs := settings.Validate(o)
		if len(errs) == 0 {
			fmt.Printf("%s: valid\n", path)
			return nil
		}

		fmt.Fprintf(os.Stderr, "%s: %d error(s)\n", path, len(errs))
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  • %s\n", e)
		}
		os.Exit(1)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
}

// --- Version ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("lucerna %s (%s) built %s\n", buildinfo.Version, buildinfo.Commit, buildinfo.Date)
	},
}
