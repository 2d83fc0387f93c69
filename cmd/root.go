package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quiztime/internal/config"
	"github.com/abhisek/quiztime/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quiztime",
	Short: "Build and take quizzes in the terminal",
	Long: "Quiztime lets you author a quiz of true/false, multiple choice and multiple select\n" +
		"questions, take it, see your grade, and retry the questions you missed.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (default $XDG_CONFIG_HOME/quiztime/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZTIME_DB env var)")

	rootCmd.Flags().Bool("no-color", false, "Disable styled output")
	rootCmd.Flags().Bool("tui", false, "Read answers with an interactive line editor")
	rootCmd.Flags().Bool("no-record", false, "Do not record results")
	rootCmd.Flags().String("retry-prompt", "", "Retry prompt policy: strict or lenient")
	rootCmd.Flags().Int("max-attempts", 0, "Give up after this many invalid answers to one prompt (0 = unlimited)")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves settings from the config file, the environment, and
// any flags set on cmd, in increasing priority.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if changed(cmd, "no-color") {
		v, _ := cmd.Flags().GetBool("no-color")
		cfg.Color = !v
	}
	if changed(cmd, "tui") {
		cfg.TUI, _ = cmd.Flags().GetBool("tui")
	}
	if changed(cmd, "no-record") {
		v, _ := cmd.Flags().GetBool("no-record")
		cfg.Record = !v
	}
	if changed(cmd, "retry-prompt") {
		cfg.RetryPrompt, _ = cmd.Flags().GetString("retry-prompt")
	}
	if changed(cmd, "max-attempts") {
		cfg.MaxAttempts, _ = cmd.Flags().GetInt("max-attempts")
	}

	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

// resolveDBPath returns the configured database path, falling back to the
// QUIZTIME_DB env var and then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore loads config and opens the results database.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
