package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pfw-dev/pfw/internal/buildinfo"
	"github.com/pfw-dev/pfw/internal/config"
	"github.com/pfw-dev/pfw/internal/gitops"
	"github.com/pfw-dev/pfw/internal/store"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "pfw",
		Short:   "Personal financial wallet",
		Long:    "pfw is a command-line ledger of income and expense records backed by a spreadsheet file.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", config.DefaultFile, "path to the pfw.yaml config file")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newBalanceCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newSearchCommand())
	rootCmd.AddCommand(newModifyCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newLogCommand())

	return rootCmd
}

// loadRuntime resolves the config and opens the store, creating it with a
// header row on first use.
func loadRuntime(cmd *cobra.Command) (config.Config, *store.Store, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, nil, err
	}

	st := store.New(cfg)
	if err := st.Ensure(); err != nil {
		return config.Config{}, nil, err
	}
	return cfg, st, nil
}

// maybeSnapshot commits the store directory after a mutation when git
// auto-commit is configured and the directory is a repository.
func maybeSnapshot(cfg config.Config, message string) error {
	if !cfg.Git.AutoCommit || !gitops.IsRepo(cfg.Store.Dir) {
		return nil
	}
	if _, err := gitops.Snapshot(cfg.Store.Dir, message, cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
		return fmt.Errorf("snapshotting store: %w", err)
	}
	return nil
}
