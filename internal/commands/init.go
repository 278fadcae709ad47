package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pfw-dev/pfw/internal/config"
	"github.com/pfw-dev/pfw/internal/gitops"
	"github.com/pfw-dev/pfw/internal/store"
)

func newInitCommand() *cobra.Command {
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set up the wallet: config file, store directory and empty spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			return runInit(cmd, path, useGit)
		},
	}

	cmd.Flags().BoolVar(&useGit, "git", false, "track the store directory in git and snapshot after mutations")
	return cmd
}

func runInit(cmd *cobra.Command, configPath string, useGit bool) error {
	cfg := config.Default()
	cfg.Git.AutoCommit = useGit

	// An existing config wins; init never overwrites it.
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := config.Save(configPath, cfg); err != nil {
			return err
		}
	} else if err != nil {
		return fmt.Errorf("stat config: %w", err)
	} else {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	dirs := []string{
		cfg.Store.Dir,
		filepath.Join(cfg.Store.Dir, "import"),
		filepath.Join(cfg.Store.Dir, "import", "processed"),
		filepath.Join(cfg.Store.Dir, "logs"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	st := store.New(cfg)
	if err := st.Ensure(); err != nil {
		return err
	}

	if useGit && !gitops.IsRepo(cfg.Store.Dir) {
		if err := gitops.Init(cfg.Store.Dir); err != nil {
			return err
		}
		if _, err := gitops.Snapshot(cfg.Store.Dir, "init: create wallet store", cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized wallet store at %s\n", st.Path())
	return nil
}
