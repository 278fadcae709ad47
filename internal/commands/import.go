package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfw-dev/pfw/internal/auditlog"
	"github.com/pfw-dev/pfw/internal/importer"
	"github.com/pfw-dev/pfw/internal/model"
)

func newImportCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import a bank statement CSV as ledger records",
		Long:  "Import appends one record per statement row: positive amounts become Income, negative amounts become Expense. Without a file argument it lists the CSVs waiting in the store's import/ directory.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := loadRuntime(cmd)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return listPending(cmd, cfg.Store.Dir)
			}

			registry := importer.DefaultRegistry()
			parser := registry.Get(format)
			if parser == nil {
				return fmt.Errorf("unknown format %q, available: %v", format, registry.Formats())
			}

			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("opening statement: %w", err)
			}
			txns, err := parser.Parse(f)
			f.Close()
			if err != nil {
				return fmt.Errorf("parsing statement: %w", err)
			}

			now := time.Now()
			for i, txn := range txns {
				fields := importer.ToFields(txn)
				fields[model.ColCreatedAt] = now.Format(model.TimestampFormat)
				if err := st.Append(fields); err != nil {
					return fmt.Errorf("appending row %d: %w", i+1, err)
				}
			}

			if err := auditlog.Append(cfg.Store.Dir, []auditlog.Entry{{
				Timestamp: now,
				Action:    "import",
				Details:   fmt.Sprintf("%s: %d records", filepath.Base(path), len(txns)),
			}}); err != nil {
				return err
			}

			// Files imported from the store's own import/ directory move
			// to import/processed/ so they are not imported twice.
			if inImportDir(cfg.Store.Dir, path) {
				if err := importer.MarkProcessed(cfg.Store.Dir, filepath.Base(path)); err != nil {
					return err
				}
			}

			if err := maybeSnapshot(cfg, fmt.Sprintf("import: %s", filepath.Base(path))); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records from %s\n", len(txns), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "chase", "statement format")
	return cmd
}

func listPending(cmd *cobra.Command, storeDir string) error {
	files, err := importer.Scan(storeDir)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(files) == 0 {
		fmt.Fprintln(out, "No statements waiting for import")
		return nil
	}
	for _, f := range files {
		fmt.Fprintf(out, "%s (%d bytes)\n", f.Name, f.Size)
	}
	return nil
}

func inImportDir(storeDir, path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	dir, err := filepath.Abs(filepath.Join(storeDir, "import"))
	if err != nil {
		return false
	}
	return filepath.Dir(abs) == dir
}
