package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfw-dev/pfw/internal/auditlog"
	"github.com/pfw-dev/pfw/internal/model"
)

func newModifyCommand() *cobra.Command {
	var opts recordOptions
	var index int

	cmd := &cobra.Command{
		Use:   "modify",
		Short: "Update the record at a given row index in place",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := loadRuntime(cmd)
			if err != nil {
				return err
			}

			fields := opts.fields()
			if err := validateFields(fields); err != nil {
				return err
			}
			if len(fields) == 0 {
				return fmt.Errorf("nothing to modify: supply at least one field")
			}

			table, err := st.Load()
			if err != nil {
				return err
			}
			if index >= len(table) {
				return fmt.Errorf("index %d out of range: store has %d records", index, len(table))
			}

			now := time.Now()
			fields[model.ColUpdatedAt] = now.Format(model.TimestampFormat)

			if err := st.Update(fields, index); err != nil {
				return err
			}

			if err := auditlog.Append(cfg.Store.Dir, []auditlog.Entry{{
				Timestamp: now,
				Action:    "modify",
				Row:       strconv.Itoa(index),
				Details:   fields.String(),
			}}); err != nil {
				return err
			}

			if err := maybeSnapshot(cfg, fmt.Sprintf("modify: row %d", index)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated record %d:\n%s\n", index, fields)
			return nil
		},
	}

	addRecordFlags(cmd, &opts)
	cmd.Flags().IntVarP(&index, "index", "i", 0, "0-based row index of the record to update (required)")
	_ = cmd.MarkFlagRequired("index")

	return cmd
}
