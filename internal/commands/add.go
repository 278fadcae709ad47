package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfw-dev/pfw/internal/auditlog"
	"github.com/pfw-dev/pfw/internal/model"
)

func newAddCommand() *cobra.Command {
	var opts recordOptions

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an income or expense record",
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
			if _, ok := fields[model.ColAmount]; !ok {
				return fmt.Errorf("an amount is required to add a record")
			}

			now := time.Now()
			fields[model.ColCreatedAt] = now.Format(model.TimestampFormat)

			if err := st.Append(fields); err != nil {
				return err
			}

			if err := auditlog.Append(cfg.Store.Dir, []auditlog.Entry{{
				Timestamp: now,
				Action:    "add",
				Details:   fields.String(),
			}}); err != nil {
				return err
			}

			if err := maybeSnapshot(cfg, "add: "+fields.String()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added record:\n%s\n", fields)
			return nil
		},
	}

	addRecordFlags(cmd, &opts)
	return cmd
}
