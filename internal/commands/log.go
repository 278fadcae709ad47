package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfw-dev/pfw/internal/auditlog"
)

func newLogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show the activity log of mutating commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadRuntime(cmd)
			if err != nil {
				return err
			}

			entries, err := auditlog.Read(cfg.Store.Dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No activity recorded")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "Timestamp\tAction\tRow\tDetails")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Timestamp.Format(time.RFC3339), e.Action, e.Row, e.Details)
			}
			return tw.Flush()
		},
	}
}
