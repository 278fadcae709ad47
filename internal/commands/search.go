package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pfw-dev/pfw/internal/model"
	"github.com/pfw-dev/pfw/internal/query"
)

func newSearchCommand() *cobra.Command {
	var opts recordOptions

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find records matching the given field values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := opts.fields()
			if err := validateFields(fields); err != nil {
				return err
			}

			_, st, err := loadRuntime(cmd)
			if err != nil {
				return err
			}

			table, err := st.Load()
			if err != nil {
				return err
			}

			// Keep each match's position in the full table: that index
			// is what modify takes.
			cond := query.Conditions(fields)
			var indices []int
			for i, rec := range table {
				if cond.Matches(rec) {
					indices = append(indices, i)
				}
			}
			query.RetainMatching(&table, cond)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Found %d records\n", len(table))
			if len(table) > 0 {
				fmt.Fprintln(out, "-------------------")
				printTable(out, table, indices)
			}
			return nil
		},
	}

	addRecordFlags(cmd, &opts)
	return cmd
}

// printTable renders records in aligned columns, each prefixed with its
// row index in the full table.
func printTable(out io.Writer, table model.Table, indices []int) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprint(tw, "#")
	for _, col := range model.Columns {
		fmt.Fprintf(tw, "\t%s", col)
	}
	fmt.Fprintln(tw)

	for i, rec := range table {
		fmt.Fprintf(tw, "%d", indices[i])
		for _, col := range model.Columns {
			fmt.Fprintf(tw, "\t%s", rec.Field(col))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}
