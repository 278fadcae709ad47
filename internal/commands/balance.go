package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pfw-dev/pfw/internal/query"
)

func newBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the current balance with income and expense totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadRuntime(cmd)
			if err != nil {
				return err
			}

			table, err := st.Load()
			if err != nil {
				return err
			}

			bal, err := query.ComputeBalance(table)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Current balance: %s\n", bal.Balance)
			fmt.Fprintln(out, "-------------------")
			fmt.Fprintf(out, "Income:  %s\n", bal.Income)
			fmt.Fprintf(out, "Expense: %s\n", bal.Expense)
			if bal.Expense.GreaterThan(bal.Income) {
				fmt.Fprintln(out, "Warning: expenses exceed income")
			}
			return nil
		},
	}
}
