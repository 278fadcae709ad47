package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pfw-dev/pfw/internal/model"
)

// recordOptions holds the record field flags shared by add, search and
// modify.
type recordOptions struct {
	category    string
	amount      string
	date        string
	description string
}

func addRecordFlags(cmd *cobra.Command, opts *recordOptions) {
	cmd.Flags().StringVarP(&opts.category, "cat", "c", "", fmt.Sprintf("record category, one of %v", model.Categories))
	cmd.Flags().StringVarP(&opts.amount, "amount", "a", "", "record amount")
	cmd.Flags().StringVar(&opts.date, "date", "", "record date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&opts.description, "desc", "d", "", "record description")
}

// fields builds the field map from the supplied options. Flags the user
// did not set are absent from the map, never defaulted.
func (o recordOptions) fields() model.Fields {
	return model.BuildFields(o.category, o.amount, o.date, o.description)
}

// validateFields rejects bad category, amount or date values with one
// combined error.
func validateFields(fields model.Fields) error {
	verrs := model.Validate(fields)
	if len(verrs) == 0 {
		return nil
	}
	msgs := make([]string, len(verrs))
	for i, ve := range verrs {
		msgs[i] = ve.Error()
	}
	return fmt.Errorf("invalid field values: %s", strings.Join(msgs, "; "))
}
