package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Fields maps column names to the cell strings to write. Only columns the
// caller explicitly supplied appear; absent columns are never defaulted.
type Fields map[string]string

// BuildFields assembles a Fields map from CLI option values. Empty values
// are omitted entirely.
func BuildFields(category, amount, date, description string) Fields {
	f := Fields{}
	if category != "" {
		f[ColCategory] = category
	}
	if amount != "" {
		f[ColAmount] = amount
	}
	if date != "" {
		f[ColDate] = date
	}
	if description != "" {
		f[ColDescription] = description
	}
	return f
}

// Values returns the field values in schema column order, for display.
func (f Fields) Values() []string {
	var vals []string
	for _, col := range Columns {
		if v, ok := f[col]; ok {
			vals = append(vals, v)
		}
	}
	return vals
}

// String joins the field values with " | " in schema column order.
func (f Fields) String() string {
	return strings.Join(f.Values(), " | ")
}

// ValidationError describes a single rejected field value.
type ValidationError struct {
	Column      string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Column, e.Description)
}

// Validate checks the supplied field values against the schema: the
// category must be an allowed value, the amount must be a decimal number,
// and the date must be in YYYY-MM-DD form. Absent fields pass.
func Validate(f Fields) []ValidationError {
	var errs []ValidationError

	if v, ok := f[ColCategory]; ok {
		valid := false
		for _, c := range Categories {
			if string(c) == v {
				valid = true
				break
			}
		}
		if !valid {
			errs = append(errs, ValidationError{
				Column:      ColCategory,
				Description: fmt.Sprintf("%q is not one of %v", v, Categories),
			})
		}
	}

	if v, ok := f[ColAmount]; ok {
		if _, err := decimal.NewFromString(v); err != nil {
			errs = append(errs, ValidationError{
				Column:      ColAmount,
				Description: fmt.Sprintf("%q is not a number", v),
			})
		}
	}

	if v, ok := f[ColDate]; ok {
		if _, err := time.Parse(DateFormat, v); err != nil {
			errs = append(errs, ValidationError{
				Column:      ColDate,
				Description: fmt.Sprintf("%q is not a %s date", v, DateFormat),
			})
		}
	}

	return errs
}
