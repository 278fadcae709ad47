package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies a ledger record.
type Category string

const (
	CategoryExpense Category = "Expense"
	CategoryIncome  Category = "Income"
)

// Categories lists the allowed category values, used for CLI flag choices.
var Categories = []Category{CategoryExpense, CategoryIncome}

// Column names, in sheet order. Row 1 of the store holds exactly these.
const (
	ColCategory    = "Category"
	ColAmount      = "Amount"
	ColDate        = "Date"
	ColDescription = "Description"
	ColCreatedAt   = "Created at"
	ColUpdatedAt   = "Updated at"
)

// Columns is the ordered header row of the store.
var Columns = []string{ColCategory, ColAmount, ColDate, ColDescription, ColCreatedAt, ColUpdatedAt}

const (
	// DateFormat is the cell format for the Date column.
	DateFormat = "2006-01-02"
	// TimestampFormat is the cell format for Created at / Updated at.
	TimestampFormat = "2006-01-02 15:04:05"
)

// ColumnIndex returns the 1-based sheet column for a column name, or 0 if
// the name is not part of the schema.
func ColumnIndex(name string) int {
	for i, c := range Columns {
		if c == name {
			return i + 1
		}
	}
	return 0
}

// Record is one ledger entry (one data row of the store).
//
// AmountRaw holds the Amount cell text exactly as stored, so "100.00"
// stays "100.00" for display and search equality; Amount is its parsed
// value for sums. A blank cell is AmountRaw == "".
type Record struct {
	Category    Category
	Amount      decimal.Decimal
	AmountRaw   string
	Date        time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasAmount reports whether the Amount cell is non-blank.
func (r Record) HasAmount() bool { return r.AmountRaw != "" }

// Table is the in-memory ordered collection of all records for one
// invocation. A record's position in the table is its identity.
type Table []Record

// Field renders the named column to its canonical cell string. Blank
// cells render as "". Unknown columns render as "".
func (r Record) Field(name string) string {
	switch name {
	case ColCategory:
		return string(r.Category)
	case ColAmount:
		return r.AmountRaw
	case ColDate:
		if r.Date.IsZero() {
			return ""
		}
		return r.Date.Format(DateFormat)
	case ColDescription:
		return r.Description
	case ColCreatedAt:
		if r.CreatedAt.IsZero() {
			return ""
		}
		return r.CreatedAt.Format(TimestampFormat)
	case ColUpdatedAt:
		if r.UpdatedAt.IsZero() {
			return ""
		}
		return r.UpdatedAt.Format(TimestampFormat)
	}
	return ""
}
