package query

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfw-dev/pfw/internal/model"
)

func rec(category, amount, desc string) model.Record {
	r := model.Record{Category: model.Category(category), Description: desc}
	if amount != "" {
		r.Amount = decimal.RequireFromString(amount)
		r.AmountRaw = amount
	}
	return r
}

func TestFilterView_EmptyConditions(t *testing.T) {
	table := model.Table{rec("Income", "100", "a"), rec("Expense", "40", "b")}

	got := FilterView(table, Conditions{})
	assert.Equal(t, table, got, "empty conditions keep the full table")
}

func TestFilterView_Pure(t *testing.T) {
	table := model.Table{rec("Income", "100", "a"), rec("Expense", "40", "b")}

	got := FilterView(table, Conditions{model.ColCategory: "Income"})
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Description)
	assert.Len(t, table, 2, "source table must be untouched")
}

func TestFilterView_ConditionsAreConjunctive(t *testing.T) {
	table := model.Table{
		rec("Income", "100", "salary"),
		rec("Income", "50", "gift"),
		rec("Expense", "100", "rent"),
	}

	got := FilterView(table, Conditions{
		model.ColCategory: "Income",
		model.ColAmount:   "100",
	})
	require.Len(t, got, 1)
	assert.Equal(t, "salary", got[0].Description)
}

func TestFilterView_CategoryPartition(t *testing.T) {
	table := model.Table{
		rec("Income", "1", "a"),
		rec("Expense", "2", "b"),
		rec("Income", "3", "c"),
		rec("Other", "4", "d"), // belongs to neither side
	}

	income := FilterView(table, Conditions{model.ColCategory: "Income"})
	expense := FilterView(table, Conditions{model.ColCategory: "Expense"})

	assert.Len(t, income, 2)
	assert.Len(t, expense, 1)
	assert.Equal(t, len(table)-1, len(income)+len(expense),
		"the two categories partition exactly the rows holding an allowed value")
}

func TestFilterView_AmountMatchesCellText(t *testing.T) {
	// "100.00" must stay searchable as written, not as a normalized
	// decimal.
	table := model.Table{rec("Income", "100.00", "salary")}

	got := FilterView(table, Conditions{model.ColAmount: "100.00"})
	require.Len(t, got, 1)
	assert.Equal(t, "100.00", got[0].Field(model.ColAmount))

	assert.Empty(t, FilterView(table, Conditions{model.ColAmount: "100"}),
		"a different spelling of the amount is a different cell value")
}

func TestRetainMatching(t *testing.T) {
	table := model.Table{
		rec("Expense", "10", "a"),
		rec("Income", "20", "b"),
		rec("Expense", "30", "c"),
	}

	RetainMatching(&table, Conditions{model.ColCategory: "Expense"})
	require.Len(t, table, 2)
	assert.Equal(t, "a", table[0].Description)
	assert.Equal(t, "c", table[1].Description)
}

func TestRetainMatching_EmptyConditions(t *testing.T) {
	table := model.Table{rec("Income", "100", "a")}
	RetainMatching(&table, Conditions{})
	assert.Len(t, table, 1)
}

func TestRetainMatching_NoMatches(t *testing.T) {
	table := model.Table{rec("Income", "100", "a")}
	RetainMatching(&table, Conditions{model.ColDescription: "missing"})
	assert.Empty(t, table)
}
