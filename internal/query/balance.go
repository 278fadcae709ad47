package query

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/pfw-dev/pfw/internal/model"
)

// ErrInsufficientData reports a balance request against a table with no
// rows at all. A table with rows but no Income or Expense entries is not
// an error; those totals are simply zero.
var ErrInsufficientData = errors.New("insufficient data: no income or expense records")

// Balance is the result of aggregating a table by category.
type Balance struct {
	Balance decimal.Decimal
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// ComputeBalance sums amounts by category over two independent filtered
// views of t and returns balance = income - expense.
func ComputeBalance(t model.Table) (Balance, error) {
	if len(t) == 0 {
		return Balance{}, ErrInsufficientData
	}

	income := sumAmounts(FilterView(t, Conditions{model.ColCategory: string(model.CategoryIncome)}))
	expense := sumAmounts(FilterView(t, Conditions{model.ColCategory: string(model.CategoryExpense)}))

	return Balance{
		Balance: income.Sub(expense),
		Income:  income,
		Expense: expense,
	}, nil
}

func sumAmounts(t model.Table) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range t {
		if rec.HasAmount() {
			total = total.Add(rec.Amount)
		}
	}
	return total
}
