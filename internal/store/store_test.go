package store

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pfw-dev/pfw/internal/config"
	"github.com/pfw-dev/pfw/internal/model"
)

func newTestStore(t *testing.T) (config.Config, *Store) {
	t.Helper()
	cfg := config.Default()
	cfg.Store.Dir = t.TempDir()
	return cfg, New(cfg)
}

func TestEnsure_CreatesWorkbookWithHeader(t *testing.T) {
	cfg, st := newTestStore(t)
	require.NoError(t, st.Ensure())

	_, err := os.Stat(cfg.Path())
	require.NoError(t, err)

	f, err := excelize.OpenFile(cfg.Path())
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(cfg.Store.Sheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, model.Columns, rows[0])
}

func TestEnsure_Idempotent(t *testing.T) {
	_, st := newTestStore(t)
	require.NoError(t, st.Ensure())

	require.NoError(t, st.Append(model.BuildFields("Income", "100", "", "salary")))

	// A second Ensure must not recreate the workbook.
	require.NoError(t, st.Ensure())

	table, err := st.Load()
	require.NoError(t, err)
	assert.Len(t, table, 1)
}

func TestRoundTrip(t *testing.T) {
	_, st := newTestStore(t)
	require.NoError(t, st.Ensure())

	fields := model.BuildFields("Income", "1500.50", "2024-05-01", "salary")
	fields[model.ColCreatedAt] = "2024-05-01 09:30:00"
	require.NoError(t, st.Append(fields))

	table, err := st.Load()
	require.NoError(t, err)
	require.Len(t, table, 1)

	rec := table[0]
	assert.Equal(t, model.CategoryIncome, rec.Category)
	assert.True(t, rec.HasAmount())
	assert.Equal(t, "1500.50", rec.Field(model.ColAmount), "amount cell text round-trips unchanged")
	assert.Equal(t, "1500.5", rec.Amount.String())
	assert.Equal(t, "2024-05-01", rec.Date.Format(model.DateFormat))
	assert.Equal(t, "salary", rec.Description)
	assert.Equal(t, "2024-05-01 09:30:00", rec.CreatedAt.Format(model.TimestampFormat))
	assert.True(t, rec.UpdatedAt.IsZero())
}

func TestAppend_Order(t *testing.T) {
	_, st := newTestStore(t)
	require.NoError(t, st.Ensure())

	require.NoError(t, st.Append(model.BuildFields("Income", "1", "", "first")))
	require.NoError(t, st.Append(model.BuildFields("Expense", "2", "", "second")))

	table, err := st.Load()
	require.NoError(t, err)
	require.Len(t, table, 2)
	assert.Equal(t, "first", table[0].Description)
	assert.Equal(t, "second", table[1].Description)
}

func TestUpdate_PreservesOtherColumns(t *testing.T) {
	_, st := newTestStore(t)
	require.NoError(t, st.Ensure())

	require.NoError(t, st.Append(model.BuildFields("Income", "100", "2024-05-01", "salary")))

	update := model.BuildFields("", "200", "", "")
	update[model.ColUpdatedAt] = "2024-06-01 12:00:00"
	require.NoError(t, st.Update(update, 0))

	table, err := st.Load()
	require.NoError(t, err)
	require.Len(t, table, 1)

	rec := table[0]
	assert.Equal(t, "200", rec.Amount.String())
	assert.Equal(t, model.CategoryIncome, rec.Category, "untouched column keeps its value")
	assert.Equal(t, "salary", rec.Description)
	assert.Equal(t, "2024-06-01 12:00:00", rec.UpdatedAt.Format(model.TimestampFormat))
}

func TestUpdate_NegativeIndex(t *testing.T) {
	_, st := newTestStore(t)
	require.NoError(t, st.Ensure())

	err := st.Update(model.BuildFields("", "1", "", ""), -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestWrite_UnknownColumn(t *testing.T) {
	_, st := newTestStore(t)
	require.NoError(t, st.Ensure())

	err := st.Append(model.Fields{"Nope": "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown column")
}

func TestLoad_HeaderMismatch(t *testing.T) {
	cfg, st := newTestStore(t)
	require.NoError(t, st.Ensure())

	// Corrupt the header.
	f, err := excelize.OpenFile(cfg.Path())
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue(cfg.Store.Sheet, "B1", "Total"))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	_, err = st.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHeaderMismatch)
}

func TestLoad_BadAmountCell(t *testing.T) {
	cfg, st := newTestStore(t)
	require.NoError(t, st.Ensure())

	f, err := excelize.OpenFile(cfg.Path())
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue(cfg.Store.Sheet, "A2", "Income"))
	require.NoError(t, f.SetCellValue(cfg.Store.Sheet, "B2", "lots"))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	_, err = st.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestLoad_MissingFile(t *testing.T) {
	_, st := newTestStore(t)

	_, err := st.Load()
	require.Error(t, err)
}
