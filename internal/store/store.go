// Package store persists the ledger table to a spreadsheet workbook.
//
// The whole sheet is read into memory for every query and rewritten in
// full for every mutation. There is no locking against concurrent
// invocations and no partial-write recovery.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/pfw-dev/pfw/internal/config"
	"github.com/pfw-dev/pfw/internal/model"
)

// ErrHeaderMismatch reports a workbook whose header row does not match the
// schema columns.
var ErrHeaderMismatch = errors.New("header row does not match schema")

// Store is the spreadsheet-backed storage adapter.
type Store struct {
	dir   string
	path  string
	sheet string
}

// New creates a Store from the runtime configuration.
func New(cfg config.Config) *Store {
	return &Store{dir: cfg.Store.Dir, path: cfg.Path(), sheet: cfg.Store.Sheet}
}

// Path returns the workbook path.
func (s *Store) Path() string { return s.path }

// Ensure creates the store directory and an empty workbook with the header
// row if they do not exist yet. Safe to call on every startup.
func (s *Store) Ensure() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating store dir: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat store: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), s.sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]any, len(model.Columns))
	for i, col := range model.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(s.sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("creating store: %w", err)
	}
	return nil
}

// Load reads the full sheet into a Table. The header row must equal the
// schema columns exactly and in order.
func (s *Store) Load() (model.Table, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", s.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(s.sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", s.sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s: %w", s.sheet, ErrHeaderMismatch)
	}

	if err := checkHeader(rows[0]); err != nil {
		return nil, fmt.Errorf("sheet %s: %w", s.sheet, err)
	}

	var table model.Table
	for i, row := range rows[1:] {
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		table = append(table, rec)
	}
	return table, nil
}

// Append writes the supplied fields as a new row after the last one.
func (s *Store) Append(fields model.Fields) error {
	return s.write(fields, -1)
}

// Update writes the supplied fields into the row at the given 0-based data
// index, leaving all other columns of that row untouched. Row position is
// the record's only identity; it is not a stable key if rows are ever
// reordered or deleted.
func (s *Store) Update(fields model.Fields, index int) error {
	if index < 0 {
		return fmt.Errorf("index %d out of range", index)
	}
	return s.write(fields, index)
}

// write performs the full read-modify-write cycle shared by Append and
// Update. index < 0 means append after the last row.
func (s *Store) write(fields model.Fields, index int) error {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("opening store %s: %w", s.path, err)
	}
	defer f.Close()

	row := index + 2 // skip header, 0-based index -> 1-based row
	if index < 0 {
		rows, err := f.GetRows(s.sheet)
		if err != nil {
			return fmt.Errorf("reading sheet %s: %w", s.sheet, err)
		}
		row = len(rows) + 1
	}

	for name, value := range fields {
		col := model.ColumnIndex(name)
		if col == 0 {
			return fmt.Errorf("unknown column %q", name)
		}
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return fmt.Errorf("resolving cell: %w", err)
		}
		if err := f.SetCellValue(s.sheet, cell, value); err != nil {
			return fmt.Errorf("writing %s: %w", cell, err)
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("saving store: %w", err)
	}
	return nil
}

func checkHeader(header []string) error {
	if len(header) != len(model.Columns) {
		return fmt.Errorf("%w: expected %d columns, got %d", ErrHeaderMismatch, len(model.Columns), len(header))
	}
	for i, col := range model.Columns {
		if header[i] != col {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrHeaderMismatch, i+1, header[i], col)
		}
	}
	return nil
}

func parseRow(row []string) (model.Record, error) {
	// Trailing blank cells are not returned by the reader; pad them.
	cells := make([]string, len(model.Columns))
	copy(cells, row)

	rec := model.Record{
		Category:    model.Category(cells[0]),
		Description: cells[3],
	}

	var err error
	if cells[1] != "" {
		rec.Amount, err = decimal.NewFromString(cells[1])
		if err != nil {
			return model.Record{}, fmt.Errorf("parsing amount %q: %w", cells[1], err)
		}
		rec.AmountRaw = cells[1]
	}

	if cells[2] != "" {
		rec.Date, err = time.Parse(model.DateFormat, cells[2])
		if err != nil {
			return model.Record{}, fmt.Errorf("parsing date %q: %w", cells[2], err)
		}
	}

	if cells[4] != "" {
		rec.CreatedAt, err = time.Parse(model.TimestampFormat, cells[4])
		if err != nil {
			return model.Record{}, fmt.Errorf("parsing created at %q: %w", cells[4], err)
		}
	}

	if cells[5] != "" {
		rec.UpdatedAt, err = time.Parse(model.TimestampFormat, cells[5])
		if err != nil {
			return model.Record{}, fmt.Errorf("parsing updated at %q: %w", cells[5], err)
		}
	}

	return rec, nil
}
