// Package importer turns bank statement CSV exports into ledger records.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pfw-dev/pfw/internal/model"
)

// Transaction is one parsed statement row. Amount keeps the bank's sign:
// negative is money out, positive is money in.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// Parser converts a statement CSV file into Transactions.
type Parser interface {
	Parse(r io.Reader) ([]Transaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// FileInfo describes a CSV file in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names.
func (r *Registry) Formats() []string {
	var names []string
	for k := range r.parsers {
		names = append(names, k)
	}
	return names
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	return r
}

// ToFields converts a Transaction to the field map of one ledger record:
// the sign picks the category and the stored amount is the magnitude.
func ToFields(txn Transaction) model.Fields {
	category := model.CategoryIncome
	if txn.Amount.IsNegative() {
		category = model.CategoryExpense
	}
	return model.BuildFields(
		string(category),
		txn.Amount.Abs().String(),
		txn.Date.Format(model.DateFormat),
		txn.Description,
	)
}

// importDir is the subdirectory of the store dir holding pending CSVs.
const importDir = "import"

// processedDir is where imported CSVs are moved afterwards.
const processedDir = "import/processed"

// Scan returns CSV files in <storeDir>/import/.
func Scan(storeDir string) ([]FileInfo, error) {
	dir := filepath.Join(storeDir, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MarkProcessed moves a file from import/ to import/processed/.
func MarkProcessed(storeDir, fileName string) error {
	src := filepath.Join(storeDir, importDir, fileName)
	dstDir := filepath.Join(storeDir, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
