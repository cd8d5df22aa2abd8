// Package table provides an in-memory tabular table with ordered column
// labels and indexed rows. Importing it registers the package as the
// table-construction capability used by schema.MakeEmptyTable.
package table

import (
	"errors"
	"fmt"

	"github.com/hsaito/xlshape-go/pkg/xlshape/schema"
)

// ErrRowOutOfRange indicates a row index outside 0..RowCount()-1.
var ErrRowOutOfRange = errors.New("row index out of range")

// ErrColumnOutOfRange indicates a column index outside 0..len(columns)-1.
var ErrColumnOutOfRange = errors.New("column index out of range")

// ErrTooManyCells indicates an appended row wider than the table.
var ErrTooManyCells = errors.New("row has more cells than columns")

// Table holds ordered column labels and rows of cells. Empty cells are nil.
// A zero-column table is valid and can only hold empty rows.
type Table struct {
	columns []string
	rows    [][]any
}

// New creates a table with the given ordered columns and rowCount empty
// rows. The column slice is copied.
func New(columns []string, rowCount int) (*Table, error) {
	if rowCount < 0 {
		return nil, fmt.Errorf("%w: %d", schema.ErrNegativeRowCount, rowCount)
	}
	t := &Table{columns: make([]string, len(columns))}
	copy(t.columns, columns)
	t.rows = make([][]any, rowCount)
	for i := range t.rows {
		t.rows[i] = make([]any, len(columns))
	}
	return t, nil
}

// Columns returns a copy of the ordered column labels.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Row returns a copy of the cells of row i, or nil if i is out of range.
func (t *Table) Row(i int) []any {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	out := make([]any, len(t.rows[i]))
	copy(out, t.rows[i])
	return out
}

// Get returns the cell at (row, col). Empty cells are nil.
func (t *Table) Get(row, col int) (any, error) {
	if row < 0 || row >= len(t.rows) {
		return nil, fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}
	if col < 0 || col >= len(t.columns) {
		return nil, fmt.Errorf("%w: %d", ErrColumnOutOfRange, col)
	}
	return t.rows[row][col], nil
}

// Set stores v in the cell at (row, col).
func (t *Table) Set(row, col int, v any) error {
	if row < 0 || row >= len(t.rows) {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}
	if col < 0 || col >= len(t.columns) {
		return fmt.Errorf("%w: %d", ErrColumnOutOfRange, col)
	}
	t.rows[row][col] = v
	return nil
}

// AppendRow adds a row holding the given cells. Rows shorter than the
// column count are padded with empty cells; longer rows are rejected.
func (t *Table) AppendRow(cells ...any) error {
	if len(cells) > len(t.columns) {
		return fmt.Errorf("%w: got %d, table has %d", ErrTooManyCells, len(cells), len(t.columns))
	}
	row := make([]any, len(t.columns))
	copy(row, cells)
	t.rows = append(t.rows, row)
	return nil
}

// ColumnIndex returns the index of the first column with the given label.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// Factory builds Tables and satisfies the schema.Factory capability.
type Factory struct{}

// NewTable implements schema.Factory.
func (Factory) NewTable(columns []string, rowCount int) (schema.Table, error) {
	return New(columns, rowCount)
}

func init() {
	schema.RegisterFactory(Factory{})
}
