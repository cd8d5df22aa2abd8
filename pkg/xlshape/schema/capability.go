package schema

import "sync"

// providerPkg is named in the ErrNoTableFactory remediation hint.
const providerPkg = "github.com/hsaito/xlshape-go/pkg/xlshape/table"

// ColumnProvider is the capability Validate probes for: an ordered list of
// column labels. Any table-like value from any tabular library qualifies by
// implementing it.
type ColumnProvider interface {
	Columns() []string
}

// Table is the minimal surface MakeEmptyTable promises about the tables it
// returns.
type Table interface {
	ColumnProvider
	RowCount() int
}

// Factory is the table-construction capability: given ordered column labels
// and a row count n, produce a table with those columns, n rows indexed
// 0..n-1, and empty cell values.
type Factory interface {
	NewTable(columns []string, rowCount int) (Table, error)
}

// ColumnList adapts a bare ordered name list to the ColumnProvider
// capability, e.g. for validating header rows read straight off a sheet.
type ColumnList []string

// Columns returns the list itself.
func (c ColumnList) Columns() []string { return c }

var (
	factoryMu sync.RWMutex
	factory   Factory
)

// RegisterFactory installs the table-construction capability used by
// MakeEmptyTable. Providers are expected to register themselves from an
// init function, in the manner of database/sql drivers; importing the
// bundled table package is sufficient.
func RegisterFactory(f Factory) {
	if f == nil {
		panic("schema: RegisterFactory called with nil factory")
	}
	factoryMu.Lock()
	defer factoryMu.Unlock()
	factory = f
}

func registeredFactory() (Factory, bool) {
	factoryMu.RLock()
	defer factoryMu.RUnlock()
	return factory, factory != nil
}
