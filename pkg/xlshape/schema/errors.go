package schema

import "errors"

// ErrNoTableFactory indicates that MakeEmptyTable was called without a
// table-construction capability registered in the process.
var ErrNoTableFactory = errors.New("no table factory registered")

// ErrNegativeRowCount indicates a negative row count passed to
// MakeEmptyTable.
var ErrNegativeRowCount = errors.New("row count must be non-negative")
