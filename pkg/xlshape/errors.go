package xlshape

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound indicates the requested sheet does not exist in the
// workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrEmptyHeader indicates no header columns were found in the requested
// region.
var ErrEmptyHeader = errors.New("no header columns found")

// ErrHeaderRows indicates an unsupported header row count (must be 1 or 2).
var ErrHeaderRows = errors.New("header rows must be 1 or 2")

// ExtractError represents a failure while reading a template's header
// region.
type ExtractError struct {
	Sheet string
	Range string // header anchor in A1 notation, e.g. "B3"
	Err   error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("header extraction error in sheet %q at %s: %v", e.Sheet, e.Range, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// NewExtractError creates a new ExtractError.
func NewExtractError(sheet, rangeRef string, err error) *ExtractError {
	return &ExtractError{
		Sheet: sheet,
		Range: rangeRef,
		Err:   err,
	}
}
