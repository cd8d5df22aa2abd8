package xlshape

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hsaito/xlshape-go/pkg/xlshape/schema"
)

// ErrNoRowAccess indicates a table whose cells cannot be read back for
// writing because it lacks the RowProvider capability.
var ErrNoRowAccess = errors.New("table does not expose row access")

// RowProvider exposes indexed read access to a table's rows. The bundled
// table package implements it; WriteTable needs it to copy cell values out.
type RowProvider interface {
	Row(i int) []any
}

// WriteTable writes a table into a sheet with its top-left data cell at
// (row, col), both 1-based. With headers set, the column labels are written
// first and the data shifts down one row, mirroring how a populated table
// is placed back under a template's header. Empty (nil) cells are skipped,
// leaving the template's cells untouched. The sheet is created if missing.
func WriteTable(f *excelize.File, sheet string, t schema.Table, row, col int, headers bool) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("invalid write anchor (%d, %d): coordinates are 1-based", row, col)
	}

	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return fmt.Errorf("invalid sheet name %q: %w", sheet, err)
	}
	if idx == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}

	if headers {
		for j, name := range t.Columns() {
			cell, err := excelize.CoordinatesToCellName(col+j, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, name); err != nil {
				return err
			}
		}
		row++
	}

	if t.RowCount() == 0 {
		return nil
	}

	rp, ok := t.(RowProvider)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNoRowAccess, t)
	}

	for i := 0; i < t.RowCount(); i++ {
		for j, v := range rp.Row(i) {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+j, row+i)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return nil
}
