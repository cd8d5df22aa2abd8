package xlshape

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hsaito/xlshape-go/pkg/xlshape/parser"
	"github.com/hsaito/xlshape-go/pkg/xlshape/schema"
)

// ExtractHeaderSchema opens an xlsx template and extracts the table-shape
// schema of its header region.
func ExtractHeaderSchema(path string, opts HeaderOptions) (*schema.Schema, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ExtractHeaderSchemaFrom(f, opts)
}

// ExtractHeaderSchemaFrom extracts the table-shape schema of the header
// region of an already open workbook. Leaf column names are taken left to
// right; for two-row headers, merged regions of the upper row become group
// spans in the same order.
func ExtractHeaderSchemaFrom(f *excelize.File, opts HeaderOptions) (*schema.Schema, error) {
	opts = opts.withDefaults()

	if opts.HeaderRows < 1 || opts.HeaderRows > 2 {
		return nil, fmt.Errorf("%w: got %d", ErrHeaderRows, opts.HeaderRows)
	}

	anchor, err := excelize.CoordinatesToCellName(opts.Col, opts.Row)
	if err != nil {
		return nil, fmt.Errorf("invalid header anchor: %w", err)
	}

	idx, err := f.GetSheetIndex(opts.Sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, opts.Sheet)
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, opts.Sheet)
	}

	layout, err := parser.ParseHeader(f, opts.Sheet, opts.Row, opts.Col, opts.NumCols, opts.HeaderRows)
	if err != nil {
		return nil, NewExtractError(opts.Sheet, anchor, err)
	}

	if len(layout.Names) == 0 {
		return nil, NewExtractError(opts.Sheet, anchor, ErrEmptyHeader)
	}

	if len(layout.Groups) > 0 {
		return schema.NewWithGroups(layout.Names, layout.Groups), nil
	}
	return schema.New(layout.Names), nil
}
