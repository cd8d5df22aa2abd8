package xlshape

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hsaito/xlshape-go/pkg/xlshape/schema"
	_ "github.com/hsaito/xlshape-go/pkg/xlshape/table"
)

// saveWorkbook writes f to a temp file and returns its path.
func saveWorkbook(t *testing.T, f *excelize.File) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestExtractHeaderSchemaFlat(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	require.NoError(t, f.SetCellValue(sheet, "B3", "Name"))
	require.NoError(t, f.SetCellValue(sheet, "C3", "Qty"))
	require.NoError(t, f.SetCellValue(sheet, "D3", "Price"))
	path := saveWorkbook(t, f)

	s, err := ExtractHeaderSchema(path, HeaderOptions{Sheet: sheet, Row: 3, Col: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, s.Size())
	assert.Equal(t, []string{"Name", "Qty", "Price"}, s.Columns())
	assert.False(t, s.HasGroups())
}

func TestExtractHeaderSchemaGrouped(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	require.NoError(t, f.SetCellValue(sheet, "A1", "ID"))
	require.NoError(t, f.MergeCell(sheet, "A1", "A2"))
	require.NoError(t, f.SetCellValue(sheet, "B1", "Amounts"))
	require.NoError(t, f.MergeCell(sheet, "B1", "C1"))
	require.NoError(t, f.SetCellValue(sheet, "B2", "In"))
	require.NoError(t, f.SetCellValue(sheet, "C2", "Out"))
	path := saveWorkbook(t, f)

	s, err := ExtractHeaderSchema(path, HeaderOptions{Sheet: sheet, HeaderRows: 2})
	require.NoError(t, err)

	assert.Equal(t, []string{"ID", "In", "Out"}, s.Columns())
	assert.Equal(t, []schema.Group{
		{Label: "ID", Span: 1},
		{Label: "Amounts", Span: 2},
	}, s.Groups())
	assert.True(t, s.GroupsSpanColumns())
}

func TestExtractHeaderSchemaSheetNotFound(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	path := saveWorkbook(t, f)

	_, err := ExtractHeaderSchema(path, HeaderOptions{Sheet: "Missing"})
	require.ErrorIs(t, err, ErrSheetNotFound)
}

func TestExtractHeaderSchemaEmptyHeader(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	path := saveWorkbook(t, f)

	_, err := ExtractHeaderSchema(path, HeaderOptions{})
	require.ErrorIs(t, err, ErrEmptyHeader)

	var extractErr *ExtractError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "Sheet1", extractErr.Sheet)
	assert.Equal(t, "A1", extractErr.Range)
}

func TestExtractHeaderSchemaBadHeaderRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := ExtractHeaderSchemaFrom(f, HeaderOptions{HeaderRows: 3})
	require.ErrorIs(t, err, ErrHeaderRows)
}

func TestExtractMakeValidateRoundTrip(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	require.NoError(t, f.SetCellValue(sheet, "A1", "A"))
	require.NoError(t, f.SetCellValue(sheet, "B1", "B"))
	require.NoError(t, f.SetCellValue(sheet, "C1", "C"))
	path := saveWorkbook(t, f)

	s, err := ExtractHeaderSchema(path, HeaderOptions{})
	require.NoError(t, err)

	tbl, err := s.MakeEmptyTable(0)
	require.NoError(t, err)
	assert.True(t, s.Validate(tbl))
	assert.Equal(t, 0, tbl.RowCount())
}

func TestWriteTable(t *testing.T) {
	s := schema.New([]string{"Name", "Qty"})
	tbl, err := s.MakeEmptyTable(0)
	require.NoError(t, err)

	concrete := tbl.(interface {
		AppendRow(cells ...any) error
	})
	require.NoError(t, concrete.AppendRow("widget", 3))
	require.NoError(t, concrete.AppendRow("gadget", nil))

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, WriteTable(f, "Out", tbl, 2, 2, true))

	get := func(cell string) string {
		v, err := f.GetCellValue("Out", cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Name", get("B2"))
	assert.Equal(t, "Qty", get("C2"))
	assert.Equal(t, "widget", get("B3"))
	assert.Equal(t, "3", get("C3"))
	assert.Equal(t, "gadget", get("B4"))
	// Empty cell stays empty.
	assert.Equal(t, "", get("C4"))
}

func TestWriteTableNoHeaders(t *testing.T) {
	s := schema.New([]string{"A"})
	tbl, err := s.MakeEmptyTable(0)
	require.NoError(t, err)

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, WriteTable(f, "Sheet1", tbl, 1, 1, false))

	v, err := f.GetCellValue("Sheet1", "A1")
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestWriteTableNoRowAccess(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	err := WriteTable(f, "Sheet1", opaqueTable{}, 1, 1, false)
	require.ErrorIs(t, err, ErrNoRowAccess)
}

func TestWriteTableBadAnchor(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	s := schema.New([]string{"A"})
	tbl, err := s.MakeEmptyTable(0)
	require.NoError(t, err)

	require.Error(t, WriteTable(f, "Sheet1", tbl, 0, 1, false))
	require.Error(t, WriteTable(f, "Sheet1", tbl, 1, 0, false))
}

// opaqueTable satisfies schema.Table but hides its rows.
type opaqueTable struct{}

func (opaqueTable) Columns() []string { return []string{"A"} }
func (opaqueTable) RowCount() int     { return 1 }
