// Package xlshape extracts table-shape schemas from Excel template headers
// and writes conforming tables back into sheets.
package xlshape

// HeaderOptions locates a template's header region. Row and Col are
// 1-based, matching Excel coordinates.
type HeaderOptions struct {
	// Sheet is the sheet name. Defaults to "Sheet1".
	Sheet string
	// Row is the top row of the header region. Defaults to 1.
	Row int
	// Col is the leftmost column of the header region. Defaults to 1.
	Col int
	// NumCols is the header width. 0 auto-detects by scanning right along
	// the leaf name row until the first column without header text.
	NumCols int
	// HeaderRows is 1 for a flat header or 2 for a grouped header whose
	// top row holds group labels. Defaults to 1.
	HeaderRows int
}

// DefaultHeaderOptions returns options for a flat header anchored at A1
// with auto-detected width.
func DefaultHeaderOptions() HeaderOptions {
	return HeaderOptions{
		Sheet:      "Sheet1",
		Row:        1,
		Col:        1,
		HeaderRows: 1,
	}
}

func (o HeaderOptions) withDefaults() HeaderOptions {
	if o.Sheet == "" {
		o.Sheet = "Sheet1"
	}
	if o.Row == 0 {
		o.Row = 1
	}
	if o.Col == 0 {
		o.Col = 1
	}
	if o.HeaderRows == 0 {
		o.HeaderRows = 1
	}
	return o
}
