// Package parser reads header regions from Excel sheets.
package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hsaito/xlshape-go/pkg/xlshape/schema"
)

// maxAutoColumns caps width auto-detection at Excel's column limit (XFD).
const maxAutoColumns = 16384

// HeaderLayout is the parsed header region of a template sheet: leaf column
// names in left-to-right order, plus the grouping row for two-row headers.
type HeaderLayout struct {
	Names  []string
	Groups []schema.Group
}

// mergedRegion is a merged cell range with its anchor value.
type mergedRegion struct {
	value          string
	r1, c1, r2, c2 int
}

// ParseHeader reads the header region anchored at (row, col), both 1-based.
// headerRows is 1 or 2; with 2, row holds the grouping labels and row+1 the
// leaf names, and merged regions of the grouping row become group spans.
// numCols == 0 auto-detects the width by scanning right along the leaf row
// until the first column without header text.
func ParseHeader(f *excelize.File, sheet string, row, col, numCols, headerRows int) (HeaderLayout, error) {
	regions, err := mergedRegions(f, sheet)
	if err != nil {
		return HeaderLayout{}, err
	}

	leafRow := row + headerRows - 1

	if numCols == 0 {
		numCols, err = detectWidth(f, sheet, leafRow, col, regions)
		if err != nil {
			return HeaderLayout{}, err
		}
	}

	layout := HeaderLayout{Names: make([]string, 0, numCols)}
	for c := col; c < col+numCols; c++ {
		name, err := headerText(f, sheet, leafRow, c, regions)
		if err != nil {
			return HeaderLayout{}, err
		}
		layout.Names = append(layout.Names, name)
	}

	if headerRows == 2 {
		layout.Groups, err = parseGroups(f, sheet, row, col, numCols, regions)
		if err != nil {
			return HeaderLayout{}, err
		}
	}

	return layout, nil
}

// parseGroups walks the grouping row left to right. A merged region yields
// one group spanning its horizontal intersection with the header range;
// unmerged cells yield span-1 groups. A merge reaching down into the leaf
// row marks an ungrouped column, so its label doubles as the leaf name.
func parseGroups(f *excelize.File, sheet string, row, col, numCols int, regions []mergedRegion) ([]schema.Group, error) {
	end := col + numCols - 1
	var groups []schema.Group

	for c := col; c <= end; {
		if reg, ok := regionAt(regions, row, c); ok {
			last := reg.c2
			if last > end {
				last = end
			}
			groups = append(groups, schema.Group{
				Label: strings.TrimSpace(reg.value),
				Span:  last - c + 1,
			})
			c = last + 1
			continue
		}

		label, err := cellText(f, sheet, row, c)
		if err != nil {
			return nil, err
		}
		groups = append(groups, schema.Group{Label: label, Span: 1})
		c++
	}

	return groups, nil
}

// detectWidth scans right along the leaf row until the first column without
// header text.
func detectWidth(f *excelize.File, sheet string, leafRow, col int, regions []mergedRegion) (int, error) {
	for c := col; c < col+maxAutoColumns; c++ {
		name, err := headerText(f, sheet, leafRow, c, regions)
		if err != nil {
			return 0, err
		}
		if name == "" {
			return c - col, nil
		}
	}
	return maxAutoColumns, nil
}

// headerText resolves the header text for a leaf cell. Non-anchor cells of
// a merged range read as empty from excelize, so empty cells fall back to
// the value of the region covering them (the vertically merged ungrouped
// column case).
func headerText(f *excelize.File, sheet string, row, col int, regions []mergedRegion) (string, error) {
	v, err := cellText(f, sheet, row, col)
	if err != nil {
		return "", err
	}
	if v != "" {
		return v, nil
	}
	if reg, ok := regionAt(regions, row, col); ok {
		return strings.TrimSpace(reg.value), nil
	}
	return "", nil
}

func cellText(f *excelize.File, sheet string, row, col int) (string, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	v, err := f.GetCellValue(sheet, name)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(v), nil
}

func mergedRegions(f *excelize.File, sheet string) ([]mergedRegion, error) {
	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, err
	}

	regions := make([]mergedRegion, 0, len(merges))
	for _, m := range merges {
		c1, r1, err := excelize.CellNameToCoordinates(m.GetStartAxis())
		if err != nil {
			return nil, err
		}
		c2, r2, err := excelize.CellNameToCoordinates(m.GetEndAxis())
		if err != nil {
			return nil, err
		}
		regions = append(regions, mergedRegion{
			value: m.GetCellValue(),
			r1:    r1, c1: c1,
			r2: r2, c2: c2,
		})
	}
	return regions, nil
}

// regionAt returns the merged region covering (row, col), if any. Regions
// starting left of col are reported with their full bounds; callers clip.
func regionAt(regions []mergedRegion, row, col int) (mergedRegion, bool) {
	for _, reg := range regions {
		if row >= reg.r1 && row <= reg.r2 && col >= reg.c1 && col <= reg.c2 {
			return reg, true
		}
	}
	return mergedRegion{}, false
}
