// Package schema defines the column-structure contract extracted from a
// template's header region. A Schema describes the ordered column names a
// table is expected to carry, optionally with a higher-level grouping row,
// and can materialize an empty table of that shape or check that an existing
// table conforms to it.
package schema

import "fmt"

// Group is one entry of a multi-level header: a label spanning Span
// consecutive leaf columns. The spans of all groups should sum to the
// schema's column count; this is a caller obligation and is never checked
// at construction.
type Group struct {
	Label string
	Span  int
}

// Schema is an immutable description of a template's tabular shape.
// Column order is significant; names are not required to be unique.
// A Schema may be shared and read concurrently without synchronization.
type Schema struct {
	columnNames []string
	groups      []Group
}

// New creates a schema with a single-level header.
// The input slice is copied; construction never fails.
func New(columnNames []string) *Schema {
	s := &Schema{columnNames: make([]string, len(columnNames))}
	copy(s.columnNames, columnNames)
	return s
}

// NewWithGroups creates a schema with a multi-level header described by
// groups. Group spans are not validated against the column count.
func NewWithGroups(columnNames []string, groups []Group) *Schema {
	s := New(columnNames)
	if len(groups) > 0 {
		s.groups = make([]Group, len(groups))
		copy(s.groups, groups)
	}
	return s
}

// Size returns the number of columns.
func (s *Schema) Size() int {
	return len(s.columnNames)
}

// Columns returns a copy of the ordered column names.
func (s *Schema) Columns() []string {
	out := make([]string, len(s.columnNames))
	copy(out, s.columnNames)
	return out
}

// Groups returns a copy of the grouping row, or nil for a single-level
// header.
func (s *Schema) Groups() []Group {
	if s.groups == nil {
		return nil
	}
	out := make([]Group, len(s.groups))
	copy(out, s.groups)
	return out
}

// HasGroups reports whether the schema carries a grouping row.
func (s *Schema) HasGroups() bool {
	return len(s.groups) > 0
}

// GroupsSpanColumns reports whether the group spans sum to the column count.
// It always returns true for a schema without groups. Extractors can use
// this to assert the invariant the type itself does not enforce.
func (s *Schema) GroupsSpanColumns() bool {
	if s.groups == nil {
		return true
	}
	sum := 0
	for _, g := range s.groups {
		sum += g.Span
	}
	return sum == len(s.columnNames)
}

// MakeEmptyTable materializes a table matching the schema: columns exactly
// equal to the schema's column names, rowCount rows indexed 0..rowCount-1,
// every cell empty. The table-construction capability is resolved at call
// time, so schemas can be built and inspected without a provider present.
// Returns ErrNegativeRowCount if rowCount < 0, and ErrNoTableFactory if no
// provider has been registered.
func (s *Schema) MakeEmptyTable(rowCount int) (Table, error) {
	if rowCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeRowCount, rowCount)
	}
	f, ok := registeredFactory()
	if !ok {
		return nil, fmt.Errorf("%w: import %s or call schema.RegisterFactory", ErrNoTableFactory, providerPkg)
	}
	return f.NewTable(s.Columns(), rowCount)
}

// Validate reports whether v exposes an ordered column-label list exactly
// equal to the schema's column names, element by element and in order. Any
// reordering, renaming, missing, or extra column yields false, as does a
// value lacking the ColumnProvider capability. Validate never panics and is
// a pure predicate; grouping metadata does not participate.
func (s *Schema) Validate(v any) bool {
	p, ok := v.(ColumnProvider)
	if !ok {
		return false
	}
	cols := p.Columns()
	if len(cols) != len(s.columnNames) {
		return false
	}
	for i, name := range s.columnNames {
		if cols[i] != name {
			return false
		}
	}
	return true
}
