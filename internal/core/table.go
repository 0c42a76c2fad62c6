package core

import "strings"

// Table is a positional cell grid, the normalized form ingestion hands to the
// core. Cells are the display strings of the spreadsheet; numeric coercion
// happens during extraction, never here.
type Table [][]string

// Cell returns the cell at (row, col), or "" when either index is out of
// range. Spreadsheet rows are ragged, so out-of-range access is routine and
// must be safe.
func (t Table) Cell(row, col int) string {
	if row < 0 || row >= len(t) {
		return ""
	}
	r := t[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Rows returns the physical extent of the table.
func (t Table) Rows() int {
	return len(t)
}

// cellBlank reports whether the cell at (row, col) is absent or whitespace.
func (t Table) cellBlank(row, col int) bool {
	return strings.TrimSpace(t.Cell(row, col)) == ""
}

// Tables bundles the three row-aligned input datasets of one bill. Row i of
// WorkOrder and row i of BillQuantity describe the same physical line item.
// A missing Extra Items sheet is represented as a nil Table.
type Tables struct {
	WorkOrder    Table
	BillQuantity Table
	ExtraItems   Table
}
