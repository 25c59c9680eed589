package model

import "strings"

// Table is a normalized transcript table candidate: a deduplicated
// header row plus a rectangular body. Every body row has exactly
// len(Header) cells; construction pads or truncates as needed, so the
// invariant holds for the lifetime of the value.
type Table struct {
	// Header holds the unique column names, in column order.
	Header []string

	// Body holds the data rows. Each row has len(Header) cells.
	Body [][]string

	// Index is the zero-based position of this table in the input
	// sequence. It is carried into CourseRecord.SourceTable for
	// diagnostic attribution.
	Index int

	// HeaderDetected reports whether Header came from the table's own
	// first row rather than generated Column_N placeholders.
	HeaderDetected bool
}

// NewTable builds a Table from a header and body, enforcing the
// rectangular invariant. Rows longer than the header are truncated;
// shorter rows are padded with empty strings.
func NewTable(header []string, body [][]string) *Table {
	t := &Table{
		Header: header,
		Body:   make([][]string, 0, len(body)),
	}
	width := len(header)
	for _, row := range body {
		t.Body = append(t.Body, fitRow(row, width))
	}
	return t
}

// fitRow pads or truncates a row to the given width.
func fitRow(row []string, width int) []string {
	fitted := make([]string, width)
	copy(fitted, row)
	return fitted
}

// ColCount returns the number of columns.
func (t *Table) ColCount() int {
	return len(t.Header)
}

// RowCount returns the number of body rows.
func (t *Table) RowCount() int {
	return len(t.Body)
}

// Cell returns the body cell at (row, col), or "" when out of range.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Body) || col < 0 || col >= len(t.Body[row]) {
		return ""
	}
	return t.Body[row][col]
}

// Column returns the column index for a header name, or -1.
func (t *Table) Column(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// RowText joins a body row's cells with single spaces. Used by
// whole-row keyword scans.
func (t *Table) RowText(row int) string {
	if row < 0 || row >= len(t.Body) {
		return ""
	}
	return strings.Join(t.Body[row], " ")
}
