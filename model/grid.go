package model

// RawCell is a single cell value as delivered by an upstream table
// detector. Detectors disagree about what a cell is: some hand over
// plain strings, some nil for empty regions, some wrapper objects that
// carry positioning alongside the text. RawCell accepts all of them;
// cells.Normalize is the single point where they become strings.
type RawCell any

// TextCell is the optional interface for rich cell values. A RawCell
// implementing TextCell is normalized from its Text() result rather
// than its string formatting.
type TextCell interface {
	Text() string
}

// RawGrid is one detected table: an ordered sequence of rows, each an
// ordered sequence of raw cell values. Rows may be ragged; grids are
// consumed once and never mutated.
type RawGrid [][]RawCell

// GridFromStrings builds a RawGrid from string rows. Convenient for
// callers (and tests) that already hold plain text cells.
func GridFromStrings(rows [][]string) RawGrid {
	grid := make(RawGrid, len(rows))
	for i, row := range rows {
		cells := make([]RawCell, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		grid[i] = cells
	}
	return grid
}

// RowCount returns the number of rows in the grid.
func (g RawGrid) RowCount() int {
	return len(g)
}

// MaxCols returns the widest row length in the grid.
func (g RawGrid) MaxCols() int {
	max := 0
	for _, row := range g {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}
