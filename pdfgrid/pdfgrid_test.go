package pdfgrid

import (
	"testing"

	pdf "github.com/ledongthuc/pdf"
)

// frag builds a positioned fragment; w approximates rendered width.
func frag(s string, x, y, w float64) pdf.Text {
	return pdf.Text{S: s, X: x, Y: y, W: w}
}

func TestGridFromTexts_RowsAndColumns(t *testing.T) {
	e := New()
	texts := []pdf.Text{
		// Header row at y=700.
		frag("學年", 50, 700, 20),
		frag("學期", 120, 700, 20),
		frag("科目名稱", 190, 700, 40),
		frag("學分", 300, 700, 20),
		// Data row at y=680.
		frag("111", 50, 680, 15),
		frag("上", 120, 680, 10),
		frag("微積分", 190, 680, 30),
		frag("3", 300, 680, 5),
	}

	grid := e.gridFromTexts(texts)
	if len(grid) != 2 {
		t.Fatalf("Rows = %d, want 2", len(grid))
	}
	if len(grid[0]) != 4 {
		t.Fatalf("Columns = %d, want 4", len(grid[0]))
	}
	if grid[0][2] != "科目名稱" {
		t.Errorf("Header cell = %q", grid[0][2])
	}
	if grid[1][0] != "111" || grid[1][3] != "3" {
		t.Errorf("Data row = %v", grid[1])
	}
}

func TestGridFromTexts_ReadingOrderTopFirst(t *testing.T) {
	e := New()
	// Fragments arrive bottom row first; Y grows upward in PDF space.
	texts := []pdf.Text{
		frag("second", 50, 600, 30),
		frag("first", 50, 700, 30),
	}
	grid := e.gridFromTexts(texts)
	if len(grid) != 2 {
		t.Fatalf("Rows = %d, want 2", len(grid))
	}
	if grid[0][0] != "first" || grid[1][0] != "second" {
		t.Errorf("Rows out of reading order: %v", grid)
	}
}

func TestGridFromTexts_YToleranceMergesDriftingRow(t *testing.T) {
	e := New()
	texts := []pdf.Text{
		frag("111", 50, 680.0, 15),
		frag("上", 120, 679.2, 10), // sits slightly lower, same row
	}
	grid := e.gridFromTexts(texts)
	if len(grid) != 1 {
		t.Fatalf("Rows = %d, want 1 (within tolerance)", len(grid))
	}
}

func TestGridFromTexts_GlyphFragmentsMergeIntoOneCell(t *testing.T) {
	e := New()
	// Per-glyph fragments with no gap concatenate without spaces.
	texts := []pdf.Text{
		frag("微", 190, 680, 10),
		frag("積", 200, 680, 10),
		frag("分", 210, 680, 10),
		frag("3", 300, 680, 5),
	}
	grid := e.gridFromTexts(texts)
	if len(grid) != 1 {
		t.Fatalf("Rows = %d, want 1", len(grid))
	}
	if len(grid[0]) != 2 {
		t.Fatalf("Columns = %d, want 2: %v", len(grid[0]), grid[0])
	}
	if grid[0][0] != "微積分" {
		t.Errorf("Merged cell = %q, want 微積分", grid[0][0])
	}
}

func TestGridFromTexts_WordGapInsertsSpace(t *testing.T) {
	e := New()
	// A small gap separates words inside one cell.
	texts := []pdf.Text{
		frag("A", 300, 680, 6),
		frag("3", 310, 680, 5),
	}
	grid := e.gridFromTexts(texts)
	if len(grid) != 1 || len(grid[0]) != 1 {
		t.Fatalf("Grid shape = %v, want single cell", grid)
	}
	if grid[0][0] != "A 3" {
		t.Errorf("Cell = %q, want \"A 3\"", grid[0][0])
	}
}

func TestGridFromTexts_MissingCellLeavesBlank(t *testing.T) {
	e := New()
	texts := []pdf.Text{
		frag("111", 50, 700, 15),
		frag("微積分", 190, 700, 30),
		frag("112", 50, 680, 15),
		frag("上", 120, 680, 10),
		frag("國文", 190, 680, 20),
	}
	grid := e.gridFromTexts(texts)
	if len(grid) != 2 {
		t.Fatalf("Rows = %d, want 2", len(grid))
	}
	if len(grid[0]) != 3 {
		t.Fatalf("Columns = %d, want 3", len(grid[0]))
	}
	// First row has no semester fragment; its column stays empty.
	if grid[0][1] != "" {
		t.Errorf("Empty column cell = %q, want blank", grid[0][1])
	}
	if grid[1][1] != "上" {
		t.Errorf("Semester cell = %q", grid[1][1])
	}
}

func TestGridFromTexts_Empty(t *testing.T) {
	if grid := New().gridFromTexts(nil); grid != nil {
		t.Errorf("Empty input should yield nil, got %v", grid)
	}
}

func TestConfigs(t *testing.T) {
	d, a := DefaultConfig(), AggressiveConfig()
	if a.YTolerance <= d.YTolerance {
		t.Error("Aggressive clustering should tolerate more vertical drift")
	}
	if a.CellGap >= d.CellGap {
		t.Error("Aggressive clustering should split cells on smaller gaps")
	}
	if a.MinRows > d.MinRows {
		t.Error("Aggressive clustering should accept smaller pages")
	}
}
