// Package xlsxgrid extracts cell grids from Excel workbooks.
package xlsxgrid

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/transcripta/model"
)

// ExtractFile opens a workbook on disk and returns one grid per
// non-empty sheet, in workbook order.
func ExtractFile(path string) ([]model.RawGrid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()
	return sheetGrids(f)
}

// Extract reads a workbook from a stream and returns one grid per
// non-empty sheet, in workbook order.
func Extract(r io.Reader) ([]model.RawGrid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()
	return sheetGrids(f)
}

func sheetGrids(f *excelize.File) ([]model.RawGrid, error) {
	var grids []model.RawGrid
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}
		grid := make(model.RawGrid, 0, len(rows))
		for _, row := range rows {
			cells := make([]model.RawCell, len(row))
			for i, cell := range row {
				cells[i] = cell
			}
			grid = append(grid, cells)
		}
		grids = append(grids, grid)
	}
	return grids, nil
}
