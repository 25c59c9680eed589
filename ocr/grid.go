package ocr

import (
	"regexp"
	"strings"

	"github.com/tsawler/transcripta/model"
)

// DefaultLanguage is the Tesseract language string used by new
// clients. Traditional Chinese first, since transcript column labels
// and subject names are predominantly Chinese, with English for codes
// and letter grades.
const DefaultLanguage = "chi_tra+eng"

// reCellSplit separates cells within one recognized line. Tesseract
// renders column gaps as runs of spaces or tabs; single spaces stay
// inside the cell, since subject names and composite grade cells
// legitimately contain them.
var reCellSplit = regexp.MustCompile(`\t+| {2,}`)

// GridFromText splits recognized page text into a cell grid: one row
// per non-blank line, cells split on tab runs or two-plus spaces.
// Returns nil for blank input.
func GridFromText(text string) model.RawGrid {
	var grid model.RawGrid
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := reCellSplit.Split(line, -1)
		row := make([]model.RawCell, len(fields))
		for i, f := range fields {
			row[i] = f
		}
		grid = append(grid, row)
	}
	return grid
}
