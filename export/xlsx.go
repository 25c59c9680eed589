package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/transcripta/model"
)

// Workbook sheet names.
const (
	sheetCounted = "通過科目"
	sheetFailed  = "不及格科目"
	sheetSummary = "總計"
)

// Workbook renders an aggregate result as an Excel workbook with one
// sheet of counted courses, one of failed courses and a summary
// sheet. The caller owns the returned file and should Close it.
func Workbook(result *model.AggregateResult) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", sheetCounted); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}
	if err := writeRecords(f, sheetCounted, result.Counted); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(sheetFailed); err != nil {
		return nil, fmt.Errorf("adding sheet: %w", err)
	}
	if err := writeRecords(f, sheetFailed, result.Failed); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, fmt.Errorf("adding sheet: %w", err)
	}
	summary := [][]any{
		{"總學分", result.TotalCredits},
		{"總績點", result.TotalGradePoints},
		{"通過科目數", len(result.Counted)},
		{"不及格科目數", len(result.Failed)},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("addressing cell: %w", err)
		}
		if err := f.SetSheetRow(sheetSummary, cell, &row); err != nil {
			return nil, fmt.Errorf("writing summary: %w", err)
		}
	}

	return f, nil
}

// WriteXLSX renders an aggregate result and writes the workbook to w.
func WriteXLSX(w io.Writer, result *model.AggregateResult) error {
	f, err := Workbook(result)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// writeRecords fills one sheet with the export header and records.
func writeRecords(f *excelize.File, sheet string, records []model.CourseRecord) error {
	header := make([]any, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range records {
		row := []any{
			rec.AcademicYear,
			rec.Semester,
			rec.CourseCode,
			rec.Subject,
			rec.Credit,
			rec.Grade,
			rec.SourceTable + 1,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}
	return nil
}
