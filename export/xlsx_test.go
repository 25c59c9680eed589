package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/transcripta/model"
)

func TestWriteXLSX_RoundTrip(t *testing.T) {
	result := &model.AggregateResult{
		TotalCredits:     5.5,
		TotalGradePoints: 20.25,
		Counted:          sampleRecords(),
		Failed: []model.CourseRecord{
			{
				AcademicYear: "111",
				Semester:     "上",
				Subject:      "普通物理",
				Credit:       3,
				Grade:        "F",
				SourceTable:  0,
				Status:       model.StatusFailed,
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, result); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 3 {
		t.Fatalf("Sheets = %v, want counted/failed/summary", sheets)
	}

	counted, err := f.GetRows("通過科目")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(counted) != 3 {
		t.Fatalf("Counted rows = %d, want header + 2", len(counted))
	}
	if counted[1][3] != "微積分" {
		t.Errorf("Subject cell = %q", counted[1][3])
	}
	if counted[1][6] != "1" {
		t.Errorf("Source table cell = %q, want 1-based", counted[1][6])
	}

	failed, err := f.GetRows("不及格科目")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(failed) != 2 {
		t.Fatalf("Failed rows = %d, want header + 1", len(failed))
	}
	if failed[1][5] != "F" {
		t.Errorf("Grade cell = %q", failed[1][5])
	}

	summary, err := f.GetRows("總計")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(summary) != 4 {
		t.Fatalf("Summary rows = %d, want 4", len(summary))
	}
	if summary[0][0] != "總學分" || summary[0][1] != "5.5" {
		t.Errorf("Summary credits row = %v", summary[0])
	}
}

func TestWorkbook_EmptyResult(t *testing.T) {
	f, err := Workbook(&model.AggregateResult{})
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("通過科目")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("Rows = %d, want header only", len(rows))
	}
}
