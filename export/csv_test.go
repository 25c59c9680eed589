package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/tsawler/transcripta/model"
)

func sampleRecords() []model.CourseRecord {
	return []model.CourseRecord{
		{
			AcademicYear: "111",
			Semester:     "上",
			CourseCode:   "CS101",
			Subject:      "微積分",
			Credit:       3,
			Grade:        "A",
			SourceTable:  0,
			Status:       model.StatusCounted,
		},
		{
			AcademicYear: "111",
			Semester:     "下",
			Subject:      "國文",
			Credit:       2.5,
			Grade:        "B+",
			SourceTable:  1,
			Status:       model.StatusCounted,
		},
	}
}

func TestCSV_StartsWithBOM(t *testing.T) {
	out, err := CSV(nil)
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}
	if !bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}) {
		t.Error("CSV output should start with a UTF-8 BOM")
	}
}

func TestCSV_HeaderAndRows(t *testing.T) {
	out, err := CSV(sampleRecords())
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(out, []byte{0xEF, 0xBB, 0xBF})))
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Rows = %d, want header + 2 records", len(rows))
	}

	header := strings.Join(rows[0], ",")
	if header != "學年度,學期,選課代號,科目名稱,學分,GPA,來源表格" {
		t.Errorf("Header = %q", header)
	}

	first := rows[1]
	if first[0] != "111" || first[2] != "CS101" || first[3] != "微積分" {
		t.Errorf("First row = %v", first)
	}
	if first[4] != "3" {
		t.Errorf("Whole credit = %q, want 3", first[4])
	}
	if first[6] != "1" {
		t.Errorf("Source table = %q, want 1-based index", first[6])
	}

	second := rows[2]
	if second[4] != "2.5" {
		t.Errorf("Fractional credit = %q, want 2.5", second[4])
	}
	if second[2] != "" {
		t.Errorf("Missing course code should stay blank, got %q", second[2])
	}
}

func TestWriteCSV_EmptyRecords(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF})))
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("Rows = %d, want header only", len(rows))
	}
}
