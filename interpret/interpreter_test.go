package interpret

import (
	"testing"

	"github.com/tsawler/transcripta/classify"
	"github.com/tsawler/transcripta/model"
)

// interpretAll classifies and interprets a literal table in one step.
func interpretAll(t *testing.T, header []string, body ...[]string) (counted, failed []model.CourseRecord, incidents []Incident) {
	t.Helper()
	table := model.NewTable(header, body)
	c := classify.NewClassifier()
	in := NewInterpreter()
	roles := c.Classify(table)
	return in.InterpretTable(table, roles)
}

func TestInterpretTable_BasicRow(t *testing.T) {
	counted, failed, incidents := interpretAll(t,
		[]string{"學年", "學期", "科目名稱", "學分", "GPA"},
		[]string{"111", "上", "微積分", "3", "A"},
	)
	if len(incidents) != 0 {
		t.Fatalf("Unexpected incidents: %v", incidents)
	}
	if len(failed) != 0 {
		t.Fatalf("Unexpected failed records: %v", failed)
	}
	if len(counted) != 1 {
		t.Fatalf("Counted records = %d, want 1", len(counted))
	}
	rec := counted[0]
	if rec.AcademicYear != "111" {
		t.Errorf("AcademicYear = %q, want 111", rec.AcademicYear)
	}
	if rec.Semester != "上" {
		t.Errorf("Semester = %q, want 上", rec.Semester)
	}
	if rec.Subject != "微積分" {
		t.Errorf("Subject = %q, want 微積分", rec.Subject)
	}
	if rec.Credit != 3 {
		t.Errorf("Credit = %v, want 3", rec.Credit)
	}
	if rec.Grade != "A" {
		t.Errorf("Grade = %q, want A", rec.Grade)
	}
	if rec.Status != model.StatusCounted {
		t.Errorf("Status = %v, want counted", rec.Status)
	}
}

func TestInterpretTable_FailingGrade(t *testing.T) {
	counted, failed, _ := interpretAll(t,
		[]string{"學年", "學期", "科目名稱", "學分", "GPA"},
		[]string{"111", "上", "微積分", "3", "A"},
		[]string{"111", "上", "普通物理", "3", "F"},
	)
	if len(counted) != 1 {
		t.Fatalf("Counted records = %d, want 1", len(counted))
	}
	if len(failed) != 1 {
		t.Fatalf("Failed records = %d, want 1", len(failed))
	}
	if failed[0].Subject != "普通物理" {
		t.Errorf("Failed subject = %q", failed[0].Subject)
	}
	if failed[0].Status != model.StatusFailed {
		t.Errorf("Status = %v, want failed", failed[0].Status)
	}
}

func TestInterpretTable_HeaderEchoSkipped(t *testing.T) {
	counted, _, _ := interpretAll(t,
		[]string{"學年", "學期", "科目名稱", "學分", "GPA"},
		[]string{"111", "上", "微積分", "3", "A"},
		[]string{"學年", "學期", "科目名稱", "學分", "GPA"},
		[]string{"111", "下", "國文", "2", "B"},
	)
	if len(counted) != 2 {
		t.Fatalf("Counted records = %d, want 2 (header echo skipped)", len(counted))
	}
	for _, rec := range counted {
		if rec.Subject == model.UnknownSubject {
			t.Errorf("Header echo leaked into records: %+v", rec)
		}
	}
}

func TestInterpretTable_NoiseRowSkipped(t *testing.T) {
	counted, failed, _ := interpretAll(t,
		[]string{"學年", "學期", "科目名稱", "學分", "GPA"},
		[]string{"111", "上", "微積分", "3", "A"},
		[]string{"", "", "本表僅供查詢參考", "", ""},
		[]string{"", "", "", "", ""},
	)
	if len(counted) != 1 || len(failed) != 0 {
		t.Fatalf("Counted = %d, failed = %d, want 1/0", len(counted), len(failed))
	}
}

func TestInterpretTable_PassExemptCountsWithoutCredit(t *testing.T) {
	counted, _, _ := interpretAll(t,
		[]string{"學年", "學期", "科目名稱", "學分", "GPA"},
		[]string{"111", "上", "服務學習", "", "通過"},
	)
	if len(counted) != 1 {
		t.Fatalf("Counted records = %d, want 1", len(counted))
	}
	if counted[0].Credit != 0 {
		t.Errorf("Credit = %v, want 0", counted[0].Credit)
	}
	if counted[0].Status != model.StatusCounted {
		t.Errorf("Status = %v, want counted", counted[0].Status)
	}
}

func TestInterpretTable_CompositeCreditGradeCell(t *testing.T) {
	counted, _, _ := interpretAll(t,
		[]string{"學年", "學期", "科目名稱", "學分"},
		[]string{"111", "上", "微積分", "A 3"},
	)
	if len(counted) != 1 {
		t.Fatalf("Counted records = %d, want 1", len(counted))
	}
	if counted[0].Credit != 3 {
		t.Errorf("Credit = %v, want 3", counted[0].Credit)
	}
	if counted[0].Grade != "A" {
		t.Errorf("Grade = %q, want A", counted[0].Grade)
	}
}

func TestInterpretTable_YearCellCarryingSemester(t *testing.T) {
	counted, _, _ := interpretAll(t,
		[]string{"學年", "科目名稱", "學分", "GPA"},
		[]string{"111 上", "微積分", "3", "A"},
	)
	if len(counted) != 1 {
		t.Fatalf("Counted records = %d, want 1", len(counted))
	}
	if counted[0].AcademicYear != "111" {
		t.Errorf("AcademicYear = %q, want 111", counted[0].AcademicYear)
	}
	if counted[0].Semester != "上" {
		t.Errorf("Semester = %q, want 上", counted[0].Semester)
	}
}

func TestInterpretTable_CourseCode(t *testing.T) {
	counted, _, _ := interpretAll(t,
		[]string{"學年", "學期", "選課代號", "科目名稱", "學分", "GPA"},
		[]string{"111", "上", "CS101", "微積分", "3", "A"},
	)
	if len(counted) != 1 {
		t.Fatalf("Counted records = %d, want 1", len(counted))
	}
	if counted[0].CourseCode != "CS101" {
		t.Errorf("CourseCode = %q, want CS101", counted[0].CourseCode)
	}
}

func TestInterpretTable_SubjectFallbackRightOfCode(t *testing.T) {
	// The subject column header lies: its cells hold remarks. The cell
	// right of the course code carries the real name.
	table := model.NewTable(
		[]string{"學年", "學期", "選課代號", "Column_4", "學分", "GPA"},
		[][]string{{"111", "上", "CS101", "微積分", "3", "A"}},
	)
	c := classify.NewClassifier()
	in := NewInterpreter()
	roles := c.Classify(table)
	counted, _, _ := in.InterpretTable(table, roles)
	if len(counted) != 1 {
		t.Fatalf("Counted records = %d, want 1", len(counted))
	}
	if counted[0].Subject != "微積分" {
		t.Errorf("Subject = %q, want 微積分", counted[0].Subject)
	}
}

func TestInterpretTable_UnusableRowProducesNothing(t *testing.T) {
	counted, failed, incidents := interpretAll(t,
		[]string{"學年", "學期", "科目名稱", "學分", "GPA"},
		[]string{"備註", "備註", "N/A", "", ""},
	)
	if len(counted) != 0 || len(failed) != 0 {
		t.Errorf("Counted = %d, failed = %d, want 0/0", len(counted), len(failed))
	}
	if len(incidents) != 0 {
		t.Errorf("Unexpected incidents: %v", incidents)
	}
}

func TestInterpretTable_UnknownSubjectStillCounted(t *testing.T) {
	counted, _, _ := interpretAll(t,
		[]string{"學年", "學期", "科目名稱", "學分", "GPA"},
		[]string{"111", "上", "", "2", "B"},
	)
	if len(counted) != 1 {
		t.Fatalf("Counted records = %d, want 1", len(counted))
	}
	if counted[0].Subject != model.UnknownSubject {
		t.Errorf("Subject = %q, want placeholder", counted[0].Subject)
	}
	if counted[0].Credit != 2 {
		t.Errorf("Credit = %v, want 2", counted[0].Credit)
	}
}
