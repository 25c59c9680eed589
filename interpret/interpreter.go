package interpret

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tsawler/transcripta/classify"
	"github.com/tsawler/transcripta/grades"
	"github.com/tsawler/transcripta/model"
)

// headerEchoMinHits is the number of exact header-keyword cells that
// marks a row as a repeated header.
const headerEchoMinHits = 3

// yearFallbackCols is how many leading columns the year/semester
// fallback scan covers.
const yearFallbackCols = 3

var reYearToken = regexp.MustCompile(`\d{3,4}`)

// Incident records a recovered per-row or per-table failure. The
// affected row (or table, RowIndex -1) is skipped; processing
// continues.
type Incident struct {
	TableIndex int
	RowIndex   int
	Err        error
}

// Interpreter walks the data rows of an accepted table and turns them
// into course records.
type Interpreter struct {
	classifier *classify.Classifier
	parser     *grades.Parser
	scale      *grades.Scale
	semRe      *regexp.Regexp
}

// NewInterpreter creates an Interpreter with default classifier and
// grade scale.
func NewInterpreter() *Interpreter {
	return NewInterpreterWith(classify.NewClassifier(), grades.DefaultScale())
}

// NewInterpreterWith creates an Interpreter sharing the given
// classifier's keywords and parser.
func NewInterpreterWith(c *classify.Classifier, scale *grades.Scale) *Interpreter {
	if c == nil {
		c = classify.NewClassifier()
	}
	if scale == nil {
		scale = grades.DefaultScale()
	}
	return &Interpreter{
		classifier: c,
		parser:     c.Parser(),
		scale:      scale,
		semRe:      semesterPattern(c.Keywords().SemesterTokens),
	}
}

// semesterPattern builds the term-token alternation. Token order is
// preserved: the regexp engine prefers earlier alternatives, so "春"
// wins over "春季" exactly as the keyword list dictates.
func semesterPattern(tokens []string) *regexp.Regexp {
	quoted := make([]string, len(tokens))
	for i, tok := range tokens {
		quoted[i] = regexp.QuoteMeta(tok)
	}
	return regexp.MustCompile(`(?i)(` + strings.Join(quoted, "|") + `)`)
}

// InterpretTable walks every body row of an accepted table. Returned
// record slices preserve row order. A row that panics while being read
// is reported as an Incident and skipped; the rest of the table is
// unaffected.
func (in *Interpreter) InterpretTable(t *model.Table, roles *model.RoleAssignment) (counted, failed []model.CourseRecord, incidents []Incident) {
	for row := 0; row < t.RowCount(); row++ {
		rec, produced, err := in.interpretRow(t, roles, row)
		if err != nil {
			incidents = append(incidents, Incident{TableIndex: t.Index, RowIndex: row, Err: err})
			continue
		}
		if !produced {
			continue
		}
		if rec.Status == model.StatusFailed {
			failed = append(failed, *rec)
		} else {
			counted = append(counted, *rec)
		}
	}
	return counted, failed, incidents
}

// interpretRow classifies one row. produced is false for header
// echoes, noise rows and rejected rows. Panics while reading the row
// are recovered into err.
func (in *Interpreter) interpretRow(t *model.Table, roles *model.RoleAssignment, row int) (rec *model.CourseRecord, produced bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec, produced = nil, false
			err = fmt.Errorf("reading row: %v", r)
		}
	}()

	cellsRow := t.Body[row]

	// Repeated header rows show up mid-table when a transcript spans
	// pages. Enough exact keyword cells, covering at least half the
	// row (or with a blank leading cell), is a header echo.
	hits := in.classifier.HeaderHits(cellsRow)
	if hits >= headerEchoMinHits && (hits*2 >= len(cellsRow) || cellsRow[0] == "") {
		return nil, false, nil
	}

	if in.isNoiseRow(cellsRow) {
		return nil, false, nil
	}

	year, semester := in.extractYearSemester(t, roles, row)
	code := in.extractCode(t, roles, row)
	credit, grade := in.extractCreditGrade(t, roles, row)
	subject := in.extractSubject(t, roles, row)

	rowText := t.RowText(row)
	passExempt := in.parser.IsPassExempt(rowText)
	failing := grade.HasGrade && in.scale.IsFailing(grade.Grade)

	// A row that yielded nothing at all is rejected rather than
	// recorded: no subject, no period, no credit, no grade, no
	// pass/exempt evidence.
	creditValue := credit.CreditOrZero()
	if subject == model.UnknownSubject && year == "" && semester == "" &&
		creditValue == 0 && !grade.HasGrade && !passExempt {
		return nil, false, nil
	}

	record := &model.CourseRecord{
		AcademicYear: year,
		Semester:     semester,
		CourseCode:   code,
		Subject:      subject,
		Credit:       creditValue,
		Grade:        grade.GradeOrEmpty(),
		SourceTable:  t.Index,
	}

	switch {
	case failing:
		record.Status = model.StatusFailed
	case creditValue > 0 || passExempt:
		record.Status = model.StatusCounted
	default:
		// Fields present but nothing creditable: no record.
		return nil, false, nil
	}
	return record, true, nil
}

// isNoiseRow reports whether a row is empty or administrative noise.
func (in *Interpreter) isNoiseRow(row []string) bool {
	empty := true
	for _, cell := range row {
		if cell != "" {
			empty = false
			break
		}
	}
	if empty {
		return true
	}
	for _, cell := range row {
		lower := strings.ToLower(cell)
		for _, phrase := range in.classifier.Keywords().NoiseRow {
			if strings.Contains(lower, strings.ToLower(phrase)) {
				return true
			}
		}
	}
	return false
}

// extractYearSemester reads the year and semester, preferring assigned
// columns (a year cell like "111 上" may carry both) and falling back
// to a scan of the first three columns.
func (in *Interpreter) extractYearSemester(t *model.Table, roles *model.RoleAssignment, row int) (year, semester string) {
	if col := roles.Column(model.RoleYear); col >= 0 {
		cell := t.Cell(row, col)
		year = reYearToken.FindString(cell)
		// The year digits would otherwise satisfy the numeric term
		// tokens, so strip them before looking for a term in the same
		// cell ("111 上" carries both).
		rest := cell
		if year != "" {
			rest = strings.Replace(rest, year, "", 1)
		}
		if m := in.semRe.FindStringSubmatch(rest); m != nil {
			semester = m[1]
		}
	}
	if semester == "" {
		if col := roles.Column(model.RoleSemester); col >= 0 {
			if m := in.semRe.FindStringSubmatch(t.Cell(row, col)); m != nil {
				semester = m[1]
			}
		}
	}

	limit := yearFallbackCols
	if limit > t.ColCount() {
		limit = t.ColCount()
	}
	for col := 0; col < limit && (year == "" || semester == ""); col++ {
		cell := t.Cell(row, col)
		yearTok := reYearToken.FindString(cell)
		if year == "" {
			year = yearTok
		}
		if semester == "" {
			rest := cell
			if yearTok != "" {
				rest = strings.Replace(rest, yearTok, "", 1)
			}
			if m := in.semRe.FindStringSubmatch(rest); m != nil {
				semester = m[1]
			}
		}
	}
	return year, semester
}

// extractCode reads the course code column when its content matches
// the code pattern.
func (in *Interpreter) extractCode(t *model.Table, roles *model.RoleAssignment, row int) string {
	col := roles.Column(model.RoleCourseCode)
	if col < 0 {
		return ""
	}
	cell := t.Cell(row, col)
	if in.classifier.IsCodeText(cell) {
		return cell
	}
	return ""
}

// extractCreditGrade reads the credit and gpa columns. The first pass
// takes each column's designated field only; when that yields nothing,
// both columns are retried for either field, since composite cells
// land in one column or the other depending on the detector.
func (in *Interpreter) extractCreditGrade(t *model.Table, roles *model.RoleAssignment, row int) (credit, grade grades.CreditGrade) {
	creditCol := roles.Column(model.RoleCredit)
	gpaCol := roles.Column(model.RoleGPA)

	if creditCol >= 0 {
		if cg := in.parser.Parse(t.Cell(row, creditCol)); cg.HasCredit {
			credit = cg
		}
	}
	if gpaCol >= 0 {
		if cg := in.parser.Parse(t.Cell(row, gpaCol)); cg.HasGrade {
			grade = cg
		}
	}

	// A composite cell like "A 3" parses both fields at once; whichever
	// column it landed in, share the parse with the other field.
	if !grade.HasGrade && credit.HasGrade {
		grade = credit
	}
	if !credit.HasCredit && grade.HasCredit {
		credit = grade
	}

	if credit.CreditOrZero() == 0 && !grade.HasGrade {
		for _, col := range []int{creditCol, gpaCol} {
			if col < 0 {
				continue
			}
			cg := in.parser.Parse(t.Cell(row, col))
			if !credit.HasCredit && cg.HasCredit {
				credit = grades.CreditGrade{Credit: cg.Credit, HasCredit: true}
			}
			if !grade.HasGrade && cg.HasGrade {
				grade = grades.CreditGrade{Grade: cg.Grade, HasGrade: true, PassExempt: cg.PassExempt}
			}
		}
	}
	return credit, grade
}

// extractSubject reads the subject column, enforcing the subject
// filter plus the administrative-label denylist. When the assigned
// column fails and a course-code column exists, the column immediately
// to its right is tried — detectors often shift the subject one cell
// over from the code.
func (in *Interpreter) extractSubject(t *model.Table, roles *model.RoleAssignment, row int) string {
	if col := roles.Column(model.RoleSubject); col >= 0 {
		if name := in.subjectFrom(t.Cell(row, col)); name != "" {
			return name
		}
	}
	if codeCol := roles.Column(model.RoleCourseCode); codeCol >= 0 && codeCol+1 < t.ColCount() {
		if name := in.subjectFrom(t.Cell(row, codeCol+1)); name != "" {
			return name
		}
	}
	return model.UnknownSubject
}

// subjectFrom validates one cell as a subject name, or returns "".
func (in *Interpreter) subjectFrom(cell string) string {
	if !in.classifier.IsSubjectText(cell) {
		return ""
	}
	for _, phrase := range in.classifier.Keywords().NoiseSubject {
		if strings.Contains(cell, phrase) {
			return ""
		}
	}
	return cell
}
