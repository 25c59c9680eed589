package classify

import (
	"github.com/tsawler/transcripta/cells"
	"github.com/tsawler/transcripta/model"
)

// minTableCols is the narrowest table that can plausibly hold a
// transcript (subject + credit/gpa + one of year/semester).
const minTableCols = 3

// IsGradesTable decides whether a table is a transcript table. It
// returns the missing essential roles when the answer is no.
//
// The test has two tiers. A header row naming all of subject,
// credit-or-gpa, year and semester is accepted on its own: a
// well-formed header is strong evidence. Without that, each essential
// role must earn acceptance from content — at least one column whose
// sampled-cell match ratio clears the role's threshold.
func (c *Classifier) IsGradesTable(t *model.Table) (bool, []model.ColumnRole) {
	if t == nil || t.ColCount() < minTableCols || t.RowCount() == 0 {
		return false, []model.ColumnRole{
			model.RoleYear, model.RoleSemester, model.RoleSubject,
			model.RoleCredit, model.RoleGPA,
		}
	}

	if HeaderNamesAllRoles(c.keywords, t.Header) {
		return true, nil
	}

	evidence := c.collectEvidence(t)
	found := map[scoreRole]bool{}
	thresholds := map[scoreRole]float64{
		scoreYear:      c.config.YearThreshold,
		scoreSemester:  c.config.SemesterThreshold,
		scoreSubject:   c.config.SubjectThreshold,
		scoreCreditGPA: c.config.CreditGPAThreshold,
	}
	for _, ev := range evidence {
		for role, threshold := range thresholds {
			if ev.ratios[role] >= threshold {
				found[role] = true
			}
		}
	}

	var missing []model.ColumnRole
	if !found[scoreYear] {
		missing = append(missing, model.RoleYear)
	}
	if !found[scoreSemester] {
		missing = append(missing, model.RoleSemester)
	}
	if !found[scoreSubject] {
		missing = append(missing, model.RoleSubject)
	}
	if !found[scoreCreditGPA] {
		missing = append(missing, model.RoleCredit, model.RoleGPA)
	}
	return len(missing) == 0, missing
}

// HeaderNamesAllRoles reports whether a candidate header row names all
// essential roles: subject, credit or gpa, year, and semester.
func HeaderNamesAllRoles(kw Keywords, header []string) bool {
	var hasSubject, hasCredit, hasGPA, hasYear, hasSemester bool
	for _, label := range header {
		if matches(label, kw.Subject) {
			hasSubject = true
		}
		if matches(label, kw.Credit) {
			hasCredit = true
		}
		if matches(label, kw.GPA) {
			hasGPA = true
		}
		if matches(label, kw.Year) {
			hasYear = true
		}
		if matches(label, kw.Semester) {
			hasSemester = true
		}
	}
	return hasSubject && (hasCredit || hasGPA) && hasYear && hasSemester
}

// BuildTable normalizes a raw grid into a Table. All-empty rows are
// dropped. When the first remaining row strongly reads as a header
// (it names every essential role), it is promoted to the header via
// unique naming; otherwise every row is data under generated Column_N
// names. Returns nil when the grid holds no content.
func (c *Classifier) BuildTable(grid model.RawGrid, index int) *model.Table {
	var rows [][]string
	for _, raw := range grid {
		row := cells.NormalizeRow(raw)
		empty := true
		for _, cell := range row {
			if cell != "" {
				empty = false
				break
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil
	}

	if len(rows) > 1 && HeaderNamesAllRoles(c.keywords, rows[0]) {
		t := model.NewTable(cells.UniqueNames(rows[0]), rows[1:])
		t.Index = index
		t.HeaderDetected = true
		return t
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	t := model.NewTable(cells.GenericNames(width), rows)
	t.Index = index
	return t
}
