package classify

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tsawler/transcripta/cells"
	"github.com/tsawler/transcripta/grades"
	"github.com/tsawler/transcripta/model"
)

// scoreRole is the internal scoring axis. Credit and GPA are scored
// jointly: their content evidence (a cell the composite parser can
// read) cannot tell the two apart, so the combined role claims up to
// two columns and is split during assignment.
type scoreRole int

const (
	scoreYear scoreRole = iota
	scoreSemester
	scoreCode
	scoreSubject
	scoreCreditGPA
)

var scoreRoles = []scoreRole{scoreYear, scoreSemester, scoreCode, scoreSubject, scoreCreditGPA}

// Config holds classifier tuning.
type Config struct {
	// SampleRows caps how many leading body rows feed content scoring.
	SampleRows int

	// HeaderWeight is the fixed score a header keyword match
	// contributes to a (column, role) pair. Content ratios are at most
	// 1.0, so the default keeps header evidence dominant.
	HeaderWeight float64

	// Acceptance thresholds per role. Year and semester tokens are
	// unambiguous, so they demand high ratios; subject and credit/gpa
	// content is noisier and earns a lower bar.
	YearThreshold      float64
	SemesterThreshold  float64
	SubjectThreshold   float64
	CreditGPAThreshold float64
}

// DefaultConfig returns the default classifier configuration.
func DefaultConfig() Config {
	return Config{
		SampleRows:         20,
		HeaderWeight:       2.0,
		YearThreshold:      0.6,
		SemesterThreshold:  0.6,
		SubjectThreshold:   0.4,
		CreditGPAThreshold: 0.4,
	}
}

var (
	reAllDigits = regexp.MustCompile(`^\d+$`)
	reCodeLike  = regexp.MustCompile(`^[A-Za-z0-9]{3,8}$`)
	reHan       = regexp.MustCompile(`\p{Han}`)
)

// Classifier infers column roles for normalized tables and decides
// whether a table is a transcript at all.
type Classifier struct {
	keywords  Keywords
	config    Config
	parser    *grades.Parser
	headerSet map[string]bool
}

// NewClassifier creates a Classifier with default keywords, config and
// parser.
func NewClassifier() *Classifier {
	return NewClassifierWith(DefaultKeywords(), DefaultConfig(), grades.NewParser())
}

// NewClassifierWith creates a Classifier with explicit configuration.
func NewClassifierWith(kw Keywords, cfg Config, parser *grades.Parser) *Classifier {
	if cfg.SampleRows <= 0 {
		cfg.SampleRows = DefaultConfig().SampleRows
	}
	if parser == nil {
		parser = grades.NewParser()
	}
	return &Classifier{
		keywords:  kw,
		config:    cfg,
		parser:    parser,
		headerSet: kw.allHeaderKeywords(),
	}
}

// Keywords returns the keyword sets the classifier was built with.
func (c *Classifier) Keywords() Keywords { return c.keywords }

// Parser returns the composite field parser the classifier scores with.
func (c *Classifier) Parser() *grades.Parser { return c.parser }

// columnEvidence accumulates header and content evidence for one
// column.
type columnEvidence struct {
	col          int
	headerCredit bool
	headerGPA    bool
	ratios       map[scoreRole]float64
	scores       map[scoreRole]float64
}

// scored is one (score, column, role) triple awaiting assignment.
type scored struct {
	score float64
	col   int
	role  scoreRole
}

// Classify scores each column of the table against the semantic roles
// and returns the best mutually-exclusive assignment. Ties break
// toward the leftmost column. Unclaimed columns stay RoleUnknown.
func (c *Classifier) Classify(t *model.Table) *model.RoleAssignment {
	evidence := c.collectEvidence(t)

	var triples []scored
	for _, ev := range evidence {
		for role, score := range ev.scores {
			if score > 0 {
				triples = append(triples, scored{score: score, col: ev.col, role: role})
			}
		}
	}

	// Deterministic total order: score desc, column asc, role asc.
	sort.Slice(triples, func(i, j int) bool {
		if triples[i].score != triples[j].score {
			return triples[i].score > triples[j].score
		}
		if triples[i].col != triples[j].col {
			return triples[i].col < triples[j].col
		}
		return triples[i].role < triples[j].role
	})

	assignment := model.NewRoleAssignment()
	for _, tr := range triples {
		if assignment.Role(tr.col) != model.RoleUnknown {
			continue
		}
		switch tr.role {
		case scoreYear:
			assignment.Assign(tr.col, model.RoleYear)
		case scoreSemester:
			assignment.Assign(tr.col, model.RoleSemester)
		case scoreCode:
			assignment.Assign(tr.col, model.RoleCourseCode)
		case scoreSubject:
			assignment.Assign(tr.col, model.RoleSubject)
		case scoreCreditGPA:
			c.assignCreditGPA(assignment, evidence[tr.col])
		}
	}
	return assignment
}

// assignCreditGPA splits the combined credit/gpa role for one claimed
// column. A header keyword naming credit or gpa decides directly;
// otherwise the first claim goes to credit, the second to gpa.
func (c *Classifier) assignCreditGPA(a *model.RoleAssignment, ev columnEvidence) {
	switch {
	case ev.headerCredit && !a.Has(model.RoleCredit):
		a.Assign(ev.col, model.RoleCredit)
	case ev.headerGPA && !a.Has(model.RoleGPA):
		a.Assign(ev.col, model.RoleGPA)
	case !a.Has(model.RoleCredit):
		a.Assign(ev.col, model.RoleCredit)
	case !a.Has(model.RoleGPA):
		a.Assign(ev.col, model.RoleGPA)
	}
}

// collectEvidence runs both scoring phases over the table.
func (c *Classifier) collectEvidence(t *model.Table) []columnEvidence {
	sample := t.RowCount()
	if sample > c.config.SampleRows {
		sample = c.config.SampleRows
	}

	roleLists := c.keywords.roleLists()
	evidence := make([]columnEvidence, t.ColCount())

	for col := range evidence {
		ev := columnEvidence{
			col:    col,
			ratios: make(map[scoreRole]float64),
			scores: make(map[scoreRole]float64),
		}

		// Header-keyword phase.
		name := t.Header[col]
		for role, list := range roleLists {
			if matches(name, list) {
				ev.scores[role] += c.config.HeaderWeight
			}
		}
		ev.headerCredit = matches(name, c.keywords.Credit)
		ev.headerGPA = matches(name, c.keywords.GPA)
		if ev.headerCredit {
			ev.scores[scoreCreditGPA] += c.config.HeaderWeight
		}
		if ev.headerGPA {
			ev.scores[scoreCreditGPA] += c.config.HeaderWeight
		}

		// Content phase over the leading sample.
		if sample > 0 {
			counts := make(map[scoreRole]int)
			for row := 0; row < sample; row++ {
				cell := t.Cell(row, col)
				if c.isYearLike(cell) {
					counts[scoreYear]++
				}
				if c.keywords.IsSemesterToken(cell) {
					counts[scoreSemester]++
				}
				if c.isCodeLike(cell) {
					counts[scoreCode]++
				}
				if c.isSubjectLike(cell) {
					counts[scoreSubject]++
				}
				if c.isCreditGPALike(cell) {
					counts[scoreCreditGPA]++
				}
			}
			for _, role := range scoreRoles {
				ratio := float64(counts[role]) / float64(sample)
				ev.ratios[role] = ratio
				ev.scores[role] += ratio
			}
		}

		evidence[col] = ev
	}
	return evidence
}

// isYearLike reports whether the cell is a 3 or 4 digit number.
func (c *Classifier) isYearLike(cell string) bool {
	return reAllDigits.MatchString(cell) && (len(cell) == 3 || len(cell) == 4)
}

// isCodeLike reports whether the cell looks like a course code: 3-8
// alphanumerics, not purely numeric.
func (c *Classifier) isCodeLike(cell string) bool {
	return reCodeLike.MatchString(cell) && !reAllDigits.MatchString(cell)
}

// isSubjectLike applies the subject negative filter: at least two
// runes with ideographic content that does not look like a number, a
// grade, a pass/exempt phrase, or a header keyword.
func (c *Classifier) isSubjectLike(cell string) bool {
	if cell == "" || !reHan.MatchString(cell) {
		return false
	}
	if len([]rune(cell)) < 2 {
		return false
	}
	if reAllDigits.MatchString(cell) || grades.IsGradeToken(cell) {
		return false
	}
	if c.parser.IsPassExempt(cell) {
		return false
	}
	if strings.EqualFold(cell, model.UnknownSubject) {
		return false
	}
	lower := strings.ToLower(cells.Squash(cell))
	for kw := range c.headerSet {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	return true
}

// isCreditGPALike reports whether the composite parser gets anything
// non-trivial out of the cell.
func (c *Classifier) isCreditGPALike(cell string) bool {
	if cell == "" {
		return false
	}
	cg := c.parser.Parse(cell)
	if cg.PassExempt || cg.HasCredit {
		return true
	}
	return cg.HasGrade && grades.IsGradeToken(cg.Grade)
}

// HeaderHits counts how many cells of a row are exactly header
// keywords. Used for header-echo row detection.
func (c *Classifier) HeaderHits(row []string) int {
	hits := 0
	for _, cell := range row {
		if c.headerSet[strings.ToLower(cells.Squash(cell))] {
			hits++
		}
	}
	return hits
}

// IsSubjectText exposes the subject filter for the row interpreter.
func (c *Classifier) IsSubjectText(cell string) bool {
	return c.isSubjectLike(cell)
}

// IsCodeText exposes the course-code pattern for the row interpreter.
func (c *Classifier) IsCodeText(cell string) bool {
	return c.isCodeLike(cell)
}
