package grades

import (
	"regexp"
	"strconv"
	"strings"
)

// failingPassMark is the numeric score below which a grade fails.
const failingPassMark = 60.0

var reModifier = regexp.MustCompile(`[+\-]`)

// Scale maps grades to failing status and grade points. The zero value
// is not usable; construct with DefaultScale.
type Scale struct {
	// FailingGrades are the modifier-stripped letter grades (and local
	// phrases) that mark a failed course.
	FailingGrades []string

	// Points maps letter grades (with modifiers) to grade points on a
	// 4.3 scale.
	Points map[string]float64
}

// DefaultScale returns the letter/percentage scale used by the target
// institutions: A+..C- pass, D and below fail, numeric scores pass at
// 60.
func DefaultScale() *Scale {
	return &Scale{
		FailingGrades: []string{"D", "E", "F", "X", "不通過", "未通過", "不及格"},
		Points: map[string]float64{
			"A+": 4.3, "A": 4.0, "A-": 3.7,
			"B+": 3.3, "B": 3.0, "B-": 2.7,
			"C+": 2.3, "C": 2.0, "C-": 1.7,
			"D+": 1.3, "D": 1.0, "D-": 0.7,
			"E": 0, "F": 0, "X": 0,
		},
	}
}

// IsFailing reports whether a grade fails: its letter (stripped of
// +/- modifiers) is in the failing set, or it reads as a numeric score
// below 60.
func (s *Scale) IsFailing(grade string) bool {
	if grade == "" {
		return false
	}
	stripped := strings.ToUpper(reModifier.ReplaceAllString(grade, ""))
	for _, f := range s.FailingGrades {
		if stripped == strings.ToUpper(f) {
			return true
		}
	}
	if score, err := strconv.ParseFloat(stripped, 64); err == nil {
		return score < failingPassMark
	}
	return false
}

// GradePoints returns the grade-point value for a grade. Letter grades
// use the Points table; numeric scores contribute score/100*4.0. The
// second return is false for pass/exempt phrases and unrecognized
// text, which carry no grade points.
func (s *Scale) GradePoints(grade string) (float64, bool) {
	if grade == "" {
		return 0, false
	}
	upper := strings.ToUpper(strings.TrimSpace(grade))
	if pts, ok := s.Points[upper]; ok {
		return pts, true
	}
	if score, err := strconv.ParseFloat(upper, 64); err == nil && score >= 0 && score <= 100 {
		return score / 100 * 4.0, true
	}
	return 0, false
}
