package grades

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/transcripta/cells"
)

// MaxCredit is the plausible ceiling for a single course's credits.
// Numbers above it are assumed to be scores or stray page numbers, not
// credit counts.
const MaxCredit = 5.0

// Patterns for composite credit/grade cells. Transcripts encode
// "credit + letter grade" in one cell in either order, so both
// orientations are tried before falling back to bare tokens.
var (
	reGradeThenCredit = regexp.MustCompile(`^([A-Fa-f][+\-]?)\s*(\d+(?:\.\d+)?)`)
	reCreditThenGrade = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([A-Fa-f][+\-]?)`)
	reNumber          = regexp.MustCompile(`\d+(?:\.\d+)?`)
	reGradeToken      = regexp.MustCompile(`(?:^|[^A-Za-z])([A-Fa-f][+\-]?)(?:[^A-Za-z0-9]|$)`)
	reGradeOnly       = regexp.MustCompile(`^[A-Fa-f][+\-]?$`)
)

// CreditGrade is the tri-state result of parsing a composite cell.
// HasCredit and HasGrade distinguish "absent" from "legitimately
// zero/empty": a 0-credit exempt course has HasCredit false but
// PassExempt true, while a parse miss has all three unset.
type CreditGrade struct {
	// Credit is the parsed credit count. Meaningful only when
	// HasCredit is true.
	Credit float64

	// HasCredit reports whether a credit value was found.
	HasCredit bool

	// Grade is the parsed grade text: an uppercased letter grade, or
	// the normalized pass/exempt phrase. Meaningful only when HasGrade
	// is true.
	Grade string

	// HasGrade reports whether a grade token was found.
	HasGrade bool

	// PassExempt reports whether the cell held a pass/exempt phrase
	// rather than a literal grade.
	PassExempt bool
}

// Empty reports whether parsing found nothing at all.
func (cg CreditGrade) Empty() bool {
	return !cg.HasCredit && !cg.HasGrade
}

// CreditOrZero returns the credit, or 0 when absent. Mirrors the
// sentinel view call sites sometimes want.
func (cg CreditGrade) CreditOrZero() float64 {
	if cg.HasCredit {
		return cg.Credit
	}
	return 0
}

// GradeOrEmpty returns the grade, or "" when absent.
func (cg CreditGrade) GradeOrEmpty() string {
	if cg.HasGrade {
		return cg.Grade
	}
	return ""
}

// Parser extracts (credit, grade) pairs from free-text cells. The
// zero value is not usable; construct with NewParser.
type Parser struct {
	// PassKeywords are the lowercase phrases that mark a pass/exempt
	// outcome. Matched by substring against the normalized cell.
	PassKeywords []string
}

// DefaultPassKeywords returns the built-in pass/exempt phrase list.
func DefaultPassKeywords() []string {
	return []string{"通過", "抵免", "pass", "exempt"}
}

// NewParser creates a Parser with the default pass/exempt keywords.
func NewParser() *Parser {
	return &Parser{PassKeywords: DefaultPassKeywords()}
}

// Parse extracts a credit and grade from a single cell. Attempts, in
// order, first success winning:
//
//  1. pass/exempt keyword → the normalized text becomes the grade
//  2. "<grade> <credit>" (e.g. "A 2", "C- 3"), credit within bounds
//  3. "<credit> <grade>" (e.g. "3 B-"), credit within bounds
//  4. any bare in-range number as credit, plus a grade token from the
//     remaining text if one is present
//  5. a bare grade token alone
//
// Anything else parses to the empty CreditGrade; ambiguity is not an
// error (callers apply the row rejection rule instead).
func (p *Parser) Parse(text string) CreditGrade {
	clean := cells.CollapseSpace(text)
	if clean == "" {
		return CreditGrade{}
	}
	lower := strings.ToLower(clean)

	for _, kw := range p.PassKeywords {
		if strings.Contains(lower, kw) {
			return CreditGrade{Grade: clean, HasGrade: true, PassExempt: true}
		}
	}

	if m := reGradeThenCredit.FindStringSubmatch(clean); m != nil {
		if credit, ok := parseCredit(m[2]); ok {
			return CreditGrade{
				Credit:    credit,
				HasCredit: true,
				Grade:     strings.ToUpper(m[1]),
				HasGrade:  true,
			}
		}
	}

	if m := reCreditThenGrade.FindStringSubmatch(clean); m != nil {
		if credit, ok := parseCredit(m[1]); ok {
			return CreditGrade{
				Credit:    credit,
				HasCredit: true,
				Grade:     strings.ToUpper(m[2]),
				HasGrade:  true,
			}
		}
	}

	if loc := reNumber.FindStringIndex(clean); loc != nil {
		if credit, ok := parseCredit(clean[loc[0]:loc[1]]); ok {
			cg := CreditGrade{Credit: credit, HasCredit: true}
			rest := clean[:loc[0]] + " " + clean[loc[1]:]
			if m := reGradeToken.FindStringSubmatch(rest); m != nil {
				cg.Grade = strings.ToUpper(m[1])
				cg.HasGrade = true
			}
			return cg
		}
	}

	if m := reGradeToken.FindStringSubmatch(clean); m != nil {
		return CreditGrade{Grade: strings.ToUpper(m[1]), HasGrade: true}
	}

	return CreditGrade{}
}

// IsPassExempt reports whether any pass/exempt keyword occurs in the
// text. Matching is case-insensitive and whitespace-tolerant.
func (p *Parser) IsPassExempt(text string) bool {
	lower := strings.ToLower(cells.CollapseSpace(text))
	if lower == "" {
		return false
	}
	for _, kw := range p.PassKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// IsGradeToken reports whether the text is exactly one letter grade
// with an optional +/- modifier.
func IsGradeToken(text string) bool {
	return reGradeOnly.MatchString(text)
}

// parseCredit parses a number and checks the credit bounds.
func parseCredit(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if v < 0 || v > MaxCredit {
		return 0, false
	}
	return v, true
}
