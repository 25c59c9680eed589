package classify

import (
	"strings"

	"github.com/tsawler/transcripta/cells"
)

// Keywords holds the curated header and content token lists the
// classifier matches against. The lists are immutable configuration:
// build one with DefaultKeywords (or construct your own for another
// institution or language) and inject it at construction time.
type Keywords struct {
	// Year, Semester, Code, Subject, Credit and GPA are header
	// keyword lists per role. Matching is case-insensitive and
	// whitespace-insensitive, by substring.
	Year     []string
	Semester []string
	Code     []string
	Subject  []string
	Credit   []string
	GPA      []string

	// SemesterTokens is the closed set of term tokens recognized in
	// cell content (numeric terms and season names). Order matters:
	// earlier alternatives win when extracting from combined cells.
	SemesterTokens []string

	// NoiseRow lists phrases whose presence anywhere in a row marks it
	// as administrative noise.
	NoiseRow []string

	// NoiseSubject lists phrases that disqualify a cell from being a
	// subject name (administrative labels that pass the ideographic
	// filter).
	NoiseSubject []string
}

// DefaultKeywords returns the built-in keyword sets for
// Chinese-language transcripts with English fallbacks.
func DefaultKeywords() Keywords {
	return Keywords{
		Year:     []string{"學年", "學 年", "學年度", "year"},
		Semester: []string{"學期", "學 期", "semester"},
		Code:     []string{"選課代號", "課號", "科目代號", "課程代碼", "course code"},
		Subject:  []string{"科目名稱", "課程名稱", "course name", "subject name", "科目", "課程"},
		Credit:   []string{"學分", "學分數", "學分(gpa)", "學 分", "credits", "credit", "學分數(學分)", "總學分"},
		GPA:      []string{"gpa", "成績", "grade", "gpa(數值)"},
		SemesterTokens: []string{
			"上", "下", "春", "夏", "秋", "冬", "1", "2", "3",
			"春季", "夏季", "秋季", "冬季", "spring", "summer", "fall", "winter",
		},
		NoiseRow: []string{
			"體育室", "本表僅供查詢", "學號", "勞作", "http://", "https://", "www.",
		},
		NoiseSubject: []string{
			"學號", "本表", "註課組", "年級", "班級", "系別", "畢業門檻", "體育常識",
		},
	}
}

// roleLists returns the header keyword lists keyed by scoring role.
func (k Keywords) roleLists() map[scoreRole][]string {
	return map[scoreRole][]string{
		scoreYear:     k.Year,
		scoreSemester: k.Semester,
		scoreCode:     k.Code,
		scoreSubject:  k.Subject,
	}
}

// matches reports whether any keyword from the list occurs in the
// label. Both sides are compared squashed and lowercased, so "學 分"
// matches the "學分" keyword and "Credits" matches "credits".
func matches(label string, keywords []string) bool {
	norm := strings.ToLower(cells.Squash(label))
	if norm == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(norm, strings.ToLower(cells.Squash(kw))) {
			return true
		}
	}
	return false
}

// allHeaderKeywords returns the flattened, lowercased set of every
// header keyword, used for header-echo row detection and the subject
// negative filter.
func (k Keywords) allHeaderKeywords() map[string]bool {
	flat := make(map[string]bool)
	for _, list := range [][]string{k.Year, k.Semester, k.Code, k.Subject, k.Credit, k.GPA} {
		for _, kw := range list {
			flat[strings.ToLower(cells.Squash(kw))] = true
		}
	}
	return flat
}

// IsSemesterToken reports whether the cell is exactly one term token.
func (k Keywords) IsSemesterToken(cell string) bool {
	lower := strings.ToLower(cell)
	for _, tok := range k.SemesterTokens {
		if lower == strings.ToLower(tok) {
			return true
		}
	}
	return false
}
