package model

// UnknownSubject is the sentinel subject name used when no cell in a
// row passes the subject filter. The value matches what institutions
// in the target locale expect to read in exported lists.
const UnknownSubject = "未知科目"

// Status is the terminal classification of a data row.
type Status int

const (
	// StatusCounted marks a course whose credits count toward the total.
	StatusCounted Status = iota
	// StatusFailed marks a course with a failing grade. Its credits are
	// excluded from the total.
	StatusFailed
	// StatusRejected marks a row that produced no usable fields.
	// Rejected rows never appear in output collections.
	StatusRejected
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusCounted:
		return "counted"
	case StatusFailed:
		return "failed"
	default:
		return "rejected"
	}
}

// CourseRecord is one interpreted transcript row. Records are
// immutable once appended to an output collection; they are never
// merged or updated afterward.
type CourseRecord struct {
	// AcademicYear is a 3-4 digit year token, or "" when undetected.
	AcademicYear string

	// Semester is a term token (上, 下, seasons, 1-3), or "".
	Semester string

	// CourseCode is the short alphanumeric course identifier, or "".
	CourseCode string

	// Subject is the course name. Defaults to UnknownSubject.
	Subject string

	// Credit is the course's credit count. Zero is legitimate for
	// pass/exempt courses.
	Credit float64

	// Grade is the letter grade, numeric score, or pass/exempt phrase.
	Grade string

	// SourceTable is the Index of the table the row came from.
	SourceTable int

	// Status is the row's terminal classification.
	Status Status
}

// Rejection describes a table that failed the acceptance test.
type Rejection struct {
	// TableIndex identifies the rejected table.
	TableIndex int

	// MissingRoles lists the roles that could not be resolved from
	// either header keywords or content patterns.
	MissingRoles []ColumnRole
}

// AggregateResult is the outcome of interpreting a batch of tables.
type AggregateResult struct {
	// TotalCredits is the sum of Counted course credits. Failed course
	// credits are excluded.
	TotalCredits float64

	// TotalGradePoints is the credit-weighted sum of grade points for
	// counted courses with a recognized grade. Divide by TotalCredits
	// for an average; zero when no graded courses were counted.
	TotalGradePoints float64

	// Counted holds courses whose credits count, in encounter order.
	Counted []CourseRecord

	// Failed holds failing courses, in encounter order.
	Failed []CourseRecord

	// Rejections describes tables excluded by the acceptance test.
	Rejections []Rejection
}
