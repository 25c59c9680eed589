package model

// ColumnRole is the semantic meaning assigned to a table column.
type ColumnRole int

const (
	// RoleUnknown marks a column with no inferred meaning.
	RoleUnknown ColumnRole = iota
	// RoleYear holds academic year tokens (3-4 digit numbers).
	RoleYear
	// RoleSemester holds term tokens (上/下, seasons, 1-3).
	RoleSemester
	// RoleCourseCode holds short alphanumeric course codes.
	RoleCourseCode
	// RoleSubject holds course names.
	RoleSubject
	// RoleCredit holds credit counts, possibly combined with a grade.
	RoleCredit
	// RoleGPA holds letter grades or numeric scores, possibly combined
	// with a credit count.
	RoleGPA
)

// String returns the role name.
func (r ColumnRole) String() string {
	switch r {
	case RoleYear:
		return "year"
	case RoleSemester:
		return "semester"
	case RoleCourseCode:
		return "course code"
	case RoleSubject:
		return "subject"
	case RoleCredit:
		return "credit"
	case RoleGPA:
		return "gpa"
	default:
		return "unknown"
	}
}

// RoleAssignment maps column indices to roles for one table. Columns
// without an entry are RoleUnknown. A column never holds two roles; a
// role other than the credit/gpa pair never spans two columns.
type RoleAssignment struct {
	byColumn map[int]ColumnRole
	byRole   map[ColumnRole]int
}

// NewRoleAssignment creates an empty assignment.
func NewRoleAssignment() *RoleAssignment {
	return &RoleAssignment{
		byColumn: make(map[int]ColumnRole),
		byRole:   make(map[ColumnRole]int),
	}
}

// Assign binds a column to a role. It reports false without modifying
// the assignment when either side is already claimed.
func (a *RoleAssignment) Assign(col int, role ColumnRole) bool {
	if role == RoleUnknown || col < 0 {
		return false
	}
	if _, taken := a.byColumn[col]; taken {
		return false
	}
	if _, taken := a.byRole[role]; taken {
		return false
	}
	a.byColumn[col] = role
	a.byRole[role] = col
	return true
}

// Role returns the role for a column (RoleUnknown if unassigned).
func (a *RoleAssignment) Role(col int) ColumnRole {
	if r, ok := a.byColumn[col]; ok {
		return r
	}
	return RoleUnknown
}

// Column returns the column index bound to a role, or -1.
func (a *RoleAssignment) Column(role ColumnRole) int {
	if c, ok := a.byRole[role]; ok {
		return c
	}
	return -1
}

// Has reports whether the role is bound to any column.
func (a *RoleAssignment) Has(role ColumnRole) bool {
	_, ok := a.byRole[role]
	return ok
}

// Len returns the number of bound columns.
func (a *RoleAssignment) Len() int {
	return len(a.byColumn)
}
