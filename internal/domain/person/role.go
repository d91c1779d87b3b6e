package person

import "strings"

// Role is the discriminant identifying which variant a Person is.
// It is fixed at construction and never mutated afterwards.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// IsValid checks that the role is one of the known variants.
func (r Role) IsValid() bool {
	switch r {
	case RoleTeacher, RoleAdmin, RoleStudent:
		return true
	default:
		return false
	}
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// Tag returns the uppercase display tag used in rendered records.
func (r Role) Tag() string {
	return strings.ToUpper(string(r))
}

// HasSalary reports whether the variant carries a salary field.
func (r Role) HasSalary() bool {
	return r == RoleTeacher || r == RoleAdmin
}

// ParseRole parses user input into a Role.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", false
	}
	return r, true
}

// Roles lists all variants in a stable order.
func Roles() []Role {
	return []Role{RoleTeacher, RoleAdmin, RoleStudent}
}
