package models

// Role is the closed set of platform roles carried in the token's role claim.
// An unrecognized or missing claim maps to RoleUnknown, which grants nothing.
type Role string

const (
	RoleUnknown Role = ""
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
	RoleAdmin   Role = "ADMIN"
)

// ParseRole maps a raw role claim onto the enumeration.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return Role(s)
	default:
		return RoleUnknown
	}
}

// CanManageCatalog reports whether the role may create marketplace products.
func (r Role) CanManageCatalog() bool {
	return r == RoleTeacher || r == RoleAdmin
}

// CanManageExams reports whether the role may create and start exams.
// Everyone else takes exams instead.
func (r Role) CanManageExams() bool {
	return r == RoleTeacher || r == RoleAdmin
}
