package model

// Role is the viewer's role resolved at login.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleProjectManager Role = "project_manager"
	RoleTechnician     Role = "technician"
	RoleViewer         Role = "viewer"
)

// IsValid returns true if the role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleProjectManager, RoleTechnician, RoleViewer:
		return true
	default:
		return false
	}
}

// Scope is the viewing identity carried through every request. Task
// visibility inside the engine is a pure predicate over this value.
type Scope struct {
	UserID string
	Role   Role
}
