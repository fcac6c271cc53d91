package models

// Role identifies which persona is chatting. It only changes the suggestions
// offered for unrecognized queries.
type Role string

const (
	RoleSiteLeader        Role = "site-leader"
	RoleRetailEmployee    Role = "retail-employee"
	RoleVendorPerformance Role = "vendor-performance"
	RoleIPEXTeam          Role = "ipex-team"
)

// Roles returns every known role in display order.
func Roles() []Role {
	return []Role{RoleSiteLeader, RoleRetailEmployee, RoleVendorPerformance, RoleIPEXTeam}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSiteLeader, RoleRetailEmployee, RoleVendorPerformance, RoleIPEXTeam:
		return true
	}
	return false
}

// ParseRole converts a raw role string, reporting false for unknown values.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}
