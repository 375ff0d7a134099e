package authorization

// AdminRole is the staff role carried in admin tokens and casbin policies.
type AdminRole string

const (
	RoleOperator   AdminRole = "operador"
	RoleSupervisor AdminRole = "supervisor"
	RoleAdmin      AdminRole = "admin"
)

func (r AdminRole) String() string {
	return string(r)
}

func (r AdminRole) IsValid() bool {
	switch r {
	case RoleOperator, RoleSupervisor, RoleAdmin:
		return true
	}
	return false
}

// ParseAdminRole maps unknown roles to the least privileged one.
func ParseAdminRole(s string) AdminRole {
	role := AdminRole(s)
	if role.IsValid() {
		return role
	}
	return RoleOperator
}
