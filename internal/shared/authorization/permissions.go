package authorization

// Resources guarded by casbin policies.
const (
	ResourceTicket  = "ticket"
	ResourceCitizen = "citizen"
	ResourceCatalog = "catalog"
	ResourceStats   = "stats"
	ResourceAdmin   = "admin"
)

// Actions checked against a resource.
const (
	ActionRead         = "read"
	ActionUpdateStatus = "update_status"
	ActionUpdate       = "update"
	ActionDelete       = "delete"
	ActionWrite        = "write"
	ActionCreate       = "create"
)

// Policy is one (role, resource, action) grant.
type Policy struct {
	Role     AdminRole
	Resource string
	Action   string
}

// DefaultPolicies are the grants of each role. Supervisors inherit operator
// grants and admins inherit supervisor grants.
func DefaultPolicies() []Policy {
	return []Policy{
		{RoleOperator, ResourceTicket, ActionRead},
		{RoleOperator, ResourceTicket, ActionUpdateStatus},
		{RoleOperator, ResourceCitizen, ActionRead},
		{RoleOperator, ResourceCatalog, ActionRead},

		{RoleSupervisor, ResourceStats, ActionRead},

		{RoleAdmin, ResourceTicket, ActionDelete},
		{RoleAdmin, ResourceCitizen, ActionUpdate},
		{RoleAdmin, ResourceCitizen, ActionDelete},
		{RoleAdmin, ResourceCatalog, ActionWrite},
		{RoleAdmin, ResourceAdmin, ActionCreate},
	}
}

// RoleInheritance lists (child, parent) pairs: child gets every parent grant.
func RoleInheritance() [][2]AdminRole {
	return [][2]AdminRole{
		{RoleSupervisor, RoleOperator},
		{RoleAdmin, RoleSupervisor},
	}
}
