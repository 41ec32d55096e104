// Package authorization defines the closed set of staff roles. Role checks
// go through the predicates here instead of scattered string comparisons.
package authorization

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleFrontDesk  Role = "front_desk"
	RoleCashier    Role = "cashier"
	RoleDesigner   Role = "designer"
	RoleProduction Role = "production"
)

var validRoles = map[Role]bool{
	RoleAdmin:      true,
	RoleFrontDesk:  true,
	RoleCashier:    true,
	RoleDesigner:   true,
	RoleProduction: true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) IsFrontDesk() bool {
	return r == RoleFrontDesk
}

func (r Role) IsCashier() bool {
	return r == RoleCashier
}

func (r Role) IsDesigner() bool {
	return r == RoleDesigner
}

func (r Role) IsProduction() bool {
	return r == RoleProduction
}

// IsOrderScoped reports whether the role's ticket visibility is limited to
// the actor's order branch.
func (r Role) IsOrderScoped() bool {
	return r == RoleFrontDesk || r == RoleCashier
}

func ParseRole(s string) (Role, bool) {
	role := Role(s)
	return role, role.IsValid()
}
