package user

type Role string

const (
	RoleViewer       Role = "viewer"
	RoleHousekeeping Role = "housekeeping"
	RoleRecepcion    Role = "recepcion"
	RoleAdmin        Role = "admin"
	RoleSuperadmin   Role = "superadmin"
)

// rank orders roles for "at least" checks; a higher rank can do everything a lower one can.
var rank = map[Role]int{
	RoleViewer:       1,
	RoleHousekeeping: 2,
	RoleRecepcion:    3,
	RoleAdmin:        4,
	RoleSuperadmin:   5,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := rank[r]
	return ok
}

func (r Role) AtLeast(min Role) bool {
	have, ok := rank[r]
	if !ok {
		return false
	}
	need, ok := rank[min]
	return ok && have >= need
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
