package user

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleVendor      Role = "vendor"
	RoleDeliveryBoy Role = "delivery_boy"
	RoleCustomer    Role = "customer"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleVendor, RoleDeliveryBoy, RoleCustomer:
		return true
	default:
		return false
	}
}

// CanAccessDashboard reports whether the role may use the admin dashboard.
func (r Role) CanAccessDashboard() bool {
	return r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
