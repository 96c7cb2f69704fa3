package enum

// Role is a staff role
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Valid reports whether the role is known
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}
