package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// User represents an account managed through the admin API.
type User struct {
	ID        string
	Email     string
	Role      Role
	CreatedAt time.Time
}

// UserPatch carries the fields of a partial user update. Nil fields are left unchanged.
type UserPatch struct {
	Email *string
	Role  *Role
}
