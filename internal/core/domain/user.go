package domain

import "time"

// Role is the authorization level carried by a user and its tokens.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User models a registered account. Password only ever holds a bcrypt hash.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Username  string
	Password  string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserPatch carries the fields of a partial user update. Nil means "leave as is".
// There is no Role field. Roles change through UpdateRole only.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Username  *string
	Password  *string
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && p.Username == nil && p.Password == nil
}
