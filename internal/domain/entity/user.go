package entity

import "time"

// Role is the closed set of identity categories. The wire strings are kept
// from the legacy platform and must not be renamed.
type Role string

const (
	RoleLearner    Role = "apprenant"
	RoleInstructor Role = "formateur"
	RoleAdmin      Role = "administrateur"
)

// Valid reports whether r is a member of the role enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleLearner, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// User is the identity record. Password holds a bcrypt digest and is never
// serialized.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
