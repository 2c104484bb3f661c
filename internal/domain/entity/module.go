package entity

import "time"

// Module is a unit of course content. Resources are opaque identifiers
// (URLs or asset keys) attached to the module.
type Module struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CourseID  string    `json:"courseId"`
	Resources []string  `json:"resources"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ModuleUpdate carries a partial module mutation. Nil fields are left
// untouched.
type ModuleUpdate struct {
	Title     *string
	Content   *string
	CourseID  *string
	Resources *[]string
}
