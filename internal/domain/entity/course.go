package entity

import "time"

// Course groups an ordered list of modules under an owning instructor.
// Formateur references a User id; Content holds Module ids in order.
// Neither reference is enforced by the database, the application layer
// checks the instructor at write time.
type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Formateur   string    `json:"formateur"`
	Content     []string  `json:"content"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CourseUpdate carries a partial course mutation. Nil fields are left
// untouched.
type CourseUpdate struct {
	Title       *string
	Description *string
	Formateur   *string
	Content     *[]string
	Price       *float64
}
