package repository

import "github.com/edulab/elearning-api/internal/domain/entity"

// CourseRepository defines the interface for course database operations.
// GetAll returns the entire collection, unfiltered and unpaginated.
// Delete is idempotent by id: deleting a nonexistent course is not an error.
type CourseRepository interface {
	Create(c *entity.Course) error
	GetByID(id string) (*entity.Course, error)
	GetAll() ([]entity.Course, error)
	Update(id string, upd entity.CourseUpdate) (*entity.Course, error)
	Delete(id string) error
}
