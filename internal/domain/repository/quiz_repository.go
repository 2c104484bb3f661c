package repository

import "github.com/edulab/elearning-api/internal/domain/entity"

// QuizRepository defines the interface for quiz database operations.
// Update and Delete are part of the store contract even though no route
// exposes them today.
type QuizRepository interface {
	Create(q *entity.Quiz) error
	GetByID(id string) (*entity.Quiz, error)
	Update(id string, upd entity.QuizUpdate) (*entity.Quiz, error)
	Delete(id string) error
}
