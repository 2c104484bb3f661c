package repository

import "github.com/edulab/elearning-api/internal/domain/entity"

// ModuleRepository defines the interface for module database operations.
// Update and Delete are part of the store contract even though no route
// exposes them today.
type ModuleRepository interface {
	Create(m *entity.Module) error
	GetByID(id string) (*entity.Module, error)
	Update(id string, upd entity.ModuleUpdate) (*entity.Module, error)
	Delete(id string) error
}
