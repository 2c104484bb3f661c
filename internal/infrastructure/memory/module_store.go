package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/edulab/elearning-api/internal/domain/entity"
	"github.com/edulab/elearning-api/internal/domain/repository"
)

type ModuleStore struct {
	mu      sync.RWMutex
	modules map[string]entity.Module
}

func NewModuleStore() *ModuleStore {
	return &ModuleStore{modules: make(map[string]entity.Module)}
}

func (s *ModuleStore) Create(m *entity.Module) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	m.ID = uuid.NewString()
	m.CreatedAt = now
	m.UpdatedAt = now
	if m.Resources == nil {
		m.Resources = []string{}
	}
	s.modules[m.ID] = *m
	return nil
}

func (s *ModuleStore) GetByID(id string) (*entity.Module, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.modules[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &m, nil
}

func (s *ModuleStore) Update(id string, upd entity.ModuleUpdate) (*entity.Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.modules[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if upd.Title != nil {
		m.Title = *upd.Title
	}
	if upd.Content != nil {
		m.Content = *upd.Content
	}
	if upd.CourseID != nil {
		m.CourseID = *upd.CourseID
	}
	if upd.Resources != nil {
		m.Resources = *upd.Resources
	}
	m.UpdatedAt = time.Now()
	s.modules[id] = m
	return &m, nil
}

func (s *ModuleStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.modules, id)
	return nil
}

var _ repository.ModuleRepository = (*ModuleStore)(nil)
