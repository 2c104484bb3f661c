package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/edulab/elearning-api/internal/domain/entity"
	"github.com/edulab/elearning-api/internal/domain/repository"
)

type CourseStore struct {
	mu      sync.RWMutex
	courses map[string]entity.Course
}

func NewCourseStore() *CourseStore {
	return &CourseStore{courses: make(map[string]entity.Course)}
}

func (s *CourseStore) Create(c *entity.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Content == nil {
		c.Content = []string{}
	}
	s.courses[c.ID] = *c
	return nil
}

func (s *CourseStore) GetByID(id string) (*entity.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.courses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (s *CourseStore) GetAll() ([]entity.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Course, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *CourseStore) Update(id string, upd entity.CourseUpdate) (*entity.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.courses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if upd.Title != nil {
		c.Title = *upd.Title
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.Formateur != nil {
		c.Formateur = *upd.Formateur
	}
	if upd.Content != nil {
		c.Content = *upd.Content
	}
	if upd.Price != nil {
		c.Price = *upd.Price
	}
	c.UpdatedAt = time.Now()
	s.courses[id] = c
	return &c, nil
}

func (s *CourseStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.courses, id)
	return nil
}

var _ repository.CourseRepository = (*CourseStore)(nil)
