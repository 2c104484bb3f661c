package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/edulab/elearning-api/internal/domain/entity"
	"github.com/edulab/elearning-api/internal/domain/repository"
)

type QuizStore struct {
	mu      sync.RWMutex
	quizzes map[string]entity.Quiz
}

func NewQuizStore() *QuizStore {
	return &QuizStore{quizzes: make(map[string]entity.Quiz)}
}

func (s *QuizStore) Create(q *entity.Quiz) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	q.ID = uuid.NewString()
	q.CreatedAt = now
	q.UpdatedAt = now
	if q.Questions == nil {
		q.Questions = []entity.Question{}
	}
	s.quizzes[q.ID] = *q
	return nil
}

func (s *QuizStore) GetByID(id string) (*entity.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quizzes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &q, nil
}

func (s *QuizStore) Update(id string, upd entity.QuizUpdate) (*entity.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quizzes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if upd.CourseID != nil {
		q.CourseID = *upd.CourseID
	}
	if upd.Questions != nil {
		q.Questions = *upd.Questions
	}
	q.UpdatedAt = time.Now()
	s.quizzes[id] = q
	return &q, nil
}

func (s *QuizStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.quizzes, id)
	return nil
}

var _ repository.QuizRepository = (*QuizStore)(nil)
