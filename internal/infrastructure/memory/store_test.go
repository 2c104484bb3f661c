package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulab/elearning-api/internal/domain/entity"
	"github.com/edulab/elearning-api/internal/domain/repository"
)

func TestUserStoreCreateAndLookup(t *testing.T) {
	s := NewUserStore()

	u := &entity.User{Username: "alice", Email: "alice@example.com", Password: "hash", Role: entity.RoleInstructor}
	require.NoError(t, s.Create(u))
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	byID, err := s.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byName, err := s.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	byEmail, err := s.GetByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = s.GetByID("missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserStoreRejectsDuplicates(t *testing.T) {
	s := NewUserStore()
	require.NoError(t, s.Create(&entity.User{Username: "alice", Email: "alice@example.com", Role: entity.RoleLearner}))

	err := s.Create(&entity.User{Username: "alice", Email: "other@example.com", Role: entity.RoleLearner})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	err = s.Create(&entity.User{Username: "bob", Email: "alice@example.com", Role: entity.RoleLearner})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestCourseStoreCRUD(t *testing.T) {
	s := NewCourseStore()

	c := &entity.Course{Title: "Go 101", Description: "intro", Formateur: "u1", Price: 29}
	require.NoError(t, s.Create(c))
	require.NotEmpty(t, c.ID)
	assert.NotNil(t, c.Content)

	got, err := s.GetByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go 101", got.Title)

	title := "Go 102"
	price := 39.0
	updated, err := s.Update(c.ID, entity.CourseUpdate{Title: &title, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Go 102", updated.Title)
	assert.Equal(t, 39.0, updated.Price)
	assert.Equal(t, "intro", updated.Description) // untouched field

	_, err = s.Update("missing", entity.CourseUpdate{Title: &title})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	all, err := s.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, s.Delete(c.ID))
	_, err = s.GetByID(c.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// idempotent delete
	assert.NoError(t, s.Delete(c.ID))
}

func TestModuleStoreCRUD(t *testing.T) {
	s := NewModuleStore()

	m := &entity.Module{Title: "Variables", Content: "body", CourseID: "c1"}
	require.NoError(t, s.Create(m))
	assert.NotNil(t, m.Resources)

	got, err := s.GetByID(m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Variables", got.Title)

	res := []string{"slides.pdf"}
	updated, err := s.Update(m.ID, entity.ModuleUpdate{Resources: &res})
	require.NoError(t, err)
	assert.Equal(t, []string{"slides.pdf"}, updated.Resources)
	assert.Equal(t, "body", updated.Content)

	require.NoError(t, s.Delete(m.ID))
	_, err = s.GetByID(m.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestQuizStoreCRUD(t *testing.T) {
	s := NewQuizStore()

	q := &entity.Quiz{CourseID: "c1", Questions: []entity.Question{
		{Question: "2+2?", Options: []string{"3", "4"}, CorrectAnswer: "4"},
	}}
	require.NoError(t, s.Create(q))

	got, err := s.GetByID(q.ID)
	require.NoError(t, err)
	require.Len(t, got.Questions, 1)
	assert.Equal(t, "4", got.Questions[0].CorrectAnswer)

	questions := []entity.Question{
		{Question: "2+3?", Options: []string{"4", "5"}, CorrectAnswer: "5"},
	}
	updated, err := s.Update(q.ID, entity.QuizUpdate{Questions: &questions})
	require.NoError(t, err)
	assert.Equal(t, "2+3?", updated.Questions[0].Question)

	require.NoError(t, s.Delete(q.ID))
	_, err = s.GetByID(q.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
