package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulab/elearning-api/internal/domain/entity"
	"github.com/edulab/elearning-api/internal/infrastructure/memory"
)

type catalogFixture struct {
	svc        *CatalogService
	users      *memory.UserStore
	instructor *entity.User
	admin      *entity.User
	learner    *entity.User
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()
	users := memory.NewUserStore()
	svc := NewCatalogService(memory.NewCourseStore(), memory.NewModuleStore(), memory.NewQuizStore(), users, nil)

	f := &catalogFixture{svc: svc, users: users}
	f.instructor = &entity.User{Username: "prof", Email: "prof@example.com", Role: entity.RoleInstructor}
	f.admin = &entity.User{Username: "root", Email: "root@example.com", Role: entity.RoleAdmin}
	f.learner = &entity.User{Username: "student", Email: "student@example.com", Role: entity.RoleLearner}
	for _, u := range []*entity.User{f.instructor, f.admin, f.learner} {
		require.NoError(t, users.Create(u))
	}
	return f
}

func (f *catalogFixture) createCourse(t *testing.T) *CourseView {
	t.Helper()
	view, err := f.svc.CreateCourse(context.Background(), &entity.Course{
		Title:       "Go 101",
		Description: "intro",
		Formateur:   f.instructor.ID,
		Price:       29,
	})
	require.NoError(t, err)
	return view
}

func TestCreateCourseChecksInstructorReference(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		_, err := f.svc.CreateCourse(ctx, &entity.Course{Title: "x", Description: "y", Formateur: "missing", Price: 1})
		assert.ErrorIs(t, err, ErrUnknownInstructor)
	})

	t.Run("learner is not an instructor", func(t *testing.T) {
		_, err := f.svc.CreateCourse(ctx, &entity.Course{Title: "x", Description: "y", Formateur: f.learner.ID, Price: 1})
		assert.ErrorIs(t, err, ErrUnknownInstructor)
	})

	t.Run("valid instructor", func(t *testing.T) {
		view := f.createCourse(t)
		assert.NotEmpty(t, view.ID)
		require.NotNil(t, view.Formateur)
		assert.Equal(t, "prof", view.Formateur.Username)
	})
}

func TestGetCourseResolvesReferencesInline(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	course := f.createCourse(t)
	mod, err := f.svc.CreateModule(ctx, &entity.Module{Title: "Variables", Content: "body", CourseID: course.ID})
	require.NoError(t, err)

	// link the module through a course update
	content := []string{mod.ID, "dangling-module-id"}
	_, err = f.svc.UpdateCourse(ctx, course.ID, entity.CourseUpdate{Content: &content})
	require.NoError(t, err)

	view, err := f.svc.GetCourse(ctx, course.ID)
	require.NoError(t, err)
	require.NotNil(t, view.Formateur)
	assert.Equal(t, f.instructor.ID, view.Formateur.ID)
	// dangling reference skipped, resolved module embedded
	require.Len(t, view.Modules, 1)
	assert.Equal(t, "Variables", view.Modules[0].Title)

	_, err = f.svc.GetCourse(ctx, "missing")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestListCoursesResolvesInstructors(t *testing.T) {
	f := newCatalogFixture(t)

	f.createCourse(t)
	f.createCourse(t)

	views, err := f.svc.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	for _, v := range views {
		require.NotNil(t, v.Formateur)
		assert.Equal(t, "prof", v.Formateur.Username)
	}
}

func TestUpdateCourse(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()
	course := f.createCourse(t)

	title := "Go 201"
	view, err := f.svc.UpdateCourse(ctx, course.ID, entity.CourseUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Go 201", view.Title)
	assert.Equal(t, "intro", view.Description)

	bad := "missing-user"
	_, err = f.svc.UpdateCourse(ctx, course.ID, entity.CourseUpdate{Formateur: &bad})
	assert.ErrorIs(t, err, ErrUnknownInstructor)

	_, err = f.svc.UpdateCourse(ctx, "missing", entity.CourseUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestDeleteCourseOwnership(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	other := &entity.User{Username: "prof2", Email: "prof2@example.com", Role: entity.RoleInstructor}
	require.NoError(t, f.users.Create(other))

	t.Run("non-owning instructor denied", func(t *testing.T) {
		course := f.createCourse(t)
		err := f.svc.DeleteCourse(ctx, course.ID, other.ID, entity.RoleInstructor)
		assert.ErrorIs(t, err, ErrNotCourseOwner)
	})

	t.Run("owner deletes own course", func(t *testing.T) {
		course := f.createCourse(t)
		require.NoError(t, f.svc.DeleteCourse(ctx, course.ID, f.instructor.ID, entity.RoleInstructor))
		_, err := f.svc.GetCourse(ctx, course.ID)
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})

	t.Run("administrator bypasses ownership", func(t *testing.T) {
		course := f.createCourse(t)
		require.NoError(t, f.svc.DeleteCourse(ctx, course.ID, f.admin.ID, entity.RoleAdmin))
	})

	t.Run("deleting a missing id succeeds", func(t *testing.T) {
		assert.NoError(t, f.svc.DeleteCourse(ctx, "missing", f.instructor.ID, entity.RoleInstructor))
	})
}

func TestCreateModuleChecksCourseReference(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateModule(ctx, &entity.Module{Title: "x", Content: "y", CourseID: "missing"})
	assert.ErrorIs(t, err, ErrUnknownCourse)

	course := f.createCourse(t)
	mod, err := f.svc.CreateModule(ctx, &entity.Module{Title: "Variables", Content: "body", CourseID: course.ID})
	require.NoError(t, err)
	assert.NotEmpty(t, mod.ID)

	got, err := f.svc.GetModule(ctx, mod.ID)
	require.NoError(t, err)
	assert.Equal(t, "Variables", got.Title)

	_, err = f.svc.GetModule(ctx, "missing")
	assert.ErrorIs(t, err, ErrModuleNotFound)
}

func TestCreateQuizChecksCourseReference(t *testing.T) {
	f := newCatalogFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateQuiz(ctx, &entity.Quiz{CourseID: "missing"})
	assert.ErrorIs(t, err, ErrUnknownCourse)

	course := f.createCourse(t)
	quiz, err := f.svc.CreateQuiz(ctx, &entity.Quiz{CourseID: course.ID, Questions: []entity.Question{
		{Question: "2+2?", Options: []string{"3", "4"}, CorrectAnswer: "4"},
	}})
	require.NoError(t, err)

	got, err := f.svc.GetQuiz(ctx, quiz.ID)
	require.NoError(t, err)
	require.Len(t, got.Questions, 1)
	// answers stay readable to any caller with quiz access
	assert.Equal(t, "4", got.Questions[0].CorrectAnswer)

	_, err = f.svc.GetQuiz(ctx, "missing")
	assert.ErrorIs(t, err, ErrQuizNotFound)
}
