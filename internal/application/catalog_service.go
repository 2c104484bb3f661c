package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/edulab/elearning-api/internal/domain/entity"
	repo "github.com/edulab/elearning-api/internal/domain/repository"
)

var (
	ErrCourseNotFound    = errors.New("course not found")
	ErrModuleNotFound    = errors.New("module not found")
	ErrQuizNotFound      = errors.New("quiz not found")
	ErrUnknownInstructor = errors.New("formateur does not exist or is not an instructor")
	ErrUnknownCourse     = errors.New("referenced course does not exist")
	ErrNotCourseOwner    = errors.New("course belongs to another instructor")
)

// InstructorSummary is the owning-instructor detail embedded in course
// reads, replacing the raw formateur id.
type InstructorSummary struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     entity.Role `json:"role"`
}

// CourseView is a course with references resolved: formateur as an
// instructor summary and, on single reads, content as full module
// documents.
type CourseView struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Formateur   *InstructorSummary `json:"formateur"`
	Content     []string           `json:"content"`
	Modules     []entity.Module    `json:"modules,omitempty"`
	Price       float64            `json:"price"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// CatalogService orchestrates course, module and quiz operations. It
// enforces reference existence at write time: a course must point at a
// real instructor and modules/quizzes at a real course. References already
// stored are never revalidated on read; a dangling formateur simply
// resolves to null.
type CatalogService struct {
	Courses repo.CourseRepository
	Modules repo.ModuleRepository
	Quizzes repo.QuizRepository
	Users   repo.UserRepository
	Logger  *logrus.Logger
}

func NewCatalogService(courses repo.CourseRepository, modules repo.ModuleRepository, quizzes repo.QuizRepository, users repo.UserRepository, logger *logrus.Logger) *CatalogService {
	return &CatalogService{Courses: courses, Modules: modules, Quizzes: quizzes, Users: users, Logger: logger}
}

func (s *CatalogService) instructorSummary(id string) *InstructorSummary {
	u, err := s.Users.GetByID(id)
	if err != nil {
		return nil
	}
	return &InstructorSummary{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

func (s *CatalogService) courseView(c *entity.Course, withModules bool) *CourseView {
	v := &CourseView{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Formateur:   s.instructorSummary(c.Formateur),
		Content:     c.Content,
		Price:       c.Price,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if withModules {
		v.Modules = make([]entity.Module, 0, len(c.Content))
		for _, mid := range c.Content {
			m, err := s.Modules.GetByID(mid)
			if err != nil {
				continue // dangling module reference, skip
			}
			v.Modules = append(v.Modules, *m)
		}
	}
	return v
}

// CreateCourse verifies the referenced instructor before writing.
func (s *CatalogService) CreateCourse(ctx context.Context, c *entity.Course) (*CourseView, error) {
	owner, err := s.Users.GetByID(c.Formateur)
	if err != nil || owner.Role != entity.RoleInstructor {
		return nil, ErrUnknownInstructor
	}
	if err := s.Courses.Create(c); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("create course failed")
		}
		return nil, err
	}
	return s.courseView(c, false), nil
}

// GetCourse resolves the instructor and the module documents inline.
func (s *CatalogService) GetCourse(ctx context.Context, id string) (*CourseView, error) {
	c, err := s.Courses.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return s.courseView(c, true), nil
}

// ListCourses returns every course with instructor details resolved
// inline. No pagination: the full collection comes back on every call.
func (s *CatalogService) ListCourses(ctx context.Context) ([]CourseView, error) {
	courses, err := s.Courses.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]CourseView, 0, len(courses))
	for i := range courses {
		out = append(out, *s.courseView(&courses[i], false))
	}
	return out, nil
}

// UpdateCourse applies a partial mutation. A formateur change is validated
// like a create.
func (s *CatalogService) UpdateCourse(ctx context.Context, id string, upd entity.CourseUpdate) (*CourseView, error) {
	if upd.Formateur != nil {
		owner, err := s.Users.GetByID(*upd.Formateur)
		if err != nil || owner.Role != entity.RoleInstructor {
			return nil, ErrUnknownInstructor
		}
	}
	c, err := s.Courses.Update(id, upd)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return s.courseView(c, false), nil
}

// DeleteCourse removes a course. Administrators may delete any course; an
// instructor only their own. Deleting an id that no longer exists is
// success. Referenced modules are not cascaded.
func (s *CatalogService) DeleteCourse(ctx context.Context, id, actorID string, actorRole entity.Role) error {
	if actorRole != entity.RoleAdmin {
		c, err := s.Courses.GetByID(id)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil // idempotent delete
			}
			return err
		}
		if c.Formateur != actorID {
			return ErrNotCourseOwner
		}
	}
	return s.Courses.Delete(id)
}

// CreateModule verifies the referenced course before writing. The course
// content list is not touched; linking modules into a course is a separate
// course update.
func (s *CatalogService) CreateModule(ctx context.Context, m *entity.Module) (*entity.Module, error) {
	if _, err := s.Courses.GetByID(m.CourseID); err != nil {
		return nil, ErrUnknownCourse
	}
	if err := s.Modules.Create(m); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("create module failed")
		}
		return nil, err
	}
	return m, nil
}

func (s *CatalogService) GetModule(ctx context.Context, id string) (*entity.Module, error) {
	m, err := s.Modules.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrModuleNotFound
		}
		return nil, err
	}
	return m, nil
}

// CreateQuiz verifies the referenced course before writing. The stored
// correct answers come back verbatim on reads.
func (s *CatalogService) CreateQuiz(ctx context.Context, q *entity.Quiz) (*entity.Quiz, error) {
	if _, err := s.Courses.GetByID(q.CourseID); err != nil {
		return nil, ErrUnknownCourse
	}
	if err := s.Quizzes.Create(q); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("create quiz failed")
		}
		return nil, err
	}
	return q, nil
}

func (s *CatalogService) GetQuiz(ctx context.Context, id string) (*entity.Quiz, error) {
	q, err := s.Quizzes.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	return q, nil
}
