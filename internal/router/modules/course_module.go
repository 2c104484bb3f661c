package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/edulab/elearning-api/internal/domain/entity"
	handlers "github.com/edulab/elearning-api/internal/interface/http"
	"github.com/edulab/elearning-api/internal/interface/middleware"
	"github.com/edulab/elearning-api/pkg/helpers"
)

// CourseModule wires the course routes.
// Public: GET /api/courses, GET /api/courses/:id
// Instructor: POST /api/courses, PUT /api/courses/:id
// Instructor or administrator: DELETE /api/courses/:id
type CourseModule struct {
	Handler *handlers.CourseHandler
	JWT     *helpers.JWTManager
}

func NewCourseModule(h *handlers.CourseHandler, jwt *helpers.JWTManager) *CourseModule {
	return &CourseModule{Handler: h, JWT: jwt}
}

func (m *CourseModule) Register(rg *gin.RouterGroup) {
	rg.GET("/courses", m.Handler.List)
	rg.GET("/courses/:id", m.Handler.Get)

	auth := middleware.Auth(m.JWT)
	instructor := middleware.RequireRoles(entity.RoleInstructor)
	instructorOrAdmin := middleware.RequireRoles(entity.RoleInstructor, entity.RoleAdmin)

	rg.POST("/courses", auth, instructor, m.Handler.Create)
	rg.PUT("/courses/:id", auth, instructor, m.Handler.Update)
	rg.DELETE("/courses/:id", auth, instructorOrAdmin, m.Handler.Delete)
}
