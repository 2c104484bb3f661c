package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/edulab/elearning-api/internal/domain/entity"
	handlers "github.com/edulab/elearning-api/internal/interface/http"
	"github.com/edulab/elearning-api/internal/interface/middleware"
	"github.com/edulab/elearning-api/pkg/helpers"
)

// ContentModule wires module and quiz routes. Creation is instructor only;
// reads require any authenticated identity.
type ContentModule struct {
	Modules *handlers.ModuleHandler
	Quizzes *handlers.QuizHandler
	JWT     *helpers.JWTManager
}

func NewContentModule(mh *handlers.ModuleHandler, qh *handlers.QuizHandler, jwt *helpers.JWTManager) *ContentModule {
	return &ContentModule{Modules: mh, Quizzes: qh, JWT: jwt}
}

func (m *ContentModule) Register(rg *gin.RouterGroup) {
	auth := middleware.Auth(m.JWT)
	instructor := middleware.RequireRoles(entity.RoleInstructor)

	rg.POST("/modules", auth, instructor, m.Modules.Create)
	rg.GET("/modules/:id", auth, m.Modules.Get)

	rg.POST("/quizzes", auth, instructor, m.Quizzes.Create)
	rg.GET("/quizzes/:id", auth, m.Quizzes.Get)
}
