package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/edulab/elearning-api/internal/interface/http"
	"github.com/edulab/elearning-api/internal/interface/middleware"
	"github.com/edulab/elearning-api/pkg/helpers"
)

// AuthModule wires registration, login, logout and the current-user
// lookup.
// Public: POST /api/register, POST /api/login, POST /api/logout
// Protected: GET /api/user
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/register", m.Handler.Register)
	rg.POST("/login", m.Handler.Login)
	rg.POST("/logout", m.Handler.Logout)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/user", m.Handler.CurrentUser)
	}
}
