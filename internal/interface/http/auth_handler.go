package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/edulab/elearning-api/internal/application"
	"github.com/edulab/elearning-api/internal/domain/entity"
	"github.com/edulab/elearning-api/internal/interface/middleware"
	"github.com/edulab/elearning-api/pkg/response"
	"github.com/edulab/elearning-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Role     string `json:"role" binding:"required,role"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		if errors.Is(err, application.ErrDuplicateUser) {
			response.Fail[any](c, http.StatusBadRequest, "username or email already exists", nil)
			return
		}
		response.Fail[any](c, http.StatusInternalServerError, "error creating user", nil)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": res.User, "token": res.Token},
		"registered", gin.H{"token_expires_at": res.TokenExpiry})
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Fail[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": res.User, "token": res.Token},
		"login successful", gin.H{"token_expires_at": res.TokenExpiry})
}

// Logout POST /api/logout
// Stateless tokens cannot be revoked server-side; this endpoint only
// acknowledges so clients can drop their copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}

// CurrentUser GET /api/user
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetUser(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Fail[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		response.Fail[any](c, http.StatusInternalServerError, "error fetching user", nil)
		return
	}
	response.Success(c, http.StatusOK, u, "current user", nil)
}
