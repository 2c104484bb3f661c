package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/edulab/elearning-api/internal/application"
	"github.com/edulab/elearning-api/internal/domain/entity"
	"github.com/edulab/elearning-api/pkg/response"
	"github.com/edulab/elearning-api/pkg/validation"
)

type ModuleHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewModuleHandler(svc *application.CatalogService, logger *logrus.Logger) *ModuleHandler {
	return &ModuleHandler{Svc: svc, Logger: logger}
}

type createModuleRequest struct {
	Title     string   `json:"title" binding:"required"`
	Content   string   `json:"content" binding:"required"`
	CourseID  string   `json:"courseId" binding:"required"`
	Resources []string `json:"resources"`
}

// Create POST /api/modules (instructor only)
func (h *ModuleHandler) Create(c *gin.Context) {
	var req createModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	mod := &entity.Module{
		Title:     req.Title,
		Content:   req.Content,
		CourseID:  req.CourseID,
		Resources: req.Resources,
	}
	created, err := h.Svc.CreateModule(c.Request.Context(), mod)
	if err != nil {
		if errors.Is(err, application.ErrUnknownCourse) {
			response.Fail[any](c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("create module failed")
		response.Fail[any](c, http.StatusInternalServerError, "error creating module", nil)
		return
	}
	response.Success(c, http.StatusCreated, created, "module created", nil)
}

// Get GET /api/modules/:id (any authenticated role)
func (h *ModuleHandler) Get(c *gin.Context) {
	mod, err := h.Svc.GetModule(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrModuleNotFound) {
			response.Fail[any](c, http.StatusNotFound, "module not found", nil)
			return
		}
		h.Logger.WithError(err).Error("get module failed")
		response.Fail[any](c, http.StatusInternalServerError, "error fetching module", nil)
		return
	}
	response.Success(c, http.StatusOK, mod, "module", nil)
}
