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

type CourseHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewCourseHandler(svc *application.CatalogService, logger *logrus.Logger) *CourseHandler {
	return &CourseHandler{Svc: svc, Logger: logger}
}

type createCourseRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Formateur   string   `json:"formateur" binding:"required"`
	Content     []string `json:"content"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
}

type updateCourseRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Formateur   *string   `json:"formateur"`
	Content     *[]string `json:"content"`
	Price       *float64  `json:"price" binding:"omitempty,gte=0"`
}

// List GET /api/courses
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.Svc.ListCourses(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list courses failed")
		response.Fail[any](c, http.StatusInternalServerError, "error fetching courses", nil)
		return
	}
	response.Success(c, http.StatusOK, courses, "courses", nil)
}

// Create POST /api/courses (instructor only)
func (h *CourseHandler) Create(c *gin.Context) {
	var req createCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	course := &entity.Course{
		Title:       req.Title,
		Description: req.Description,
		Formateur:   req.Formateur,
		Content:     req.Content,
		Price:       *req.Price,
	}
	view, err := h.Svc.CreateCourse(c.Request.Context(), course)
	if err != nil {
		if errors.Is(err, application.ErrUnknownInstructor) {
			response.Fail[any](c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("create course failed")
		response.Fail[any](c, http.StatusInternalServerError, "error creating course", nil)
		return
	}
	response.Success(c, http.StatusCreated, view, "course created", nil)
}

// Get GET /api/courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
	view, err := h.Svc.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrCourseNotFound) {
			response.Fail[any](c, http.StatusNotFound, "course not found", nil)
			return
		}
		h.Logger.WithError(err).Error("get course failed")
		response.Fail[any](c, http.StatusInternalServerError, "error fetching course", nil)
		return
	}
	response.Success(c, http.StatusOK, view, "course", nil)
}

// Update PUT /api/courses/:id (instructor only)
func (h *CourseHandler) Update(c *gin.Context) {
	var req updateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	view, err := h.Svc.UpdateCourse(c.Request.Context(), c.Param("id"), entity.CourseUpdate{
		Title:       req.Title,
		Description: req.Description,
		Formateur:   req.Formateur,
		Content:     req.Content,
		Price:       req.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrCourseNotFound):
			response.Fail[any](c, http.StatusNotFound, "course not found", nil)
		case errors.Is(err, application.ErrUnknownInstructor):
			response.Fail[any](c, http.StatusBadRequest, err.Error(), nil)
		default:
			h.Logger.WithError(err).Error("update course failed")
			response.Fail[any](c, http.StatusInternalServerError, "error updating course", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, view, "course updated", nil)
}

// Delete DELETE /api/courses/:id (owning instructor or administrator)
func (h *CourseHandler) Delete(c *gin.Context) {
	actorID := c.GetString(middleware.CtxUserIDKey)
	actorRole := entity.Role(c.GetString(middleware.CtxRoleKey))

	err := h.Svc.DeleteCourse(c.Request.Context(), c.Param("id"), actorID, actorRole)
	if err != nil {
		if errors.Is(err, application.ErrNotCourseOwner) {
			response.Fail[any](c, http.StatusForbidden, "course belongs to another instructor", nil)
			return
		}
		h.Logger.WithError(err).Error("delete course failed")
		response.Fail[any](c, http.StatusInternalServerError, "error deleting course", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
