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

type QuizHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewQuizHandler(svc *application.CatalogService, logger *logrus.Logger) *QuizHandler {
	return &QuizHandler{Svc: svc, Logger: logger}
}

type quizQuestion struct {
	Question      string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2"`
	CorrectAnswer string   `json:"correctAnswer" binding:"required"`
}

type createQuizRequest struct {
	CourseID  string         `json:"courseId" binding:"required"`
	Questions []quizQuestion `json:"questions" binding:"required,min=1,dive"`
}

// Create POST /api/quizzes (instructor only)
func (h *QuizHandler) Create(c *gin.Context) {
	var req createQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	questions := make([]entity.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, entity.Question{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	quiz := &entity.Quiz{CourseID: req.CourseID, Questions: questions}

	created, err := h.Svc.CreateQuiz(c.Request.Context(), quiz)
	if err != nil {
		if errors.Is(err, application.ErrUnknownCourse) {
			response.Fail[any](c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("create quiz failed")
		response.Fail[any](c, http.StatusInternalServerError, "error creating quiz", nil)
		return
	}
	response.Success(c, http.StatusCreated, created, "quiz created", nil)
}

// Get GET /api/quizzes/:id (any authenticated role)
// Correct answers come back verbatim; the platform relies on this for
// self-study review.
func (h *QuizHandler) Get(c *gin.Context) {
	quiz, err := h.Svc.GetQuiz(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrQuizNotFound) {
			response.Fail[any](c, http.StatusNotFound, "quiz not found", nil)
			return
		}
		h.Logger.WithError(err).Error("get quiz failed")
		response.Fail[any](c, http.StatusInternalServerError, "error fetching quiz", nil)
		return
	}
	response.Success(c, http.StatusOK, quiz, "quiz", nil)
}
