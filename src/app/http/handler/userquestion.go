package handler

import (
	"github.com/gin-gonic/gin"

	"faqhub/src/app/http/dto"
	"faqhub/src/app/http/response"
	"faqhub/src/core/usecase"
)

// UserQuestionHandler handles free-form question endpoints.
type UserQuestionHandler struct {
	questionService *usecase.UserQuestionService
}

func NewUserQuestionHandler(questionService *usecase.UserQuestionService) *UserQuestionHandler {
	return &UserQuestionHandler{questionService: questionService}
}

// Post records a question asked by an existing user.
// POST /DB/userQuestions/post
func (h *UserQuestionHandler) Post(c *gin.Context) {
	var req dto.UserQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Target json not found")
		return
	}

	question, err := h.questionService.Add(c.Request.Context(), req.UserID, req.Question)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, question)
}

// GetAllByUser lists every question a user has asked, oldest first.
// GET /DB/userQuestions/getAllByUser/:id
func (h *UserQuestionHandler) GetAllByUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}
	questions, err := h.questionService.ListByUser(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, questions)
}

// RemoveByUser deletes every question a user has asked.
// DELETE /DB/userQuestions/removeByUser/:id
func (h *UserQuestionHandler) RemoveByUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}
	if err := h.questionService.RemoveByUser(c.Request.Context(), id); err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OKNoData(c)
}
