package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"faqhub/src/app/http/dto"
	"faqhub/src/app/http/response"
	"faqhub/src/core/usecase"
)

// FAQHandler handles curated FAQ endpoints.
type FAQHandler struct {
	faqService *usecase.FAQService
}

func NewFAQHandler(faqService *usecase.FAQService) *FAQHandler {
	return &FAQHandler{faqService: faqService}
}

// GetAllByTheme lists the FAQ entries of a theme.
// GET /DB/FAQ/getAllByTheme/:id
func (h *FAQHandler) GetAllByTheme(c *gin.Context) {
	id, ok := parseThemeID(c)
	if !ok {
		return
	}
	faqs, err := h.faqService.ListByTheme(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, faqs)
}

// Add creates a FAQ entry under an existing theme.
// POST /DB/FAQ/addFAQ
func (h *FAQHandler) Add(c *gin.Context) {
	var req dto.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Target json not found")
		return
	}

	faq, err := h.faqService.Add(c.Request.Context(), req.Question, req.Answer, req.ThemeID)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, faq)
}

// Update replaces an existing FAQ entry with the submitted record.
// PATCH /DB/FAQ/updateFAQ
func (h *FAQHandler) Update(c *gin.Context) {
	var req dto.FAQFullRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Target json not found")
		return
	}

	faq, err := h.faqService.Update(c.Request.Context(), req.ID, req.Question, req.Answer, req.ThemeID)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, faq)
}

// Delete removes a FAQ entry by id.
// DELETE /DB/FAQ/delete/:id
func (h *FAQHandler) Delete(c *gin.Context) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.BadRequest(c, "Id cannot be null or empty")
		return
	}
	if err := h.faqService.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OKNoData(c)
}
