// Package handler contains HTTP handlers for the API.
// Handlers are responsible for:
// - Parsing and validating HTTP requests
// - Calling use case methods
// - Converting results to HTTP responses
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"faqhub/src/app/http/response"
	"faqhub/src/core/usecase"
)

// ThemeHandler handles theme catalog endpoints.
type ThemeHandler struct {
	themeService *usecase.ThemeService
}

func NewThemeHandler(themeService *usecase.ThemeService) *ThemeHandler {
	return &ThemeHandler{themeService: themeService}
}

// GetAll returns every theme sorted by name.
// GET /DB/Themes/getAll
func (h *ThemeHandler) GetAll(c *gin.Context) {
	themes, err := h.themeService.ListAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, themes)
}

// Add creates a new theme from the path segment.
// POST /DB/Themes/add/:name
func (h *ThemeHandler) Add(c *gin.Context) {
	theme, err := h.themeService.Add(c.Request.Context(), c.Param("name"))
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, theme)
}

// Delete removes a theme by id.
// DELETE /DB/Themes/delete/:id
func (h *ThemeHandler) Delete(c *gin.Context) {
	id, ok := parseThemeID(c)
	if !ok {
		return
	}
	if err := h.themeService.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OKNoData(c)
}

func parseThemeID(c *gin.Context) (int32, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		response.BadRequest(c, "Id must be a positive number")
		return 0, false
	}
	return int32(id), true
}
