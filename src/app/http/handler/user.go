package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"faqhub/src/app/http/dto"
	"faqhub/src/app/http/response"
	"faqhub/src/core/usecase"
)

// UserHandler handles user registration and role transition endpoints.
type UserHandler struct {
	userService *usecase.UserService
}

func NewUserHandler(userService *usecase.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Add registers a user with the default role. The assigned role is returned
// so callers learn it without a second round trip.
// POST /DB/users/addUser
func (h *UserHandler) Add(c *gin.Context) {
	var req dto.AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Target json not found")
		return
	}

	role, err := h.userService.Add(c.Request.Context(), req.ID, req.DisplayName)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, role)
}

// GetRole returns the role of a user.
// GET /DB/users/getRole/:id
func (h *UserHandler) GetRole(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}
	role, err := h.userService.GetRole(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, role)
}

// Promote grants a user the admin role.
// PATCH /DB/users/promote/:id
func (h *UserHandler) Promote(c *gin.Context) {
	h.transition(c, h.userService.Promote)
}

// Demote returns a user to the default role.
// PATCH /DB/users/demote/:id
func (h *UserHandler) Demote(c *gin.Context) {
	h.transition(c, h.userService.Demote)
}

// Block sets the blocked role on a user.
// PATCH /DB/users/block/:id
func (h *UserHandler) Block(c *gin.Context) {
	h.transition(c, h.userService.Block)
}

// Unblock returns a blocked user to the default role.
// PATCH /DB/users/unblock/:id
func (h *UserHandler) Unblock(c *gin.Context) {
	h.transition(c, h.userService.Unblock)
}

func (h *UserHandler) transition(c *gin.Context, op func(context.Context, int64) error) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}
	if err := op(c.Request.Context(), id); err != nil {
		c.Error(err)
		response.FromDomainError(c, err)
		return
	}
	response.OKNoData(c)
}

func parseUserID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.BadRequest(c, "UserId must be positive and not null")
		return 0, false
	}
	return id, true
}
