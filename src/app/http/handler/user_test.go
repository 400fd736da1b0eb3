package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"faqhub/src/core/domain"
	"faqhub/src/core/ports"
	"faqhub/src/core/usecase"
)

func userRouter(repo ports.KnowledgeBaseRepository) *gin.Engine {
	h := NewUserHandler(usecase.NewUserService(repo, discardLogger()))
	router := gin.New()
	router.POST("/DB/users/addUser", h.Add)
	router.GET("/DB/users/getRole/:id", h.GetRole)
	router.PATCH("/DB/users/promote/:id", h.Promote)
	return router
}

func TestUserAddReturnsAssignedRole(t *testing.T) {
	router := userRouter(&stubRepo{addRole: &domain.Role{ID: 1, Name: domain.RoleUser}})

	w, body := doRequest(t, router, http.MethodPost, "/DB/users/addUser", `{"id": 42, "name": "alice"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", body["message"])
	data, ok := body["data"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, domain.RoleUser, data["name"])
}

func TestUserAddMissingBody(t *testing.T) {
	router := userRouter(&stubRepo{})

	w, body := doRequest(t, router, http.MethodPost, "/DB/users/addUser", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Target json not found", body["message"])
}

func TestUserAddDuplicate(t *testing.T) {
	router := userRouter(&stubRepo{addUserErr: domain.NewAlreadyExistsError("User already exists")})

	w, body := doRequest(t, router, http.MethodPost, "/DB/users/addUser", `{"id": 42}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "User already exists", body["message"])
}

func TestUserGetRole(t *testing.T) {
	router := userRouter(&stubRepo{role: &domain.Role{ID: 2, Name: domain.RoleAdmin}})

	w, body := doRequest(t, router, http.MethodGet, "/DB/users/getRole/42", "")

	assert.Equal(t, http.StatusOK, w.Code)
	data, ok := body["data"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, domain.RoleAdmin, data["name"])
}

func TestUserGetRoleMissing(t *testing.T) {
	router := userRouter(&stubRepo{roleErr: domain.NewNotFoundError("User not found")})

	w, body := doRequest(t, router, http.MethodGet, "/DB/users/getRole/42", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", body["message"])
}

func TestUserGetRoleBadID(t *testing.T) {
	router := userRouter(&stubRepo{})

	w, body := doRequest(t, router, http.MethodGet, "/DB/users/getRole/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UserId must be positive and not null", body["message"])
}

func TestUserPromote(t *testing.T) {
	router := userRouter(&stubRepo{})

	w, body := doRequest(t, router, http.MethodPatch, "/DB/users/promote/42", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", body["message"])
	assert.Nil(t, body["data"])
}
