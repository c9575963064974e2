package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/CorralesK/TubeKidsBackend/internal/domain"
	"github.com/CorralesK/TubeKidsBackend/internal/service"
	"github.com/CorralesK/TubeKidsBackend/internal/transport/http/response"
)

type UserService interface {
	CreateUser(ctx context.Context, in service.CreateUserInput) (*domain.User, error)
	VerifyCredentials(ctx context.Context, email, password string) (*domain.User, string, error)
	CheckPIN(ctx context.Context, id string, pin int) (*domain.User, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler { return &UserHandler{svc: svc} }

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	var in service.CreateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	u, err := h.svc.CreateUser(c.Request.Context(), in)
	if err != nil {
		response.AppError(c, err)
		return
	}
	c.Header("Location", "/api/users/?_id="+u.ID)
	c.JSON(http.StatusCreated, u)
}

// VerifyCredentials handles GET /users: body {email, password}, returns the
// user plus a fresh bearer token.
func (h *UserHandler) VerifyCredentials(c *gin.Context) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || in.Email == "" || in.Password == "" {
		response.Error(c, http.StatusBadRequest, "email and password are required")
		return
	}
	u, tok, err := h.svc.VerifyCredentials(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		response.AppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u, "token": tok})
}

// CheckPIN handles GET /users/pin?_id=&pin=.
func (h *UserHandler) CheckPIN(c *gin.Context) {
	id := c.Query("_id")
	if id == "" {
		response.Error(c, http.StatusBadRequest, "user id is required")
		return
	}
	pin, err := strconv.Atoi(c.Query("pin"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "pin is required")
		return
	}
	u, err := h.svc.CheckPIN(c.Request.Context(), id, pin)
	if err != nil {
		response.AppError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
