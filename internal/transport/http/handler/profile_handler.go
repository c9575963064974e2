package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CorralesK/TubeKidsBackend/internal/domain"
	"github.com/CorralesK/TubeKidsBackend/internal/service"
	"github.com/CorralesK/TubeKidsBackend/internal/transport/http/response"
)

type ProfileService interface {
	Create(ctx context.Context, userID string, in service.CreateProfileInput) (*domain.Profile, error)
	Get(ctx context.Context, id string) (*domain.Profile, error)
	List(ctx context.Context, userID string) ([]domain.Profile, error)
	Patch(ctx context.Context, id string, in domain.ProfilePatch) (*domain.Profile, error)
	Delete(ctx context.Context, id string) error
	CheckPIN(ctx context.Context, id string, pin int) (*domain.Profile, error)
}

type ProfileHandler struct {
	svc ProfileService
}

func NewProfileHandler(svc ProfileService) *ProfileHandler { return &ProfileHandler{svc: svc} }

// Get handles GET /profiles?_id= (single) and GET /profiles?userId= (list).
func (h *ProfileHandler) Get(c *gin.Context) {
	if id := c.Query("_id"); id != "" {
		p, err := h.svc.Get(c.Request.Context(), id)
		if err != nil {
			response.AppError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
		return
	}
	if userID := c.Query("userId"); userID != "" {
		ps, err := h.svc.List(c.Request.Context(), userID)
		if err != nil {
			response.AppError(c, err)
			return
		}
		c.JSON(http.StatusOK, ps)
		return
	}
	response.Error(c, http.StatusBadRequest, "neither user id nor profile id provided")
}

// Create handles POST /profiles?userId=.
func (h *ProfileHandler) Create(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		response.Error(c, http.StatusBadRequest, "user id is required")
		return
	}
	var in service.CreateProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.svc.Create(c.Request.Context(), userID, in)
	if err != nil {
		response.AppError(c, err)
		return
	}
	c.Header("Location", "/api/profiles/?_id="+p.ID)
	c.JSON(http.StatusCreated, p)
}

// Patch handles PATCH|PUT /profiles?_id= with partial fields.
func (h *ProfileHandler) Patch(c *gin.Context) {
	id := c.Query("_id")
	if id == "" {
		response.Error(c, http.StatusBadRequest, "profile id not specified")
		return
	}
	var in domain.ProfilePatch
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.svc.Patch(c.Request.Context(), id, in)
	if err != nil {
		response.AppError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /profiles?_id=.
func (h *ProfileHandler) Delete(c *gin.Context) {
	id := c.Query("_id")
	if id == "" {
		response.Error(c, http.StatusBadRequest, "profile id not specified")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.AppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CheckPIN handles GET /profiles/pin?_id= with body {pin}.
func (h *ProfileHandler) CheckPIN(c *gin.Context) {
	id := c.Query("_id")
	if id == "" {
		response.Error(c, http.StatusBadRequest, "profile id is required")
		return
	}
	var in struct {
		PIN int `json:"pin"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "pin is required")
		return
	}
	p, err := h.svc.CheckPIN(c.Request.Context(), id, in.PIN)
	if err != nil {
		response.AppError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Avatars handles GET /profiles/avatar: the static catalog.
func (h *ProfileHandler) Avatars(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", service.AvatarCatalog())
}
