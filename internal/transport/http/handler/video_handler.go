package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CorralesK/TubeKidsBackend/internal/domain"
	"github.com/CorralesK/TubeKidsBackend/internal/service"
	"github.com/CorralesK/TubeKidsBackend/internal/transport/http/response"
)

type PlaylistService interface {
	AddVideo(ctx context.Context, userID string, in service.AddVideoInput) (*domain.Video, error)
	GetVideos(ctx context.Context, userID string) (*domain.Playlist, error)
	GetVideo(ctx context.Context, id string) (*domain.Video, error)
	UpdateVideo(ctx context.Context, id string, in domain.VideoPatch) (*domain.Video, error)
	DeleteVideo(ctx context.Context, userID, id string) error
}

type VideoHandler struct {
	svc PlaylistService
}

func NewVideoHandler(svc PlaylistService) *VideoHandler { return &VideoHandler{svc: svc} }

// Get handles GET /videos?_id= (direct lookup, bypassing the playlist) and
// GET /videos?userId= (the expanded playlist).
func (h *VideoHandler) Get(c *gin.Context) {
	if id := c.Query("_id"); id != "" {
		v, err := h.svc.GetVideo(c.Request.Context(), id)
		if err != nil {
			response.AppError(c, err)
			return
		}
		c.Header("Location", "/api/videos/?_id="+v.ID)
		c.JSON(http.StatusOK, v)
		return
	}
	if userID := c.Query("userId"); userID != "" {
		p, err := h.svc.GetVideos(c.Request.Context(), userID)
		if err != nil {
			response.AppError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
		return
	}
	response.Error(c, http.StatusBadRequest, "user id is required")
}

// Create handles POST /videos?userId= body {name, url}.
func (h *VideoHandler) Create(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		response.Error(c, http.StatusNotFound, "user not specified")
		return
	}
	var in service.AddVideoInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	v, err := h.svc.AddVideo(c.Request.Context(), userID, in)
	if err != nil {
		response.AppError(c, err)
		return
	}
	c.Header("Location", "/api/videos/?_id="+v.ID)
	c.JSON(http.StatusCreated, v)
}

// Patch handles PATCH|PUT /videos?_id= with partial fields.
func (h *VideoHandler) Patch(c *gin.Context) {
	id := c.Query("_id")
	if id == "" {
		response.Error(c, http.StatusBadRequest, "video id not specified")
		return
	}
	var in domain.VideoPatch
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	v, err := h.svc.UpdateVideo(c.Request.Context(), id, in)
	if err != nil {
		response.AppError(c, err)
		return
	}
	c.Header("Location", "/api/videos/?_id="+v.ID)
	c.JSON(http.StatusOK, v)
}

// Delete handles DELETE /videos?_id=&userId=. The playlist reference is
// pulled before the record is destroyed.
func (h *VideoHandler) Delete(c *gin.Context) {
	id := c.Query("_id")
	userID := c.Query("userId")
	if id == "" || userID == "" {
		response.Error(c, http.StatusBadRequest, "video id and user id are required")
		return
	}
	if err := h.svc.DeleteVideo(c.Request.Context(), userID, id); err != nil {
		response.AppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
