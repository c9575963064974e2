package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/CorralesK/TubeKidsBackend/internal/core/apperr"
	"github.com/CorralesK/TubeKidsBackend/internal/domain"
	"github.com/CorralesK/TubeKidsBackend/internal/validators"
	"github.com/CorralesK/TubeKidsBackend/pkg/utils"
)

// PlaylistService is the consistency manager between videos and the per-user
// playlist. Per user the state machine is NoPlaylist → HasPlaylist, one-way:
// the playlist is created lazily on the first AddVideo and never deleted here.
type PlaylistService struct {
	videos    domain.VideoRepository
	playlists domain.PlaylistRepository
	log       *zap.Logger
}

func NewPlaylistService(videos domain.VideoRepository, playlists domain.PlaylistRepository, log *zap.Logger) *PlaylistService {
	return &PlaylistService{videos: videos, playlists: playlists, log: log}
}

type AddVideoInput struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// AddVideo persists the video first so it has a stable id, then appends that
// id to the user's playlist, creating the playlist on first use. A failure in
// the playlist step leaves the video orphaned but fetchable; there is no
// cross-record transaction to roll it back, so the inconsistency is reported
// instead.
func (s *PlaylistService) AddVideo(ctx context.Context, userID string, in AddVideoInput) (*domain.Video, error) {
	if in.Name == "" {
		return nil, apperr.Validation("name is required")
	}
	if err := validators.VideoURL(in.URL); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	v := &domain.Video{ID: utils.NewID(), Name: in.Name, URL: in.URL}
	if err := s.videos.Create(ctx, v); err != nil {
		s.log.Error("create video", zap.Error(err))
		return nil, apperr.Persistence("there was an error saving the video", err)
	}

	p, err := s.playlists.Ensure(ctx, userID)
	if err == nil && p == nil {
		err = apperr.NotFound("playlist not found after create")
	}
	if err == nil {
		err = s.playlists.AppendVideo(ctx, p.ID, v.ID)
	}
	if err != nil {
		s.log.Warn("video orphaned: playlist update failed",
			zap.String("videoId", v.ID), zap.String("userId", userID), zap.Error(err))
		return nil, apperr.Persistence("there was an error updating playlist", err)
	}
	return v, nil
}

// GetVideos expands the user's playlist to full video records in arrival
// order.
func (s *PlaylistService) GetVideos(ctx context.Context, userID string) (*domain.Playlist, error) {
	p, err := s.playlists.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("query playlist", err)
	}
	if p == nil {
		return nil, apperr.NotFound("playlist not found")
	}
	vids, err := s.playlists.VideosOf(ctx, p.ID)
	if err != nil {
		return nil, apperr.Internal("query playlist videos", err)
	}
	if vids == nil {
		vids = []domain.Video{}
	}
	p.Videos = vids
	return p, nil
}

// GetVideo is a direct lookup by id, bypassing the playlist.
func (s *PlaylistService) GetVideo(ctx context.Context, id string) (*domain.Video, error) {
	v, err := s.videos.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("query video", err)
	}
	if v == nil {
		return nil, apperr.NotFound("video does not exist")
	}
	return v, nil
}

// UpdateVideo merges the provided fields; playlist membership is untouched.
func (s *PlaylistService) UpdateVideo(ctx context.Context, id string, in domain.VideoPatch) (*domain.Video, error) {
	v, err := s.videos.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("query video", err)
	}
	if v == nil {
		return nil, apperr.NotFound("video does not exist")
	}
	if in.Name != nil {
		v.Name = *in.Name
	}
	if in.URL != nil {
		if err := validators.VideoURL(*in.URL); err != nil {
			return nil, apperr.Validation(err.Error())
		}
		v.URL = *in.URL
	}
	if err := s.videos.Update(ctx, v); err != nil {
		s.log.Error("update video", zap.Error(err))
		return nil, apperr.Persistence("there was an error saving the video", err)
	}
	return v, nil
}

// DeleteVideo pulls the reference out of the user's playlist before touching
// the record, so no reader can observe a dangling reference. If the pull
// finds nothing — the user has no playlist, or it never referenced this
// video — the delete aborts and the video is preserved.
func (s *PlaylistService) DeleteVideo(ctx context.Context, userID, id string) error {
	v, err := s.videos.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("query video", err)
	}
	if v == nil {
		return apperr.NotFound("video does not exist")
	}

	p, err := s.playlists.FindByUserID(ctx, userID)
	if err != nil {
		return apperr.Internal("query playlist", err)
	}
	if p == nil {
		return apperr.NotFound("playlist not found")
	}
	removed, err := s.playlists.RemoveVideo(ctx, p.ID, id)
	if err != nil {
		s.log.Error("remove playlist reference", zap.Error(err))
		return apperr.Persistence("there was an error updating playlist", err)
	}
	if !removed {
		return apperr.NotFound("video is not in the playlist")
	}

	if _, err := s.videos.Delete(ctx, id); err != nil {
		// Reference already gone; the record lingers as an orphan.
		s.log.Warn("video record not deleted after pull",
			zap.String("videoId", id), zap.Error(err))
		return apperr.Persistence("there was an error deleting the video", err)
	}
	return nil
}
