package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CorralesK/TubeKidsBackend/internal/domain"
	"github.com/CorralesK/TubeKidsBackend/pkg/utils"
)

// PlaylistRepo keeps playlist membership consistent with single-statement
// writes: append is one INSERT, remove is one DELETE, and lazy creation is an
// insert-on-conflict-do-nothing against the unique user_id index. No
// read-modify-save round trips, so interleaved requests cannot lose updates.
type PlaylistRepo struct{ db *gorm.DB }

func NewPlaylistRepo(db *gorm.DB) *PlaylistRepo { return &PlaylistRepo{db: db} }

func (r *PlaylistRepo) Ensure(ctx context.Context, userID string) (*domain.Playlist, error) {
	p := domain.Playlist{ID: utils.NewID(), UserID: userID, Name: "general"}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&p).Error
	if err != nil {
		return nil, err
	}
	// Re-read: a racing request may have won the insert.
	return r.FindByUserID(ctx, userID)
}

func (r *PlaylistRepo) FindByUserID(ctx context.Context, userID string) (*domain.Playlist, error) {
	var p domain.Playlist
	err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlaylistRepo) AppendVideo(ctx context.Context, playlistID, videoID string) error {
	return r.db.WithContext(ctx).
		Create(&domain.PlaylistVideo{PlaylistID: playlistID, VideoID: videoID}).Error
}

func (r *PlaylistRepo) RemoveVideo(ctx context.Context, playlistID, videoID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&domain.PlaylistVideo{})
	return res.RowsAffected > 0, res.Error
}

func (r *PlaylistRepo) VideosOf(ctx context.Context, playlistID string) ([]domain.Video, error) {
	var vids []domain.Video
	err := r.db.WithContext(ctx).Model(&domain.Video{}).
		Joins("JOIN playlist_videos pv ON pv.video_id = videos.id").
		Where("pv.playlist_id = ?", playlistID).
		Order("pv.seq").
		Find(&vids).Error
	return vids, err
}
