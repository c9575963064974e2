package domain

import "context"

// Video is the atomic unit. It carries no owner field; ownership is indirect
// through playlist membership, so a video with no playlist entry is orphaned
// but still fetchable by id.
type Video struct {
	ID   string `gorm:"primaryKey;size:32" json:"id"`
	Name string `gorm:"size:191;not null" json:"name"`
	URL  string `gorm:"size:2048;not null" json:"url"`
}

func (Video) TableName() string { return "videos" }

// VideoPatch is a partial update; nil fields keep the stored value.
type VideoPatch struct {
	Name *string `json:"name"`
	URL  *string `json:"url"`
}

// Playlist is the single ordered collection of video references owned by one
// user (user_id is unique). Membership lives in the playlist_videos join
// table; Videos is populated on reads.
type Playlist struct {
	ID     string  `gorm:"primaryKey;size:32" json:"id"`
	UserID string  `gorm:"uniqueIndex;size:32;not null" json:"userId"`
	Name   string  `gorm:"size:64;not null;default:general" json:"name"`
	Videos []Video `gorm:"-" json:"videos"`
}

func (Playlist) TableName() string { return "playlists" }

// PlaylistVideo is one ordered membership row. The auto-increment Seq gives
// arrival order and lets append/remove be single-statement atomic updates.
type PlaylistVideo struct {
	Seq        int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	PlaylistID string `gorm:"index;size:32;not null" json:"playlistId"`
	VideoID    string `gorm:"index;size:32;not null" json:"videoId"`
}

func (PlaylistVideo) TableName() string { return "playlist_videos" }

type VideoRepository interface {
	Create(ctx context.Context, v *Video) error
	FindByID(ctx context.Context, id string) (*Video, error)
	Update(ctx context.Context, v *Video) error
	Delete(ctx context.Context, id string) (bool, error)
}

type PlaylistRepository interface {
	// Ensure lazily creates the user's playlist; safe under concurrent calls
	// thanks to the unique user_id index (insert-on-conflict-do-nothing).
	Ensure(ctx context.Context, userID string) (*Playlist, error)
	FindByUserID(ctx context.Context, userID string) (*Playlist, error)
	// AppendVideo adds one membership row at the tail of the user's playlist.
	AppendVideo(ctx context.Context, playlistID, videoID string) error
	// RemoveVideo pulls one reference; returns false when the playlist holds
	// no such reference.
	RemoveVideo(ctx context.Context, playlistID, videoID string) (bool, error)
	// VideosOf expands the membership rows to full records in arrival order.
	VideosOf(ctx context.Context, playlistID string) ([]Video, error)
}
