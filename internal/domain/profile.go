package domain

import "context"

// Profile is a PIN-gated sub-account (family member) under a User. Deleting a
// profile never touches the owner's playlist.
type Profile struct {
	ID     string `gorm:"primaryKey;size:32" json:"id"`
	Name   string `gorm:"size:64;not null" json:"name"`
	PIN    int    `gorm:"not null" json:"pin"`
	Avatar string `gorm:"size:191;not null" json:"avatar"`
	Age    int    `json:"age"`
	UserID string `gorm:"index;size:32;not null" json:"userId"`
}

func (Profile) TableName() string { return "profiles" }

// ProfilePatch carries a partial update. Nil means "keep the stored value",
// so a caller can zero a field without erasing the ones it omitted.
type ProfilePatch struct {
	Name   *string `json:"name"`
	PIN    *int    `json:"pin"`
	Avatar *string `json:"avatar"`
	Age    *int    `json:"age"`
}

type ProfileRepository interface {
	Create(ctx context.Context, p *Profile) error
	FindByID(ctx context.Context, id string) (*Profile, error)
	FindByUserID(ctx context.Context, userID string) ([]Profile, error)
	Update(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, id string) (bool, error)
}
