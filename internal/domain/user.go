package domain

import (
	"context"
	"time"
)

// User is a main account. Profiles and the playlist hang off its ID; the
// password is stored only as a bcrypt hash and never serialized.
type User struct {
	ID           string    `gorm:"primaryKey;size:32" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	PIN          int       `gorm:"not null" json:"pin"`
	Name         string    `gorm:"size:64;not null" json:"name"`
	LastName     string    `gorm:"size:64" json:"lastName"`
	Country      string    `gorm:"size:64" json:"country"`
	DateBirth    string    `gorm:"size:10" json:"dateBirth"` // "2006-01-02"
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}
