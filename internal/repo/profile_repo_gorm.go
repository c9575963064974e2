package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/CorralesK/TubeKidsBackend/internal/domain"
)

type ProfileRepo struct{ db *gorm.DB }

func NewProfileRepo(db *gorm.DB) *ProfileRepo { return &ProfileRepo{db: db} }

func (r *ProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProfileRepo) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepo) FindByUserID(ctx context.Context, userID string) ([]domain.Profile, error) {
	var ps []domain.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&ps).Error
	return ps, err
}

func (r *ProfileRepo) Update(ctx context.Context, p *domain.Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProfileRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Profile{})
	return res.RowsAffected > 0, res.Error
}
