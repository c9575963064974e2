package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/CorralesK/TubeKidsBackend/internal/domain"
)

type VideoRepo struct{ db *gorm.DB }

func NewVideoRepo(db *gorm.DB) *VideoRepo { return &VideoRepo{db: db} }

func (r *VideoRepo) Create(ctx context.Context, v *domain.Video) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VideoRepo) FindByID(ctx context.Context, id string) (*domain.Video, error) {
	var v domain.Video
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VideoRepo) Update(ctx context.Context, v *domain.Video) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *VideoRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Video{})
	return res.RowsAffected > 0, res.Error
}
