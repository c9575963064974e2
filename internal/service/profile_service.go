package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/CorralesK/TubeKidsBackend/internal/core/apperr"
	"github.com/CorralesK/TubeKidsBackend/internal/core/cache"
	"github.com/CorralesK/TubeKidsBackend/internal/domain"
	"github.com/CorralesK/TubeKidsBackend/internal/validators"
	"github.com/CorralesK/TubeKidsBackend/pkg/utils"
)

const profileCacheTTL = 5 * time.Minute

type ProfileService struct {
	profiles domain.ProfileRepository
	cache    *cache.Cache // optional; nil disables caching
	log      *zap.Logger
}

func NewProfileService(profiles domain.ProfileRepository, c *cache.Cache, log *zap.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, cache: c, log: log}
}

type CreateProfileInput struct {
	Name   string `json:"name"`
	PIN    int    `json:"pin"`
	Avatar string `json:"avatar"`
	Age    int    `json:"age"`
}

func (s *ProfileService) Create(ctx context.Context, userID string, in CreateProfileInput) (*domain.Profile, error) {
	if in.Name == "" || in.Avatar == "" {
		return nil, apperr.Validation("name and avatar are required")
	}
	if err := validators.SixDigitPIN(in.PIN); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	p := &domain.Profile{
		ID:     utils.NewID(),
		Name:   in.Name,
		PIN:    in.PIN,
		Avatar: in.Avatar,
		Age:    in.Age,
		UserID: userID,
	}
	if err := s.profiles.Create(ctx, p); err != nil {
		s.log.Error("create profile", zap.Error(err))
		return nil, apperr.Persistence("there was an error saving the profile", err)
	}
	return p, nil
}

func (s *ProfileService) Get(ctx context.Context, id string) (*domain.Profile, error) {
	p, err := s.load(ctx, id)
	if err != nil {
		return nil, apperr.Internal("query profile", err)
	}
	if p == nil {
		return nil, apperr.NotFound("profile not found")
	}
	return p, nil
}

func (s *ProfileService) load(ctx context.Context, id string) (*domain.Profile, error) {
	if s.cache == nil {
		return s.profiles.FindByID(ctx, id)
	}
	return cache.GetOrLoadJSON(s.cache, ctx, profileKey(id), profileCacheTTL,
		func(ctx context.Context) (*domain.Profile, error) {
			return s.profiles.FindByID(ctx, id)
		})
}

func (s *ProfileService) List(ctx context.Context, userID string) ([]domain.Profile, error) {
	ps, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("query profiles", err)
	}
	if len(ps) == 0 {
		return nil, apperr.NotFound("no profiles found for the specified user id")
	}
	return ps, nil
}

// Patch merges only the provided fields; omitted fields keep their stored
// value.
func (s *ProfileService) Patch(ctx context.Context, id string, in domain.ProfilePatch) (*domain.Profile, error) {
	p, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("query profile", err)
	}
	if p == nil {
		return nil, apperr.NotFound("profile not found")
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.PIN != nil {
		if err := validators.SixDigitPIN(*in.PIN); err != nil {
			return nil, apperr.Validation(err.Error())
		}
		p.PIN = *in.PIN
	}
	if in.Avatar != nil {
		p.Avatar = *in.Avatar
	}
	if in.Age != nil {
		p.Age = *in.Age
	}
	if err := s.profiles.Update(ctx, p); err != nil {
		s.log.Error("update profile", zap.Error(err))
		return nil, apperr.Persistence("there was an error updating the profile", err)
	}
	s.invalidate(ctx, id)
	return p, nil
}

// Delete removes the profile. The owner's playlist is untouched.
func (s *ProfileService) Delete(ctx context.Context, id string) error {
	ok, err := s.profiles.Delete(ctx, id)
	if err != nil {
		s.log.Error("delete profile", zap.Error(err))
		return apperr.Persistence("there was an error deleting the profile", err)
	}
	if !ok {
		return apperr.NotFound("profile not found")
	}
	s.invalidate(ctx, id)
	return nil
}

// CheckPIN returns the profile on an exact PIN match.
func (s *ProfileService) CheckPIN(ctx context.Context, id string, pin int) (*domain.Profile, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.PIN != pin {
		return nil, apperr.Auth("incorrect pin")
	}
	return p, nil
}

func (s *ProfileService) invalidate(ctx context.Context, id string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, profileKey(id))
	}
}

func profileKey(id string) string { return "profile:" + id }
