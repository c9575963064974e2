package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/CorralesK/TubeKidsBackend/internal/core/apperr"
	"github.com/CorralesK/TubeKidsBackend/internal/core/auth"
	"github.com/CorralesK/TubeKidsBackend/internal/domain"
	"github.com/CorralesK/TubeKidsBackend/internal/validators"
	"github.com/CorralesK/TubeKidsBackend/pkg/utils"
)

type UserService struct {
	users domain.UserRepository
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewUserService(users domain.UserRepository, jwter *auth.JWTer, log *zap.Logger) *UserService {
	return &UserService{users: users, jwter: jwter, log: log}
}

type CreateUserInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	PIN       int    `json:"pin"`
	Name      string `json:"name"`
	LastName  string `json:"lastName"`
	Country   string `json:"country"`
	DateBirth string `json:"dateBirth"`
}

// CreateUser signs up a main account. Underage callers are rejected before
// anything is persisted; the password is stored only as a bcrypt hash.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" || in.Password == "" || in.Name == "" || in.DateBirth == "" {
		return nil, apperr.Validation("email, password, name and dateBirth are required")
	}
	if err := validators.Email(in.Email); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	if err := validators.SixDigitPIN(in.PIN); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	if err := validators.LegalAge(in.DateBirth, time.Now()); err != nil {
		if errors.Is(err, validators.ErrUnderage) {
			return nil, apperr.Auth(err.Error())
		}
		return nil, apperr.Validation(err.Error())
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Email:        in.Email,
		PasswordHash: utils.HashPassword(in.Password),
		PIN:          in.PIN,
		Name:         in.Name,
		LastName:     in.LastName,
		Country:      in.Country,
		DateBirth:    in.DateBirth,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if isDupKey(err) {
			return nil, apperr.Validation("email already registered")
		}
		s.log.Error("create user", zap.Error(err))
		return nil, apperr.Persistence("there was an error saving the user", err)
	}
	return u, nil
}

// VerifyCredentials resolves (email, password) to the user and a fresh bearer
// token. The stored hash is compared, never reversed.
func (s *UserService) VerifyCredentials(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", apperr.Validation("email and password are required")
	}
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperr.Internal("query user", err)
	}
	if u == nil {
		return nil, "", apperr.NotFound("user does not exist")
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return nil, "", apperr.Auth("incorrect password")
	}
	tok, err := s.jwter.Issue(u.ID)
	if err != nil {
		return nil, "", apperr.Internal("issue token failed", err)
	}
	return u, tok, nil
}

// CheckPIN returns the user on an exact PIN match.
func (s *UserService) CheckPIN(ctx context.Context, id string, pin int) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("query user", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user does not exist")
	}
	if u.PIN != pin {
		return nil, apperr.Auth("incorrect pin")
	}
	return u, nil
}

func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
