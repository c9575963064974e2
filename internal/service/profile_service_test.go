package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/CorralesK/TubeKidsBackend/internal/core/apperr"
	"github.com/CorralesK/TubeKidsBackend/internal/domain"
)

func newProfileService(repo *fakeProfileRepo) *ProfileService {
	return NewProfileService(repo, nil, zap.NewNop())
}

func createTestProfile(t *testing.T, svc *ProfileService, userID string) *domain.Profile {
	t.Helper()
	p, err := svc.Create(context.Background(), userID, CreateProfileInput{
		Name: "Kiddo", PIN: 123456, Avatar: "fox", Age: 8,
	})
	require.NoError(t, err)
	return p
}

func TestProfileCreate_RequiredFields(t *testing.T) {
	svc := newProfileService(newFakeProfileRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", CreateProfileInput{PIN: 123456, Avatar: "fox"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.Create(ctx, "u1", CreateProfileInput{Name: "Kiddo", PIN: 123456})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.Create(ctx, "u1", CreateProfileInput{Name: "Kiddo", PIN: 12, Avatar: "fox"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestProfileGet_Idempotent(t *testing.T) {
	svc := newProfileService(newFakeProfileRepo())
	p := createTestProfile(t, svc, "u1")
	ctx := context.Background()

	first, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	second, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = svc.Get(ctx, "missing")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestProfileList(t *testing.T) {
	svc := newProfileService(newFakeProfileRepo())
	ctx := context.Background()

	createTestProfile(t, svc, "u1")
	createTestProfile(t, svc, "u1")

	ps, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, ps, 2)

	_, err = svc.List(ctx, "nobody")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestProfilePatch_KeepsOmittedFields(t *testing.T) {
	svc := newProfileService(newFakeProfileRepo())
	p := createTestProfile(t, svc, "u1")
	ctx := context.Background()

	name := "Renamed"
	updated, err := svc.Patch(ctx, p.ID, domain.ProfilePatch{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, p.PIN, updated.PIN)
	assert.Equal(t, p.Avatar, updated.Avatar)
	assert.Equal(t, p.Age, updated.Age)

	// an explicit zero is applied, not treated as "unset"
	age := 0
	updated, err = svc.Patch(ctx, p.ID, domain.ProfilePatch{Age: &age})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Age)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestProfilePatch_Errors(t *testing.T) {
	svc := newProfileService(newFakeProfileRepo())
	p := createTestProfile(t, svc, "u1")
	ctx := context.Background()

	_, err := svc.Patch(ctx, "missing", domain.ProfilePatch{})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	badPin := 13
	_, err = svc.Patch(ctx, p.ID, domain.ProfilePatch{PIN: &badPin})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestProfileDelete(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newProfileService(repo)
	p := createTestProfile(t, svc, "u1")
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, p.ID))
	_, err := svc.Get(ctx, p.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	err = svc.Delete(ctx, p.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestProfileCheckPIN(t *testing.T) {
	svc := newProfileService(newFakeProfileRepo())
	p := createTestProfile(t, svc, "u1")
	ctx := context.Background()

	got, err := svc.CheckPIN(ctx, p.ID, 123456)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = svc.CheckPIN(ctx, p.ID, 111111)
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))

	_, err = svc.CheckPIN(ctx, "missing", 123456)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
