package service

import (
	"context"
	"errors"
	"sync"

	"github.com/CorralesK/TubeKidsBackend/internal/domain"
	"github.com/CorralesK/TubeKidsBackend/pkg/utils"
)

// In-memory repositories for service tests. They mirror the storage-layer
// contracts: find misses return (nil, nil), removals report the affected-row
// count, and Ensure is idempotent on user id.

var errStorageDown = errors.New("storage down")

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.Email == u.Email {
			return errors.New("duplicate key value violates unique constraint")
		}
	}
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]domain.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]domain.Profile{}}
}

func (r *fakeProfileRepo) Create(_ context.Context, p *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID] = *p
	return nil
}

func (r *fakeProfileRepo) FindByID(_ context.Context, id string) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[id]; ok {
		cp := p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProfileRepo) FindByUserID(_ context.Context, userID string) ([]domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Profile
	for _, p := range r.profiles {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProfileRepo) Update(_ context.Context, p *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID] = *p
	return nil
}

func (r *fakeProfileRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[id]; !ok {
		return false, nil
	}
	delete(r.profiles, id)
	return true, nil
}

type fakeVideoRepo struct {
	mu         sync.Mutex
	videos     map[string]domain.Video
	failCreate bool
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{videos: map[string]domain.Video{}}
}

func (r *fakeVideoRepo) Create(_ context.Context, v *domain.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate {
		return errStorageDown
	}
	r.videos[v.ID] = *v
	return nil
}

func (r *fakeVideoRepo) FindByID(_ context.Context, id string) (*domain.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.videos[id]; ok {
		cp := v
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeVideoRepo) Update(_ context.Context, v *domain.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.videos[v.ID] = *v
	return nil
}

func (r *fakeVideoRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.videos[id]; !ok {
		return false, nil
	}
	delete(r.videos, id)
	return true, nil
}

type membership struct {
	playlistID string
	videoID    string
}

type fakePlaylistRepo struct {
	mu         sync.Mutex
	byUser     map[string]domain.Playlist
	entries    []membership // arrival order
	videos     *fakeVideoRepo
	failEnsure bool
	failAppend bool
}

func newFakePlaylistRepo(videos *fakeVideoRepo) *fakePlaylistRepo {
	return &fakePlaylistRepo{byUser: map[string]domain.Playlist{}, videos: videos}
}

func (r *fakePlaylistRepo) Ensure(_ context.Context, userID string) (*domain.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failEnsure {
		return nil, errStorageDown
	}
	if p, ok := r.byUser[userID]; ok {
		cp := p
		return &cp, nil
	}
	p := domain.Playlist{ID: utils.NewID(), UserID: userID, Name: "general"}
	r.byUser[userID] = p
	cp := p
	return &cp, nil
}

func (r *fakePlaylistRepo) FindByUserID(_ context.Context, userID string) (*domain.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.byUser[userID]; ok {
		cp := p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakePlaylistRepo) AppendVideo(_ context.Context, playlistID, videoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAppend {
		return errStorageDown
	}
	r.entries = append(r.entries, membership{playlistID: playlistID, videoID: videoID})
	return nil
}

func (r *fakePlaylistRepo) RemoveVideo(_ context.Context, playlistID, videoID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.playlistID == playlistID && e.videoID == videoID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePlaylistRepo) VideosOf(_ context.Context, playlistID string) ([]domain.Video, error) {
	r.mu.Lock()
	entries := append([]membership(nil), r.entries...)
	r.mu.Unlock()

	var out []domain.Video
	for _, e := range entries {
		if e.playlistID != playlistID {
			continue
		}
		v, _ := r.videos.FindByID(context.Background(), e.videoID)
		if v != nil {
			out = append(out, *v)
		}
	}
	return out, nil
}

// references returns the raw membership video ids of a playlist, including
// any that would dangle; tests use it to assert the no-dangling invariant.
func (r *fakePlaylistRepo) references(playlistID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.entries {
		if e.playlistID == playlistID {
			out = append(out, e.videoID)
		}
	}
	return out
}
