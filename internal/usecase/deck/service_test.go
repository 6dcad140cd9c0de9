package deck

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"jobmatch/internal/domain/profile"
	"jobmatch/internal/domain/user"
)

type stubProfiles struct {
	me         profile.Profile
	meErr      error
	candidates []profile.Profile
	listErr    error

	listCalls int
	gotViewer uuid.UUID
	gotRole   user.Role
	gotLimit  int
}

func (s *stubProfiles) Upsert(_ context.Context, p profile.Profile) (profile.Profile, error) {
	return p, nil
}

func (s *stubProfiles) GetByUserID(_ context.Context, _ uuid.UUID) (profile.Profile, error) {
	return s.me, s.meErr
}

func (s *stubProfiles) ListCandidates(_ context.Context, viewerID uuid.UUID, role user.Role, limit int) ([]profile.Profile, error) {
	s.listCalls++
	s.gotViewer = viewerID
	s.gotRole = role
	s.gotLimit = limit
	return s.candidates, s.listErr
}

type memCache struct {
	entries map[string][]byte
	getErr  error
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func TestService_Deck_RequiresOwnProfile(t *testing.T) {
	repo := &stubProfiles{meErr: profile.ErrNotFound}
	svc := NewService(repo, nil, nil)

	_, err := svc.Deck(context.Background(), uuid.New())
	if !errors.Is(err, ErrProfileMissing) {
		t.Fatalf("expected ErrProfileMissing, got %v", err)
	}
	if repo.listCalls != 0 {
		t.Fatalf("candidates must not be listed without a profile")
	}
}

func TestService_Deck_QueriesOppositeRole(t *testing.T) {
	viewer := uuid.New()
	tests := []struct {
		name string
		mine user.Role
		want user.Role
	}{
		{name: "worker sees employers", mine: user.RoleWorker, want: user.RoleEmployer},
		{name: "employer sees workers", mine: user.RoleEmployer, want: user.RoleWorker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubProfiles{me: profile.Profile{UserID: viewer, Role: tt.mine, Name: "me"}}
			svc := NewService(repo, nil, nil)

			if _, err := svc.Deck(context.Background(), viewer); err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if repo.gotRole != tt.want {
				t.Fatalf("expected role %s, got %s", tt.want, repo.gotRole)
			}
			if repo.gotViewer != viewer {
				t.Fatalf("expected viewer %s, got %s", viewer, repo.gotViewer)
			}
			if repo.gotLimit != defaultDeckSize {
				t.Fatalf("expected limit %d, got %d", defaultDeckSize, repo.gotLimit)
			}
		})
	}
}

func TestService_Deck_ServesCachedSnapshot(t *testing.T) {
	viewer := uuid.New()
	repo := &stubProfiles{
		me:         profile.Profile{UserID: viewer, Role: user.RoleWorker, Name: "me"},
		candidates: []profile.Profile{{ID: uuid.New(), UserID: uuid.New(), Role: user.RoleEmployer, Name: "acme"}},
	}
	cache := newMemCache()
	svc := NewService(repo, cache, nil)

	first, err := svc.Deck(context.Background(), viewer)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	second, err := svc.Deck(context.Background(), viewer)
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected 1 database listing, got %d", repo.listCalls)
	}
	if len(first) != 1 || len(second) != 1 || first[0].ID != second[0].ID {
		t.Fatalf("cached deck differs from original: %v vs %v", first, second)
	}
}

func TestService_Deck_CacheFailureFallsThrough(t *testing.T) {
	viewer := uuid.New()
	repo := &stubProfiles{
		me:         profile.Profile{UserID: viewer, Role: user.RoleWorker},
		candidates: []profile.Profile{{ID: uuid.New(), Role: user.RoleEmployer}},
	}
	cache := newMemCache()
	cache.getErr = errors.New("redis down")
	svc := NewService(repo, cache, nil)

	out, err := svc.Deck(context.Background(), viewer)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected candidates despite cache failure, got %d", len(out))
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected database fallback, got %d calls", repo.listCalls)
	}
}

func TestService_Invalidate_DropsCachedDeck(t *testing.T) {
	viewer := uuid.New()
	repo := &stubProfiles{
		me:         profile.Profile{UserID: viewer, Role: user.RoleWorker},
		candidates: []profile.Profile{{ID: uuid.New(), Role: user.RoleEmployer}},
	}
	cache := newMemCache()
	svc := NewService(repo, cache, nil)

	if _, err := svc.Deck(context.Background(), viewer); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	svc.Invalidate(context.Background(), viewer)
	if _, err := svc.Deck(context.Background(), viewer); err != nil {
		t.Fatalf("refetch: %v", err)
	}
	if repo.listCalls != 2 {
		t.Fatalf("expected refetch to hit the database, got %d calls", repo.listCalls)
	}
}

func TestService_Deck_ListFailure(t *testing.T) {
	viewer := uuid.New()
	repo := &stubProfiles{
		me:      profile.Profile{UserID: viewer, Role: user.RoleWorker},
		listErr: errors.New("connection reset"),
	}
	svc := NewService(repo, nil, nil)

	_, err := svc.Deck(context.Background(), viewer)
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
