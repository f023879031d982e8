package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/atinyakov/url-cutter/internal/app/service"
	"github.com/atinyakov/url-cutter/internal/cache"
	"github.com/atinyakov/url-cutter/internal/mocks"
	"github.com/atinyakov/url-cutter/internal/storage"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// brokenCache fails every call.
type brokenCache struct{}

func (brokenCache) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("connection refused")
}
func (brokenCache) Set(context.Context, string, string, time.Duration) error {
	return errors.New("connection refused")
}
func (brokenCache) Delete(context.Context, string) error { return errors.New("connection refused") }

func newTestService(t *testing.T, c service.Cache, opts ...service.Option) (*service.URLService, *storage.MemoryStorage, *fakeClock) {
	t.Helper()

	mem, err := storage.CreateMemoryStorage()
	require.NoError(t, err)
	gen, err := service.NewCodeGenerator(6)
	require.NoError(t, err)

	clock := newClock()
	opts = append([]service.Option{service.WithClock(clock.Now)}, opts...)

	return service.NewURL(mem, c, gen, zap.NewNop(), opts...), mem, clock
}

func owner(id int64) service.Identity { return service.Authenticated{UserID: id} }

func TestCreate_UniqueCodes(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	ctx := context.Background()

	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		l, err := svc.Create(ctx, service.CreateParams{OriginalURL: "https://example.com/page"}, service.Anonymous{})
		require.NoError(t, err)
		require.Len(t, l.ShortCode, 6)

		_, dup := seen[l.ShortCode]
		require.False(t, dup, "duplicate short code %s", l.ShortCode)
		seen[l.ShortCode] = struct{}{}
	}
}

func TestCreate_Defaults(t *testing.T) {
	svc, _, clock := newTestService(t, nil, service.WithLinkLifetime(48*time.Hour))
	ctx := context.Background()

	anon, err := svc.Create(ctx, service.CreateParams{OriginalURL: "https://example.com"}, service.Anonymous{})
	require.NoError(t, err)
	assert.True(t, anon.IsAnonymous)
	assert.True(t, anon.IsActive)
	assert.Nil(t, anon.UserID)
	assert.Equal(t, int64(0), anon.Clicks)
	assert.Nil(t, anon.LastUsedAt)
	require.NotNil(t, anon.ExpiresAt)
	assert.True(t, anon.ExpiresAt.Equal(clock.Now().Add(48*time.Hour)))
	assert.True(t, anon.CreatedAt.Equal(clock.Now()))

	exp := clock.Now().Add(time.Hour)
	owned, err := svc.Create(ctx, service.CreateParams{OriginalURL: "http://example.com", ExpiresAt: &exp}, owner(3))
	require.NoError(t, err)
	assert.False(t, owned.IsAnonymous)
	require.NotNil(t, owned.UserID)
	assert.Equal(t, int64(3), *owned.UserID)
	assert.True(t, owned.ExpiresAt.Equal(exp))
	assert.NotEqual(t, anon.ID, owned.ID)
}

func TestCreate_InvalidInput(t *testing.T) {
	svc, _, clock := newTestService(t, nil)
	ctx := context.Background()
	past := clock.Now().Add(-time.Second)

	tests := []struct {
		name   string
		params service.CreateParams
	}{
		{"empty url", service.CreateParams{}},
		{"ftp scheme", service.CreateParams{OriginalURL: "ftp://example.com"}},
		{"no scheme", service.CreateParams{OriginalURL: "example.com/path"}},
		{"no host", service.CreateParams{OriginalURL: "https://"}},
		{"bad alias", service.CreateParams{OriginalURL: "https://example.com", CustomAlias: "has space"}},
		{"long alias", service.CreateParams{OriginalURL: "https://example.com", CustomAlias: "abcdefghijklmnopqrstuvwxyz0123456789"}},
		{"reserved alias", service.CreateParams{OriginalURL: "https://example.com", CustomAlias: "links"}},
		{"links sub-route alias", service.CreateParams{OriginalURL: "https://example.com", CustomAlias: "expired"}},
		{"past expiry", service.CreateParams{OriginalURL: "https://example.com", ExpiresAt: &past}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.params, service.Anonymous{})
			assert.ErrorIs(t, err, service.ErrInvalidInput)
		})
	}
}

func TestCreate_AliasTaken(t *testing.T) {
	svc, _, clock := newTestService(t, nil)
	ctx := context.Background()
	exp := clock.Now().Add(time.Hour)

	l, err := svc.Create(ctx, service.CreateParams{OriginalURL: "https://example.com", CustomAlias: "my-link", ExpiresAt: &exp}, service.Anonymous{})
	require.NoError(t, err)
	assert.Equal(t, "my-link", l.ShortCode)

	_, err = svc.Create(ctx, service.CreateParams{OriginalURL: "https://other.com", CustomAlias: "my-link"}, owner(1))
	assert.ErrorIs(t, err, service.ErrAliasTaken)

	// An expired link still holds its code.
	clock.Advance(2 * time.Hour)
	_, err = svc.Create(ctx, service.CreateParams{OriginalURL: "https://other.com", CustomAlias: "my-link"}, owner(1))
	assert.ErrorIs(t, err, service.ErrAliasTaken)
}

func TestCreate_AliasConflictOnInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStorage(ctrl)
	gen, _ := service.NewCodeGenerator(6)
	svc := service.NewURL(repo, nil, gen, zap.NewNop())

	// A concurrent request wins between the existence check and the insert.
	repo.EXPECT().ExistsShort(gomock.Any(), "promo").Return(false, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, storage.ErrConflict)

	_, err := svc.Create(context.Background(), service.CreateParams{OriginalURL: "https://example.com", CustomAlias: "promo"}, service.Anonymous{})
	assert.ErrorIs(t, err, service.ErrAliasTaken)
}

func TestCreate_RandomRetriesOnConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStorage(ctrl)
	gen, _ := service.NewCodeGenerator(6)
	svc := service.NewURL(repo, nil, gen, zap.NewNop())

	repo.EXPECT().ExistsShort(gomock.Any(), gomock.Any()).Return(true, nil)
	repo.EXPECT().ExistsShort(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
	gomock.InOrder(
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, storage.ErrConflict),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l storage.Link) (*storage.Link, error) {
			l.ID = 1
			return &l, nil
		}),
	)

	l, err := svc.Create(context.Background(), service.CreateParams{OriginalURL: "https://example.com"}, service.Anonymous{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), l.ID)
	assert.Len(t, l.ShortCode, 6)
}

func TestCreate_CodeSpaceExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStorage(ctrl)
	gen, _ := service.NewCodeGenerator(1)
	svc := service.NewURL(repo, nil, gen, zap.NewNop(), service.WithMaxAttempts(3))

	repo.EXPECT().ExistsShort(gomock.Any(), gomock.Any()).Return(true, nil).Times(3)

	_, err := svc.Create(context.Background(), service.CreateParams{OriginalURL: "https://example.com"}, service.Anonymous{})
	assert.ErrorIs(t, err, service.ErrCodeSpaceExhausted)
}

func TestCreate_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStorage(ctrl)
	gen, _ := service.NewCodeGenerator(6)
	svc := service.NewURL(repo, nil, gen, zap.NewNop())

	dbErr := errors.New("db down")
	repo.EXPECT().ExistsShort(gomock.Any(), gomock.Any()).Return(false, dbErr)

	_, err := svc.Create(context.Background(), service.CreateParams{OriginalURL: "https://example.com"}, service.Anonymous{})
	assert.ErrorIs(t, err, dbErr)
}

func TestResolve_Expired(t *testing.T) {
	svc, mem, clock := newTestService(t, nil)
	ctx := context.Background()
	exp := clock.Now().Add(time.Hour)

	l, err := svc.Create(ctx, service.CreateParams{OriginalURL: "https://example.com", ExpiresAt: &exp}, service.Anonymous{})
	require.NoError(t, err)

	clock.Advance(2 * time.Hour)

	_, err = svc.Resolve(ctx, l.ShortCode)
	assert.ErrorIs(t, err, service.ErrNotFound)

	// The row itself is still there.
	_, err = mem.FindByShort(ctx, l.ShortCode)
	assert.NoError(t, err)
}

func TestResolve_Inactive(t *testing.T) {
	svc, mem, _ := newTestService(t, nil)
	ctx := context.Background()

	_, err := mem.Create(ctx, storage.Link{OriginalURL: "https://example.com", ShortCode: "off", IsActive: false})
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, "off")
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.Resolve(ctx, "never-existed")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestResolve_CountsEveryClick(t *testing.T) {
	svc, mem, clock := newTestService(t, cache.NewMemory(time.Minute))
	ctx := context.Background()

	l, err := svc.Create(ctx, service.CreateParams{OriginalURL: "https://example.com"}, service.Anonymous{})
	require.NoError(t, err)

	const n = 5
	var prev time.Time
	for i := 0; i < n; i++ {
		clock.Advance(time.Second)

		target, err := svc.Resolve(ctx, l.ShortCode)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", target)

		got, err := mem.FindByShort(ctx, l.ShortCode)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), got.Clicks)
		require.NotNil(t, got.LastUsedAt)
		assert.False(t, got.LastUsedAt.Before(prev))
		prev = *got.LastUsedAt
	}
}

func TestResolve_CacheHitSkipsLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStorage(ctrl)
	gen, _ := service.NewCodeGenerator(6)
	svc := service.NewURL(repo, cache.NewMemory(time.Minute), gen, zap.NewNop())
	ctx := context.Background()

	repo.EXPECT().FindResolvable(gomock.Any(), "abc123", gomock.Any()).
		Return(&storage.Link{ShortCode: "abc123", OriginalURL: "https://example.com", IsActive: true}, nil).
		Times(1)
	repo.EXPECT().RecordClicks(gomock.Any(), "abc123", int64(1), gomock.Any()).Return(nil).Times(2)

	first, err := svc.Resolve(ctx, "abc123")
	require.NoError(t, err)

	second, err := svc.Resolve(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolve_CacheHitOnVanishedRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStorage(ctrl)
	gen, _ := service.NewCodeGenerator(6)
	c := cache.NewMemory(time.Minute)
	svc := service.NewURL(repo, c, gen, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "link:gone", "https://example.com", time.Minute))
	repo.EXPECT().RecordClicks(gomock.Any(), "gone", int64(1), gomock.Any()).Return(storage.ErrNotFound)

	target, err := svc.Resolve(ctx, "gone")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", target)
}

type recorderFunc func(code string, at time.Time)

func (f recorderFunc) Record(code string, at time.Time) { f(code, at) }

func TestResolve_CacheHitUsesClickRecorder(t *testing.T) {
	var recorded []string
	rec := recorderFunc(func(code string, _ time.Time) { recorded = append(recorded, code) })

	svc, mem, _ := newTestService(t, cache.NewMemory(time.Minute), service.WithClickRecorder(rec))
	ctx := context.Background()

	l, err := svc.Create(ctx, service.CreateParams{OriginalURL: "https://example.com"}, service.Anonymous{})
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, l.ShortCode)
	require.NoError(t, err)
	_, err = svc.Resolve(ctx, l.ShortCode)
	require.NoError(t, err)

	assert.Equal(t, []string{l.ShortCode}, recorded)
	got, _ := mem.FindByShort(ctx, l.ShortCode)
	assert.Equal(t, int64(1), got.Clicks, "miss path accounts inline")
}

func TestResolve_WorksWithBrokenCache(t *testing.T) {
	svc, mem, _ := newTestService(t, brokenCache{})
	ctx := context.Background()

	l, err := svc.Create(ctx, service.CreateParams{OriginalURL: "https://example.com"}, service.Anonymous{})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		target, err := svc.Resolve(ctx, l.ShortCode)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", target)
	}

	got, _ := mem.FindByShort(ctx, l.ShortCode)
	assert.Equal(t, int64(3), got.Clicks)
}

func TestResolve_Concurrent(t *testing.T) {
	svc, mem, _ := newTestService(t, cache.NewMemory(time.Minute))
	ctx := context.Background()

	l, err := svc.Create(ctx, service.CreateParams{OriginalURL: "https://example.com"}, service.Anonymous{})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Resolve(ctx, l.ShortCode)
		}()
	}
	wg.Wait()

	got, _ := mem.FindByShort(ctx, l.ShortCode)
	assert.Equal(t, int64(50), got.Clicks)
}

func TestUpdate(t *testing.T) {
	c := cache.NewMemory(time.Minute)
	svc, _, clock := newTestService(t, c)
	ctx := context.Background()

	exp := clock.Now().Add(24 * time.Hour)
	l, err := svc.Create(ctx, service.CreateParams{OriginalURL: "https://old.example.com", ExpiresAt: &exp}, owner(1))
	require.NoError(t, err)

	// warm the cache
	_, err = svc.Resolve(ctx, l.ShortCode)
	require.NoError(t, err)

	newURL := "https://new.example.com"

	t.Run("non-owner is forbidden", func(t *testing.T) {
		_, err := svc.Update(ctx, l.ShortCode, owner(2), service.UpdateParams{OriginalURL: &newURL})
		assert.ErrorIs(t, err, service.ErrForbidden)

		_, err = svc.Update(ctx, l.ShortCode, service.Anonymous{}, service.UpdateParams{OriginalURL: &newURL})
		assert.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := svc.Update(ctx, "missing", owner(1), service.UpdateParams{OriginalURL: &newURL})
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("invalid url", func(t *testing.T) {
		bad := "mailto:someone@example.com"
		_, err := svc.Update(ctx, l.ShortCode, owner(1), service.UpdateParams{OriginalURL: &bad})
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("owner updates url only", func(t *testing.T) {
		updated, err := svc.Update(ctx, l.ShortCode, owner(1), service.UpdateParams{OriginalURL: &newURL})
		require.NoError(t, err)
		assert.Equal(t, newURL, updated.OriginalURL)
		require.NotNil(t, updated.ExpiresAt)
		assert.True(t, updated.ExpiresAt.Equal(exp))

		cached, ok, _ := c.Get(ctx, "link:"+l.ShortCode)
		require.True(t, ok)
		assert.Equal(t, newURL, cached)

		target, err := svc.Resolve(ctx, l.ShortCode)
		require.NoError(t, err)
		assert.Equal(t, newURL, target)
	})

	t.Run("superuser may update", func(t *testing.T) {
		later := exp.Add(time.Hour)
		updated, err := svc.Update(ctx, l.ShortCode, service.Authenticated{UserID: 99, Superuser: true}, service.UpdateParams{ExpiresAt: &later})
		require.NoError(t, err)
		assert.True(t, updated.ExpiresAt.Equal(later))
		assert.Equal(t, newURL, updated.OriginalURL)
	})

	t.Run("expiring update evicts cache", func(t *testing.T) {
		past := clock.Now().Add(-time.Minute)
		_, err := svc.Update(ctx, l.ShortCode, owner(1), service.UpdateParams{ExpiresAt: &past})
		require.NoError(t, err)

		_, ok, _ := c.Get(ctx, "link:"+l.ShortCode)
		assert.False(t, ok)

		_, err = svc.Resolve(ctx, l.ShortCode)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

// readOnlyCache serves reads and evictions but rejects writes once failWrites is set.
type readOnlyCache struct {
	*cache.Memory
	failWrites atomic.Bool
}

func (c *readOnlyCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if c.failWrites.Load() {
		return errors.New("READONLY replica")
	}
	return c.Memory.Set(ctx, key, value, ttl)
}

func TestUpdate_FailedCacheWriteEvictsOldTarget(t *testing.T) {
	c := &readOnlyCache{Memory: cache.NewMemory(time.Minute)}
	svc, _, _ := newTestService(t, c)
	ctx := context.Background()

	l, err := svc.Create(ctx, service.CreateParams{OriginalURL: "https://old.example.com"}, owner(1))
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, l.ShortCode)
	require.NoError(t, err)
	_, ok, _ := c.Get(ctx, "link:"+l.ShortCode)
	require.True(t, ok)

	c.failWrites.Store(true)
	newURL := "https://new.example.com"
	_, err = svc.Update(ctx, l.ShortCode, owner(1), service.UpdateParams{OriginalURL: &newURL})
	require.NoError(t, err)

	_, ok, _ = c.Get(ctx, "link:"+l.ShortCode)
	assert.False(t, ok)

	target, err := svc.Resolve(ctx, l.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, newURL, target)
}

func TestUpdate_AnonymousLinkNeedsSuperuser(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	ctx := context.Background()
	newURL := "https://new.example.com"

	l, err := svc.Create(ctx, service.CreateParams{OriginalURL: "https://example.com"}, service.Anonymous{})
	require.NoError(t, err)

	_, err = svc.Update(ctx, l.ShortCode, owner(1), service.UpdateParams{OriginalURL: &newURL})
	assert.ErrorIs(t, err, service.ErrForbidden)

	_, err = svc.Update(ctx, l.ShortCode, service.Authenticated{UserID: 1, Superuser: true}, service.UpdateParams{OriginalURL: &newURL})
	assert.NoError(t, err)
}

func TestDelete(t *testing.T) {
	c := cache.NewMemory(time.Minute)
	svc, _, _ := newTestService(t, c)
	ctx := context.Background()

	l, err := svc.Create(ctx, service.CreateParams{OriginalURL: "https://example.com"}, owner(1))
	require.NoError(t, err)
	_, err = svc.Resolve(ctx, l.ShortCode)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, l.ShortCode, owner(2)), service.ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, "missing", owner(1)), service.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, l.ShortCode, owner(1)))

	_, err = svc.Resolve(ctx, l.ShortCode)
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, l.ShortCode, owner(1)), service.ErrNotFound)
}

func TestDelete_CacheFailureStillDeletes(t *testing.T) {
	svc, mem, _ := newTestService(t, brokenCache{})
	ctx := context.Background()

	l, err := svc.Create(ctx, service.CreateParams{OriginalURL: "https://example.com"}, owner(1))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, l.ShortCode, owner(1)))

	_, err = mem.FindByShort(ctx, l.ShortCode)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSweepExpired(t *testing.T) {
	svc, mem, clock := newTestService(t, nil)
	ctx := context.Background()

	soon := clock.Now().Add(time.Hour)
	var live []string
	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, service.CreateParams{OriginalURL: "https://example.com", ExpiresAt: &soon}, service.Anonymous{})
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		l, err := svc.Create(ctx, service.CreateParams{OriginalURL: "https://example.com"}, service.Anonymous{})
		require.NoError(t, err)
		live = append(live, l.ShortCode)
	}

	clock.Advance(2 * time.Hour)

	n, err := svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	left, err := mem.FindByOriginal(ctx, "https://example.com", storage.OwnerFilter{})
	require.NoError(t, err)
	require.Len(t, left, 2)
	for _, code := range live {
		_, err := svc.Resolve(ctx, code)
		assert.NoError(t, err)
	}
}

func TestSweepExpired_CacheStalenessBoundedByTTL(t *testing.T) {
	const ttl = 50 * time.Millisecond
	svc, _, clock := newTestService(t, cache.NewMemory(time.Minute), service.WithCacheTTL(ttl))
	ctx := context.Background()

	soon := clock.Now().Add(time.Hour)
	l, err := svc.Create(ctx, service.CreateParams{OriginalURL: "https://example.com", ExpiresAt: &soon}, service.Anonymous{})
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, l.ShortCode)
	require.NoError(t, err)

	clock.Advance(2 * time.Hour)
	n, err := svc.SweepExpired(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	// Within the TTL window the cached redirect may still be served.
	target, err := svc.Resolve(ctx, l.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", target)

	time.Sleep(2 * ttl)

	_, err = svc.Resolve(ctx, l.ShortCode)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestSearchByURL(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	ctx := context.Background()
	const target = "https://example.com/shared"

	for _, caller := range []service.Identity{service.Anonymous{}, service.Anonymous{}, owner(1), owner(2), owner(1)} {
		_, err := svc.Create(ctx, service.CreateParams{OriginalURL: target}, caller)
		require.NoError(t, err)
	}

	anon, err := svc.SearchByURL(ctx, target, service.Anonymous{})
	require.NoError(t, err)
	require.Len(t, anon, 2)
	for _, l := range anon {
		assert.Nil(t, l.UserID)
		assert.True(t, l.IsAnonymous)
	}

	own, err := svc.SearchByURL(ctx, target, owner(1))
	require.NoError(t, err)
	require.Len(t, own, 2)
	for _, l := range own {
		require.NotNil(t, l.UserID)
		assert.Equal(t, int64(1), *l.UserID)
	}

	none, err := svc.SearchByURL(ctx, "https://nowhere.example.com", service.Anonymous{})
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = svc.SearchByURL(ctx, "", service.Anonymous{})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestGetLink(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	ctx := context.Background()

	anon, _ := svc.Create(ctx, service.CreateParams{OriginalURL: "https://example.com"}, service.Anonymous{})
	owned, _ := svc.Create(ctx, service.CreateParams{OriginalURL: "https://example.com"}, owner(1))

	_, err := svc.GetLink(ctx, anon.ShortCode, service.Anonymous{})
	assert.NoError(t, err)
	_, err = svc.GetLink(ctx, anon.ShortCode, owner(5))
	assert.NoError(t, err)

	_, err = svc.GetLink(ctx, owned.ShortCode, owner(1))
	assert.NoError(t, err)
	_, err = svc.GetLink(ctx, owned.ShortCode, service.Anonymous{})
	assert.ErrorIs(t, err, service.ErrForbidden)
	_, err = svc.GetLink(ctx, owned.ShortCode, owner(2))
	assert.ErrorIs(t, err, service.ErrForbidden)

	_, err = svc.GetLink(ctx, "missing", owner(1))
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestListByOwner(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, service.CreateParams{OriginalURL: "https://example.com"}, owner(1))
		require.NoError(t, err)
	}
	_, _ = svc.Create(ctx, service.CreateParams{OriginalURL: "https://example.com"}, owner(2))

	links, total, err := svc.ListByOwner(ctx, owner(1), 1, 10)
	require.NoError(t, err)
	assert.Len(t, links, 2)
	assert.Equal(t, int64(3), total)

	_, _, err = svc.ListByOwner(ctx, service.Anonymous{}, 0, 10)
	assert.ErrorIs(t, err, service.ErrForbidden)

	_, _, err = svc.ListByOwner(ctx, owner(1), 0, 0)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}
