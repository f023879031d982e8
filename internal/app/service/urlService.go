// Package service implements short link allocation, resolution and
// lifecycle on top of a link store and a read-through cache.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/url-cutter/internal/storage"
)

const (
	DefaultCacheTTL     = time.Hour
	DefaultLinkLifetime = 180 * 24 * time.Hour
	DefaultMaxAttempts  = 20

	cacheKeyPrefix = "link:"
)

var aliasPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,32}$`)

// reservedAliases collide with fixed routes of the HTTP surface,
// including the static sub-routes of /links.
var reservedAliases = map[string]struct{}{
	"links":   {},
	"api":     {},
	"ping":    {},
	"shorten": {},
	"search":  {},
	"expired": {},
}

// CreateParams are the inputs of Create. Empty CustomAlias means a random code.
type CreateParams struct {
	OriginalURL string
	CustomAlias string
	ExpiresAt   *time.Time
}

// UpdateParams are the inputs of Update. Nil fields are left untouched.
type UpdateParams struct {
	OriginalURL *string
	ExpiresAt   *time.Time
}

type Option func(*URLService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *URLService) { s.now = now }
}

// WithCacheTTL sets the fixed TTL of cache entries.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *URLService) { s.cacheTTL = ttl }
}

// WithLinkLifetime sets the expiry applied when Create gets none.
func WithLinkLifetime(d time.Duration) Option {
	return func(s *URLService) { s.lifetime = d }
}

// WithMaxAttempts bounds random code allocation.
func WithMaxAttempts(n int) Option {
	return func(s *URLService) { s.maxAttempts = n }
}

// WithClickRecorder hands cache hit accounting to r instead of doing it inline.
func WithClickRecorder(r ClickRecorder) Option {
	return func(s *URLService) { s.clicks = r }
}

type URLService struct {
	repository  Storage
	cache       Cache
	generator   *CodeGenerator
	clicks      ClickRecorder
	logger      *zap.Logger
	now         func() time.Time
	cacheTTL    time.Duration
	lifetime    time.Duration
	maxAttempts int
}

// NewURL builds the engine. cache may be nil, in which case every
// resolution goes to the store.
func NewURL(repo Storage, cache Cache, generator *CodeGenerator, logger *zap.Logger, opts ...Option) *URLService {
	s := &URLService{
		repository:  repo,
		cache:       cache,
		generator:   generator,
		logger:      logger,
		now:         time.Now,
		cacheTTL:    DefaultCacheTTL,
		lifetime:    DefaultLinkLifetime,
		maxAttempts: DefaultMaxAttempts,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *URLService) PingContext(ctx context.Context) error {
	return s.repository.PingContext(ctx)
}

// Create allocates a short code for p.OriginalURL and persists the link.
// The store's unique index is the authoritative collision check: a conflict
// on insert fails an explicit alias with ErrAliasTaken and makes random
// allocation try another code.
func (s *URLService) Create(ctx context.Context, p CreateParams, caller Identity) (*storage.Link, error) {
	if err := validateURL(p.OriginalURL); err != nil {
		return nil, err
	}

	now := s.now().UTC()

	expiresAt := now.Add(s.lifetime)
	if p.ExpiresAt != nil {
		if !p.ExpiresAt.After(now) {
			return nil, fmt.Errorf("%w: expires_at must be in the future", ErrInvalidInput)
		}
		expiresAt = p.ExpiresAt.UTC()
	}

	link := storage.Link{
		OriginalURL: p.OriginalURL,
		IsActive:    true,
		CreatedAt:   now,
		ExpiresAt:   &expiresAt,
	}
	if uid, ok := UserIDOf(caller); ok {
		link.UserID = &uid
	} else {
		link.IsAnonymous = true
	}

	if p.CustomAlias != "" {
		return s.createWithAlias(ctx, link, p.CustomAlias)
	}

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		code := s.generator.Generate()

		exists, err := s.repository.ExistsShort(ctx, code)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		link.ShortCode = code
		created, err := s.repository.Create(ctx, link)
		if errors.Is(err, storage.ErrConflict) {
			s.logger.Debug("short code collision on insert", zap.String("short_code", code))
			continue
		}
		if err != nil {
			return nil, err
		}

		return created, nil
	}

	s.logger.Error("short code allocation exhausted", zap.Int("attempts", s.maxAttempts))
	return nil, ErrCodeSpaceExhausted
}

func (s *URLService) createWithAlias(ctx context.Context, link storage.Link, alias string) (*storage.Link, error) {
	if err := validateAlias(alias); err != nil {
		return nil, err
	}

	exists, err := s.repository.ExistsShort(ctx, alias)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %q", ErrAliasTaken, alias)
	}

	link.ShortCode = alias
	created, err := s.repository.Create(ctx, link)
	if errors.Is(err, storage.ErrConflict) {
		return nil, fmt.Errorf("%w: %q", ErrAliasTaken, alias)
	}
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Resolve returns the redirect target for code and accounts one click.
//
// A cache hit commits to the redirect immediately and accounts the click
// best-effort. A miss reads the store filtered to resolvable links, records
// the click and then fills the cache.
func (s *URLService) Resolve(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", ErrNotFound
	}

	key := cacheKey(code)
	if target, ok := s.cacheGet(ctx, key); ok {
		s.recordHit(ctx, code)
		return target, nil
	}

	now := s.now()
	link, err := s.repository.FindResolvable(ctx, code, now)
	if errors.Is(err, storage.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}

	if err := s.repository.RecordClicks(ctx, code, 1, now); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// deleted or expired between the read and the write
			return "", ErrNotFound
		}
		return "", err
	}

	s.cacheSet(ctx, key, link.OriginalURL)

	return link.OriginalURL, nil
}

// GetLink returns a resolvable link for the info and stats projections.
func (s *URLService) GetLink(ctx context.Context, code string, caller Identity) (*storage.Link, error) {
	link, err := s.repository.FindResolvable(ctx, code, s.now())
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !CanView(link, caller) {
		return nil, ErrForbidden
	}

	return link, nil
}

// Update changes the target and/or expiry of a link owned by caller.
// Existence is checked by code only, regardless of resolvability.
func (s *URLService) Update(ctx context.Context, code string, caller Identity, p UpdateParams) (*storage.Link, error) {
	if p.OriginalURL != nil {
		if err := validateURL(*p.OriginalURL); err != nil {
			return nil, err
		}
	}

	link, err := s.mutable(ctx, code, caller)
	if err != nil {
		return nil, err
	}

	patch := storage.LinkPatch{OriginalURL: p.OriginalURL}
	if p.ExpiresAt != nil {
		e := p.ExpiresAt.UTC()
		patch.ExpiresAt = &e
	}
	if patch.Empty() {
		return link, nil
	}

	updated, err := s.repository.Update(ctx, code, patch)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	key := cacheKey(code)
	switch {
	case !updated.Resolvable(s.now()):
		s.cacheDelete(ctx, key)
	case p.OriginalURL != nil:
		if !s.cacheSet(ctx, key, updated.OriginalURL) {
			s.cacheDelete(ctx, key)
		}
	}

	return updated, nil
}

// Delete removes a link owned by caller and evicts its cache entry.
// A failed eviction does not fail the deletion; the entry expires with its TTL.
func (s *URLService) Delete(ctx context.Context, code string, caller Identity) error {
	if _, err := s.mutable(ctx, code, caller); err != nil {
		return err
	}

	err := s.repository.DeleteByShort(ctx, code)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	s.cacheDelete(ctx, cacheKey(code))
	return nil
}

// SweepExpired hard-deletes every link whose expiry has passed. Cache
// entries of swept codes are left to expire with their TTL.
func (s *URLService) SweepExpired(ctx context.Context) (int64, error) {
	n, err := s.repository.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}

	s.logger.Info("expired links swept", zap.Int64("count", n))
	return n, nil
}

// SearchByURL finds links with exactly this original URL. Authenticated
// callers see their own links, anonymous callers only anonymous links.
func (s *URLService) SearchByURL(ctx context.Context, originalURL string, caller Identity) ([]storage.Link, error) {
	if originalURL == "" {
		return nil, fmt.Errorf("%w: url is required", ErrInvalidInput)
	}

	filter := storage.OwnerFilter{AnonymousOnly: true}
	if uid, ok := UserIDOf(caller); ok {
		filter = storage.OwnerFilter{UserID: &uid}
	}

	return s.repository.FindByOriginal(ctx, originalURL, filter)
}

// ListByOwner pages through the caller's links and reports their total count.
func (s *URLService) ListByOwner(ctx context.Context, caller Identity, skip, limit int) ([]storage.Link, int64, error) {
	uid, ok := UserIDOf(caller)
	if !ok {
		return nil, 0, ErrForbidden
	}
	if skip < 0 || limit < 1 {
		return nil, 0, fmt.Errorf("%w: bad page bounds", ErrInvalidInput)
	}

	links, err := s.repository.FindByOwner(ctx, uid, skip, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repository.CountLinks(ctx, storage.OwnerFilter{UserID: &uid})
	if err != nil {
		return nil, 0, err
	}

	return links, total, nil
}

func (s *URLService) GetStats(ctx context.Context) (*storage.Stats, error) {
	return s.repository.GetStats(ctx)
}

// mutable loads a link by code and checks that caller may change it.
func (s *URLService) mutable(ctx context.Context, code string, caller Identity) (*storage.Link, error) {
	link, err := s.repository.FindByShort(ctx, code)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !CanMutate(link, caller) {
		return nil, ErrForbidden
	}

	return link, nil
}

func (s *URLService) recordHit(ctx context.Context, code string) {
	now := s.now()
	if s.clicks != nil {
		s.clicks.Record(code, now)
		return
	}

	err := s.repository.RecordClicks(ctx, code, 1, now)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		s.logger.Warn("click accounting failed", zap.String("short_code", code), zap.Error(err))
	}
}

func (s *URLService) cacheGet(ctx context.Context, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}

	v, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return v, ok
}

func (s *URLService) cacheSet(ctx context.Context, key, value string) bool {
	if s.cache == nil {
		return true
	}

	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
		s.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *URLService) cacheDelete(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn("cache eviction failed", zap.String("key", key), zap.Error(err))
	}
}

func cacheKey(code string) string {
	return cacheKeyPrefix + code
}

func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: url is required", ErrInvalidInput)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: url scheme must be http or https", ErrInvalidInput)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: url host is empty", ErrInvalidInput)
	}

	return nil
}

func validateAlias(alias string) error {
	if !aliasPattern.MatchString(alias) {
		return fmt.Errorf("%w: alias must be 1-32 characters of letters, digits, '-' or '_'", ErrInvalidInput)
	}
	if _, reserved := reservedAliases[alias]; reserved {
		return fmt.Errorf("%w: alias %q is reserved", ErrInvalidInput, alias)
	}

	return nil
}
