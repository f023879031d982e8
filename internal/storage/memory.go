package storage

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStorage keeps links and users in process memory. It enforces the
// same unique short code constraint as the database schema.
type MemoryStorage struct {
	mu     sync.RWMutex
	byCode map[string]*Link
	users  map[int64]*User
	nextID int64
	nextUs int64
}

func CreateMemoryStorage() (*MemoryStorage, error) {
	return &MemoryStorage{
		byCode: make(map[string]*Link),
		users:  make(map[int64]*User),
	}, nil
}

func (m *MemoryStorage) Create(_ context.Context, l Link) (*Link, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byCode[l.ShortCode]; exists {
		return nil, ErrConflict
	}

	m.nextID++
	l.ID = m.nextID
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}

	stored := l
	m.byCode[l.ShortCode] = &stored

	return copyLink(&stored), nil
}

func (m *MemoryStorage) ExistsShort(_ context.Context, code string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.byCode[code]
	return exists, nil
}

func (m *MemoryStorage) FindByShort(_ context.Context, code string) (*Link, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if l, exists := m.byCode[code]; exists {
		return copyLink(l), nil
	}
	return nil, ErrNotFound
}

func (m *MemoryStorage) FindResolvable(_ context.Context, code string, now time.Time) (*Link, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if l, exists := m.byCode[code]; exists && l.Resolvable(now) {
		return copyLink(l), nil
	}
	return nil, ErrNotFound
}

// RecordClicks adds n clicks to a resolvable link and moves last_used_at
// forward to at. It never moves last_used_at backwards.
func (m *MemoryStorage) RecordClicks(_ context.Context, code string, n int64, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, exists := m.byCode[code]
	if !exists || !l.Resolvable(at) {
		return ErrNotFound
	}

	l.Clicks += n
	if l.LastUsedAt == nil || at.After(*l.LastUsedAt) {
		t := at
		l.LastUsedAt = &t
	}
	return nil
}

func (m *MemoryStorage) Update(_ context.Context, code string, p LinkPatch) (*Link, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, exists := m.byCode[code]
	if !exists {
		return nil, ErrNotFound
	}

	if p.OriginalURL != nil {
		l.OriginalURL = *p.OriginalURL
	}
	if p.ExpiresAt != nil {
		t := *p.ExpiresAt
		l.ExpiresAt = &t
	}

	return copyLink(l), nil
}

func (m *MemoryStorage) DeleteByShort(_ context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byCode[code]; !exists {
		return ErrNotFound
	}

	delete(m.byCode, code)
	return nil
}

func (m *MemoryStorage) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64
	for code, l := range m.byCode {
		if l.ExpiresAt != nil && l.ExpiresAt.Before(now) {
			delete(m.byCode, code)
			removed++
		}
	}
	return removed, nil
}

func (m *MemoryStorage) FindByOriginal(_ context.Context, original string, f OwnerFilter) ([]Link, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.collect(func(l *Link) bool {
		return l.OriginalURL == original && f.Match(l)
	}), nil
}

func (m *MemoryStorage) FindByOwner(_ context.Context, userID int64, offset, limit int) ([]Link, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	links := m.collect(func(l *Link) bool { return l.OwnedBy(userID) })

	if offset >= len(links) {
		return []Link{}, nil
	}
	links = links[offset:]
	if limit > 0 && limit < len(links) {
		links = links[:limit]
	}
	return links, nil
}

func (m *MemoryStorage) CountLinks(_ context.Context, f OwnerFilter) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var n int64
	for _, l := range m.byCode {
		if f.Match(l) {
			n++
		}
	}
	return n, nil
}

func (m *MemoryStorage) CreateUser(_ context.Context, u User) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return nil, ErrConflict
		}
	}

	m.nextUs++
	u.ID = m.nextUs
	stored := u
	m.users[u.ID] = &stored

	res := stored
	return &res, nil
}

func (m *MemoryStorage) FindUserByID(_ context.Context, id int64) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if u, exists := m.users[id]; exists {
		res := *u
		return &res, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryStorage) GetStats(_ context.Context) (*Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return &Stats{
		Links: int64(len(m.byCode)),
		Users: int64(len(m.users)),
	}, nil
}

func (m *MemoryStorage) PingContext(_ context.Context) error {
	return nil
}

// collect returns copies of matching links ordered by id. Callers hold the lock.
func (m *MemoryStorage) collect(match func(*Link) bool) []Link {
	res := make([]Link, 0)
	for _, l := range m.byCode {
		if match(l) {
			res = append(res, *copyLink(l))
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func copyLink(l *Link) *Link {
	c := *l
	if l.UserID != nil {
		id := *l.UserID
		c.UserID = &id
	}
	if l.LastUsedAt != nil {
		t := *l.LastUsedAt
		c.LastUsedAt = &t
	}
	if l.ExpiresAt != nil {
		t := *l.ExpiresAt
		c.ExpiresAt = &t
	}
	return &c
}
