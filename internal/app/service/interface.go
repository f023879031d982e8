package service

import (
	"context"
	"time"

	"github.com/atinyakov/url-cutter/internal/storage"
)

//go:generate mockgen -destination=../../mocks/mock_storage.go -package=mocks . Storage

// Storage is the persistence boundary. Implementations must enforce a unique
// short_code and return storage.ErrConflict when an insert violates it.
type Storage interface {
	Create(context.Context, storage.Link) (*storage.Link, error)
	ExistsShort(context.Context, string) (bool, error)
	FindByShort(context.Context, string) (*storage.Link, error)
	FindResolvable(context.Context, string, time.Time) (*storage.Link, error)
	RecordClicks(context.Context, string, int64, time.Time) error
	Update(context.Context, string, storage.LinkPatch) (*storage.Link, error)
	DeleteByShort(context.Context, string) error
	DeleteExpired(context.Context, time.Time) (int64, error)
	FindByOriginal(context.Context, string, storage.OwnerFilter) ([]storage.Link, error)
	FindByOwner(context.Context, int64, int, int) ([]storage.Link, error)
	CountLinks(context.Context, storage.OwnerFilter) (int64, error)
	FindUserByID(context.Context, int64) (*storage.User, error)
	GetStats(context.Context) (*storage.Stats, error)
	PingContext(context.Context) error
}

// Cache is the disposable short code → URL view in front of Storage.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// ClickRecorder accepts click accounting for resolutions served from the cache.
type ClickRecorder interface {
	Record(code string, at time.Time)
}

//go:generate mockgen -destination=../../mocks/mock_service.go -package=mocks . URLServiceIface

// URLServiceIface is what the HTTP layer needs from the resolution engine.
type URLServiceIface interface {
	Create(ctx context.Context, p CreateParams, caller Identity) (*storage.Link, error)
	Resolve(ctx context.Context, code string) (string, error)
	GetLink(ctx context.Context, code string, caller Identity) (*storage.Link, error)
	Update(ctx context.Context, code string, caller Identity, p UpdateParams) (*storage.Link, error)
	Delete(ctx context.Context, code string, caller Identity) error
	SweepExpired(ctx context.Context) (int64, error)
	SearchByURL(ctx context.Context, originalURL string, caller Identity) ([]storage.Link, error)
	ListByOwner(ctx context.Context, caller Identity, skip, limit int) ([]storage.Link, int64, error)
	GetStats(ctx context.Context) (*storage.Stats, error)
	PingContext(ctx context.Context) error
}
