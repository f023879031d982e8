// Package storage defines the persisted Link and User records and an
// in-memory store used when no database is configured.
package storage

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when an insert violates the unique short code index.
	ErrConflict = errors.New("data conflict")
)

// Link is a single shortened URL.
type Link struct {
	ID          int64      `json:"id"`
	OriginalURL string     `json:"original_url"`
	ShortCode   string     `json:"short_code"`
	UserID      *int64     `json:"user_id,omitempty"`
	IsAnonymous bool       `json:"is_anonymous"`
	IsActive    bool       `json:"is_active"`
	Clicks      int64      `json:"clicks"`
	CreatedAt   time.Time  `json:"created_at"`
	LastUsedAt  *time.Time `json:"last_used_at,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// Resolvable reports whether the link is active and not expired at now.
func (l *Link) Resolvable(now time.Time) bool {
	if !l.IsActive {
		return false
	}
	return l.ExpiresAt == nil || l.ExpiresAt.After(now)
}

// OwnedBy reports whether the link belongs to the given user.
func (l *Link) OwnedBy(userID int64) bool {
	return l.UserID != nil && *l.UserID == userID
}

// LinkPatch carries the fields of a partial update. Nil fields are left untouched.
type LinkPatch struct {
	OriginalURL *string
	ExpiresAt   *time.Time
}

// Empty reports whether the patch changes nothing.
func (p LinkPatch) Empty() bool {
	return p.OriginalURL == nil && p.ExpiresAt == nil
}

// OwnerFilter narrows link queries by ownership.
//
// The zero value matches every link. AnonymousOnly matches links created
// without an owner; UserID matches links owned by that user.
type OwnerFilter struct {
	UserID        *int64
	AnonymousOnly bool
}

// Match reports whether the link passes the filter.
func (f OwnerFilter) Match(l *Link) bool {
	if f.AnonymousOnly && !l.IsAnonymous {
		return false
	}
	if f.UserID != nil && !l.OwnedBy(*f.UserID) {
		return false
	}
	return true
}

// User is the account a link may belong to.
type User struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

// Stats holds service-wide totals.
type Stats struct {
	Links int64 `json:"links"`
	Users int64 `json:"users"`
}
