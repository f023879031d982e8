// Package models defines the request and response bodies of the HTTP API.
package models

import (
	"strings"
	"time"

	"github.com/atinyakov/url-cutter/internal/storage"
)

// CreateRequest is the body of POST /links/shorten.
type CreateRequest struct {
	OriginalURL string     `json:"original_url"`
	CustomAlias *string    `json:"custom_alias,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// UpdateRequest is the body of PUT /links/{code}. Absent fields are kept.
type UpdateRequest struct {
	OriginalURL *string    `json:"original_url,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// LinkResponse is the full view of a link.
type LinkResponse struct {
	ID          int64      `json:"id"`
	OriginalURL string     `json:"original_url"`
	ShortCode   string     `json:"short_code"`
	ShortURL    string     `json:"short_url"`
	UserID      *int64     `json:"user_id"`
	IsAnonymous bool       `json:"is_anonymous"`
	Clicks      int64      `json:"clicks"`
	CreatedAt   time.Time  `json:"created_at"`
	LastUsedAt  *time.Time `json:"last_used_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// StatsResponse is the usage projection of GET /links/{code}/stats.
type StatsResponse struct {
	OriginalURL string     `json:"original_url"`
	ShortCode   string     `json:"short_code"`
	ShortURL    string     `json:"short_url"`
	Clicks      int64      `json:"clicks"`
	CreatedAt   time.Time  `json:"created_at"`
	LastUsedAt  *time.Time `json:"last_used_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// SearchItem is one hit of GET /links/search.
type SearchItem struct {
	ID        int64      `json:"id"`
	ShortCode string     `json:"short_code"`
	ShortURL  string     `json:"short_url"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// SweepResponse reports how many expired links were purged.
type SweepResponse struct {
	Deleted int64 `json:"deleted"`
}

// InternalStats is the body of GET /api/internal/stats.
type InternalStats struct {
	Links int64 `json:"links"`
	Users int64 `json:"users"`
}

// ErrorResponse carries the message of a failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ShortURL joins the public base URL and a short code.
func ShortURL(baseURL, code string) string {
	return strings.TrimRight(baseURL, "/") + "/" + code
}

func NewLinkResponse(l *storage.Link, baseURL string) LinkResponse {
	return LinkResponse{
		ID:          l.ID,
		OriginalURL: l.OriginalURL,
		ShortCode:   l.ShortCode,
		ShortURL:    ShortURL(baseURL, l.ShortCode),
		UserID:      l.UserID,
		IsAnonymous: l.IsAnonymous,
		Clicks:      l.Clicks,
		CreatedAt:   l.CreatedAt,
		LastUsedAt:  l.LastUsedAt,
		ExpiresAt:   l.ExpiresAt,
	}
}

func NewStatsResponse(l *storage.Link, baseURL string) StatsResponse {
	return StatsResponse{
		OriginalURL: l.OriginalURL,
		ShortCode:   l.ShortCode,
		ShortURL:    ShortURL(baseURL, l.ShortCode),
		Clicks:      l.Clicks,
		CreatedAt:   l.CreatedAt,
		LastUsedAt:  l.LastUsedAt,
		ExpiresAt:   l.ExpiresAt,
	}
}

func NewSearchItems(links []storage.Link, baseURL string) []SearchItem {
	items := make([]SearchItem, 0, len(links))
	for _, l := range links {
		items = append(items, SearchItem{
			ID:        l.ID,
			ShortCode: l.ShortCode,
			ShortURL:  ShortURL(baseURL, l.ShortCode),
			CreatedAt: l.CreatedAt,
			ExpiresAt: l.ExpiresAt,
		})
	}
	return items
}

func NewLinkResponses(links []storage.Link, baseURL string) []LinkResponse {
	out := make([]LinkResponse, 0, len(links))
	for i := range links {
		out = append(out, NewLinkResponse(&links[i], baseURL))
	}
	return out
}
