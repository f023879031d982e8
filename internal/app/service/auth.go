package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/atinyakov/url-cutter/internal/storage"
)

//go:generate mockgen -destination=../../mocks/mock_auth.go -package=mocks . AuthIface

// AuthIface resolves a bearer credential to an Identity. It is used by the
// HTTP middleware.
type AuthIface interface {
	Identify(ctx context.Context, token string) (Identity, error)
}

// UserFinder looks up the account behind a token subject.
type UserFinder interface {
	FindUserByID(context.Context, int64) (*storage.User, error)
}

// TokenExp is the default lifetime of issued tokens (8 days).
const TokenExp = 8 * 24 * time.Hour

// Auth issues and verifies HS256 bearer tokens whose subject is the user id.
type Auth struct {
	users  UserFinder
	secret []byte
	ttl    time.Duration
}

func NewAuth(users UserFinder, secret string, ttl time.Duration) *Auth {
	if ttl <= 0 {
		ttl = TokenExp
	}

	return &Auth{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// BuildJWTString issues a token for userID.
func (a *Auth) BuildJWTString(userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	})

	return token.SignedString(a.secret)
}

// ParseRawJWT verifies the signature and expiry and returns the user id in the subject.
func (a *Auth) ParseRawJWT(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid token subject: %w", err)
	}

	return userID, nil
}

// Identify maps a bearer token to an Identity. A missing or invalid token,
// an unknown user and an inactive user all yield Anonymous. Only store
// failures are returned as errors.
func (a *Auth) Identify(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Anonymous{}, nil
	}

	userID, err := a.ParseRawJWT(token)
	if err != nil {
		return Anonymous{}, nil
	}

	user, err := a.users.FindUserByID(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return Anonymous{}, nil
	}
	if err != nil {
		return Anonymous{}, err
	}
	if !user.IsActive {
		return Anonymous{}, nil
	}

	return Authenticated{UserID: user.ID, Superuser: user.IsSuperuser}, nil
}
