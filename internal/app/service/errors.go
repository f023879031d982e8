package service

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrAliasTaken         = errors.New("alias already taken")
	ErrCodeSpaceExhausted = errors.New("could not allocate a free short code")
	// ErrNotFound covers unknown, expired and deactivated links alike.
	ErrNotFound  = errors.New("link not found")
	ErrForbidden = errors.New("forbidden")
)
