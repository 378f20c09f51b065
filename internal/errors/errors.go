package errors

import (
	"errors"
)

var (
	ErrUnsupportedClient    = errors.New("unsupported client: sign in from a browser")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrSessionNotFound      = errors.New("login session not found")
	ErrCodeMismatch         = errors.New("invalid verification code")
	ErrCodeExpired          = errors.New("verification code expired")
	ErrTooManyRequests      = errors.New("too many attempts, try again later")
	ErrUnsupportedChallenge = errors.New("unsupported authentication challenge")
	ErrProviderUnavailable  = errors.New("identity provider unavailable")
)
