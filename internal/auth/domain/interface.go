package domain

//go:generate mockgen -destination=../../mocks/mock_session_repository.go -package=mocks github.com/rahmam-mok/Development/internal/auth/domain SessionRepository

import "context"

type SessionRepository interface {
	Upsert(ctx context.Context, session *Session) error
	FindByUsername(ctx context.Context, username string) (*Session, error)
}
