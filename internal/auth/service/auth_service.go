package service

//go:generate mockgen -destination=../../mocks/mock_authenticator.go -package=mocks github.com/rahmam-mok/Development/internal/auth/service Authenticator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rahmam-mok/Development/config"
	"github.com/rahmam-mok/Development/internal/auth/domain"
	"github.com/rahmam-mok/Development/internal/auth/dto"
	autherror "github.com/rahmam-mok/Development/internal/errors"
	"github.com/rahmam-mok/Development/pkg/constant"
)

// Authenticator is the identity-provider surface the auth service drives.
type Authenticator interface {
	PasswordAuth(ctx context.Context, username, password string) (*AuthOutcome, error)
	CompleteSMSChallenge(ctx context.Context, username, code, providerSession string) (*AuthOutcome, error)
}

type AuthService struct {
	sessions     domain.SessionRepository
	provider     Authenticator
	tokenService *TokenService
	cfg          *config.Config
}

func NewAuthService(sessions domain.SessionRepository, provider Authenticator, tokenService *TokenService, cfg *config.Config) *AuthService {
	return &AuthService{
		sessions:     sessions,
		provider:     provider,
		tokenService: tokenService,
		cfg:          cfg,
	}
}

// Login runs the first authentication factor. A provider-issued SMS challenge
// leaves an unverified session behind and tells the caller where to submit
// the code; a direct success records a verified session and returns the
// provider's token untouched.
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	if s.cfg.BrowserCheckEnabled && !isBrowserUserAgent(input.UserAgent) {
		// Rejected before the provider ever sees the request.
		return nil, autherror.ErrUnsupportedClient
	}

	outcome, err := s.provider.PasswordAuth(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &domain.Session{
		ID:        uuid.NewString(),
		Username:  input.Username,
		UserAgent: input.UserAgent,
		IPAddress: input.IPAddress,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if outcome.SMSChallengePending() {
		session.MFAVerified = false
		session.ProviderSession = outcome.ProviderSession

		if err := s.sessions.Upsert(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to store login session: %w", err)
		}

		return &dto.AuthResponse{
			MFARequired: true,
			Message:     constant.SMSChallengeMessage,
		}, nil
	}

	if outcome.ChallengePending() {
		return nil, fmt.Errorf("%w: %s", autherror.ErrUnsupportedChallenge, outcome.ChallengeName)
	}

	session.MFAVerified = true
	if err := s.sessions.Upsert(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store login session: %w", err)
	}

	return &dto.AuthResponse{
		Token:     outcome.AccessToken,
		ExpiresIn: s.tokenService.ExpiresIn(outcome.AccessToken, outcome.ExpiresIn),
	}, nil
}

// VerifyMFA answers the pending SMS challenge for the username's recorded
// session. On success the session's verified flag is set and the provider's
// token returned.
func (s *AuthService) VerifyMFA(ctx context.Context, input dto.VerifyMFAInput) (*dto.AuthResponse, error) {
	session, err := s.sessions.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to load login session: %w", err)
	}
	if session == nil {
		return nil, autherror.ErrSessionNotFound
	}

	outcome, err := s.provider.CompleteSMSChallenge(ctx, input.Username, input.Code, session.ProviderSession)
	if err != nil {
		return nil, err
	}

	if outcome.SMSChallengePending() {
		// The provider wants another round; keep the fresh challenge session.
		session.ProviderSession = outcome.ProviderSession
		session.UpdatedAt = time.Now().UTC()

		if err := s.sessions.Upsert(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to update login session: %w", err)
		}

		return &dto.AuthResponse{
			MFARequired: true,
			Message:     constant.SMSChallengeMessage,
		}, nil
	}

	if outcome.ChallengePending() {
		return nil, fmt.Errorf("%w: %s", autherror.ErrUnsupportedChallenge, outcome.ChallengeName)
	}

	session.MFAVerified = true
	session.ProviderSession = "" // consumed
	session.UpdatedAt = time.Now().UTC()

	if err := s.sessions.Upsert(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update login session: %w", err)
	}

	return &dto.AuthResponse{
		Token:     outcome.AccessToken,
		ExpiresIn: s.tokenService.ExpiresIn(outcome.AccessToken, outcome.ExpiresIn),
	}, nil
}

func isBrowserUserAgent(userAgent string) bool {
	for _, marker := range constant.BrowserUserAgentMarkers {
		if strings.Contains(userAgent, marker) {
			return true
		}
	}

	return false
}
