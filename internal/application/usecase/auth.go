package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"courseadmin/internal/client"
	"courseadmin/internal/domain"
	"courseadmin/internal/infrastructure/cache"
	"courseadmin/internal/infrastructure/security"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type AuthUseCase struct {
	api      *client.API
	sessions *cache.SessionStore
	tokens   *security.SessionTokens
	ttl      time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

func NewAuthUseCase(
	api *client.API,
	sessions *cache.SessionStore,
	tokens *security.SessionTokens,
	ttl time.Duration,
	logger zerolog.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		api:      api,
		sessions: sessions,
		tokens:   tokens,
		ttl:      ttl,
		logger:   logger.With().Str("component", "auth").Logger(),
		now:      time.Now,
	}
}

type LoginOutput struct {
	Cookie    string
	ExpiresAt time.Time
	Session   domain.Session
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (LoginOutput, error) {
	res, err := uc.api.Auth.Login(ctx, email, password)
	if err != nil {
		if apiErr, ok := client.AsAPIError(err); ok {
			switch apiErr.Status {
			case http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound, http.StatusUnprocessableEntity:
				return LoginOutput{}, fmt.Errorf("%w: %s", domain.ErrInvalidCredentials, apiErr.Message)
			}
		}
		return LoginOutput{}, err
	}

	admin := res.Admin
	if admin.Role == "" {
		// старые версии API не отдают пользователя в ответе логина
		if admin, err = uc.api.Auth.Me(ctx, res.Token); err != nil {
			return LoginOutput{}, err
		}
	}

	if !admin.CanUseDashboard() {
		if err := uc.api.Auth.Logout(ctx, res.Token); err != nil {
			uc.logger.Warn().Err(err).Str("email", email).Msg("Failed to revoke non-admin token")
		}
		return LoginOutput{}, domain.ErrNotAdmin
	}

	now := uc.now()
	session := domain.Session{
		ID:        uuid.NewString(),
		Admin:     admin,
		Token:     res.Token,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.ttl),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return LoginOutput{}, fmt.Errorf("save session: %w", err)
	}

	cookie, err := uc.tokens.Generate(session.ID, admin.ID, session.ExpiresAt)
	if err != nil {
		return LoginOutput{}, fmt.Errorf("sign session cookie: %w", err)
	}

	uc.logger.Info().Str("admin_id", admin.ID).Str("session_id", session.ID).Msg("Admin logged in")
	return LoginOutput{Cookie: cookie, ExpiresAt: session.ExpiresAt, Session: session}, nil
}

// Resolve turns a cookie value into a live session.
func (uc *AuthUseCase) Resolve(ctx context.Context, cookie string) (domain.Session, error) {
	sid, err := uc.tokens.Validate(cookie)
	if err != nil {
		return domain.Session{}, domain.ErrSessionNotFound
	}

	session, err := uc.sessions.Get(ctx, sid)
	if err != nil {
		return domain.Session{}, err
	}
	if session.Expired(uc.now()) {
		_ = uc.sessions.Delete(ctx, sid)
		return domain.Session{}, domain.ErrSessionExpired
	}
	return session, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context, session domain.Session) error {
	if err := uc.sessions.Delete(ctx, session.ID); err != nil {
		return err
	}
	if err := uc.api.Auth.Logout(ctx, session.Token); err != nil {
		uc.logger.Warn().Err(err).Str("session_id", session.ID).Msg("Upstream logout failed")
	}
	uc.logger.Info().Str("admin_id", session.Admin.ID).Str("session_id", session.ID).Msg("Admin logged out")
	return nil
}

// Destroy drops a session whose upstream token was rejected.
func (uc *AuthUseCase) Destroy(ctx context.Context, sessionID string) {
	if err := uc.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, context.Canceled) {
		uc.logger.Error().Err(err).Str("session_id", sessionID).Msg("Failed to delete session")
	}
}
