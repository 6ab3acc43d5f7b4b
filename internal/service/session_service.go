package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/hospital-record-service/internal/auth"
	"github.com/spec-kit/hospital-record-service/internal/domain"
	"github.com/spec-kit/hospital-record-service/internal/events"
	"github.com/spec-kit/hospital-record-service/internal/repository"
)

// A syntactically valid digest that no password hashes to. Burned on
// lookups for unknown accounts so login cost does not reveal whether the
// email exists.
const decoyDigest = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// LoginResult bundles the dual tokens and the account returned on login.
type LoginResult struct {
	User             *domain.User
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// SessionService orchestrates login, token refresh, email verification and
// the password reset flows. Each call is a discrete transition against
// externally owned account state; the service itself keeps no state beyond
// its immutable dependencies.
type SessionService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
	logger     *zap.Logger
}

// NewSessionService builds the service.
func NewSessionService(users repository.UserRepository, tokens *auth.TokenManager, dispatcher events.Dispatcher, bcryptCost int, logger *zap.Logger) *SessionService {
	return &SessionService{
		users:      users,
		tokens:     tokens,
		dispatcher: dispatcher,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Login checks credentials and issues an access/refresh token pair with
// independent ids and expiries. Unknown accounts and wrong passwords fail
// identically.
func (s *SessionService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			_ = auth.ComparePassword(decoyDigest, password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, accessExp, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshExp, err := s.tokens.IssueRefreshToken(user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:             user,
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// Refresh redeems a refresh token for a new access token. The privilege
// snapshot is re-read from the live account, never copied from the stale
// refresh claims, so privilege changes take effect on the next refresh.
// The refresh token itself is not rotated.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (string, time.Time, error) {
	claims, err := s.tokens.Verify(refreshToken, auth.PurposeRefresh)
	if err != nil {
		s.logger.Debug("refresh token rejected", zap.Error(err))
		return "", time.Time{}, ErrInvalidRefreshToken
	}

	user, err := s.users.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, ErrAccountNotFound
		}
		return "", time.Time{}, err
	}

	return s.tokens.IssueAccessToken(user)
}

// VerifyEmail redeems an email-verification token. A second redemption is
// rejected with ErrAlreadyVerified rather than silently accepted, so stale
// links surface as misuse.
func (s *SessionService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.tokens.Verify(token, auth.PurposeEmailVerify)
	if err != nil {
		s.logger.Debug("verification token rejected", zap.Error(err))
		return ErrInvalidLinkToken
	}

	user, err := s.users.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAccountNotFound
		}
		return err
	}
	if user.EmailVerified {
		return ErrAlreadyVerified
	}

	user.EmailVerified = true
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.publish(ctx, events.EventEmailVerified, user.Email, nil)
	return nil
}

// RequestEmailVerification issues a fresh verification token and hands it
// to the notifier through the dispatcher.
func (s *SessionService) RequestEmailVerification(ctx context.Context, user *domain.User) error {
	token, expiresAt, err := s.tokens.IssueEmailVerifyToken(user.Email)
	if err != nil {
		return err
	}
	s.publish(ctx, events.EventUserRegistered, user.Email, events.MailTokenPayload{
		Email:     user.Email,
		Token:     token,
		ExpiresAt: expiresAt,
	})
	return nil
}

// RequestPasswordReset issues a reset token for a verified account and
// hands it to the notifier. Unverified accounts cannot reset passwords;
// their email ownership was never proven. Delivery is best-effort and does
// not roll back issuance.
func (s *SessionService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotRegistered
		}
		return err
	}
	if !user.EmailVerified {
		return ErrEmailNotVerified
	}

	token, expiresAt, err := s.tokens.IssuePasswordResetToken(user.Email)
	if err != nil {
		return err
	}

	s.publish(ctx, events.EventPasswordResetRequested, user.Email, events.MailTokenPayload{
		Email:     user.Email,
		Token:     token,
		ExpiresAt: expiresAt,
	})
	return nil
}

// ConfirmPasswordReset redeems a reset token and overwrites the credential
// digest. Tokens issued before the reset are not invalidated; see the
// revocation notes in DESIGN.md.
func (s *SessionService) ConfirmPasswordReset(ctx context.Context, token, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}

	claims, err := s.tokens.Verify(token, auth.PurposePasswordReset)
	if err != nil {
		s.logger.Debug("reset token rejected", zap.Error(err))
		return ErrInvalidLinkToken
	}

	user, err := s.users.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAccountNotFound
		}
		return err
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.publish(ctx, events.EventPasswordChanged, user.Email, nil)
	return nil
}

// TokenManager exposes the underlying manager for middleware wiring.
func (s *SessionService) TokenManager() *auth.TokenManager {
	return s.tokens
}

func (s *SessionService) publish(ctx context.Context, eventType events.EventType, subject string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Subject:   subject,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
