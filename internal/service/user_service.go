package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/hospital-record-service/internal/auth"
	"github.com/spec-kit/hospital-record-service/internal/domain"
	"github.com/spec-kit/hospital-record-service/internal/repository"
)

// UserService coordinates account registration and lookup. Registration
// hands the new account to the session service so a verification link goes
// out.
type UserService struct {
	users      repository.UserRepository
	hospitals  repository.HospitalRepository
	sessions   *SessionService
	bcryptCost int
	logger     *zap.Logger
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, hospitals repository.HospitalRepository, sessions *SessionService, bcryptCost int, logger *zap.Logger) *UserService {
	return &UserService{
		users:      users,
		hospitals:  hospitals,
		sessions:   sessions,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates a new account. A hospital reference must resolve; new
// accounts start unverified until the emailed link is redeemed.
func (s *UserService) Register(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, user.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if _, err := s.users.GetByUsername(ctx, user.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if user.HospitalID != nil {
		if _, err := s.hospitals.GetByID(ctx, *user.HospitalID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrHospitalNotFound
			}
			return nil, err
		}
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash
	user.EmailVerified = false

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.sessions.RequestEmailVerification(ctx, user); err != nil {
		// account exists either way; the link can be re-requested
		s.logger.Warn("failed to dispatch verification link",
			zap.String("email", user.Email), zap.Error(err))
	}

	return user, nil
}

// GetByID fetches one account.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetByEmail fetches one account by email address.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return user, nil
}

// List pages through accounts.
func (s *UserService) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.users.List(ctx, limit, offset)
}
