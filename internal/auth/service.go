package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/frahmantamala/hr-portal/internal"
	"golang.org/x/crypto/bcrypt"
)

// Service is the main auth service with dependencies
type Service struct {
	repo       RepositoryAPI
	bcryptCost int
	logger     *slog.Logger
	// dummyHash is compared against when the email is unknown so that both
	// failure paths cost one bcrypt comparison.
	dummyHash []byte
}

// NewService creates a new auth service
func NewService(repo RepositoryAPI, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	if logger == nil {
		logger = slog.Default()
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcryptCost)
	return &Service{repo: repo, bcryptCost: bcryptCost, logger: logger, dummyHash: dummy}
}

// Verify checks an email and password pair. Unknown email and wrong password
// both return ErrInvalidCredentials.
func (s *Service) Verify(ctx context.Context, email, password string) (*User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, internal.ErrInvalidCredentials
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, internal.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			s.logger.Info("login rejected", "reason", "unknown email")
			return nil, internal.ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user", "error", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		s.logger.Info("login rejected", "reason", "password mismatch", "userID", u.ID)
		return nil, internal.ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) UserByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateUser hashes the password and stores a new credential.
func (s *Service) CreateUser(ctx context.Context, dto NewUserDTO) (*User, error) {
	if errs := dto.Validate(); !errs.Empty() {
		return nil, errs.AppError()
	}

	hash, err := s.HashPassword(dto.Password)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	u := &User{
		Email:        NormalizeEmail(dto.Email),
		FullName:     dto.FullName,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error("failed to create user", "email", u.Email, "error", err)
		return nil, err
	}
	s.logger.Info("user created", "userID", u.ID, "email", u.Email)
	return u, nil
}

// HashPassword creates a bcrypt hash of the password
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
