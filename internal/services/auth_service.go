package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/cf-incubator/internal/models"
	"gorm.io/gorm"
)

type AuthService struct {
	db      *gorm.DB
	hasher  *PasswordHasher
	tokens  *TokenService
	metrics *metrics.Metrics
}

func NewAuthService(db *gorm.DB, hasher *PasswordHasher, tokens *TokenService, m *metrics.Metrics) *AuthService {
	return &AuthService{
		db:      db,
		hasher:  hasher,
		tokens:  tokens,
		metrics: m,
	}
}

// NormalizeEmail is applied on every write and lookup of an email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) findByEmail(ctx context.Context, email string) (*models.Representative, error) {
	var rep models.Representative
	err := s.db.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&rep).Error
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

// Authenticate checks an email/password pair. Unknown emails and wrong
// passwords both return ErrInvalidCredentials; only the log tells them apart.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.Representative, error) {
	rep, err := s.findByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Info("login rejected", "reason", "unknown_email")
			s.metrics.LoginAttempt("unknown_email")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up representative: %w", err)
	}

	if !s.hasher.Check(password, rep.HashedPassword) {
		slog.Info("login rejected", "reason", "wrong_password", "representative_id", rep.ID)
		s.metrics.LoginAttempt("wrong_password")
		return nil, ErrInvalidCredentials
	}

	s.metrics.LoginAttempt("success")
	return rep, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.TokenResponse, error) {
	rep, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.IssueDefault(rep.Email)
	if err != nil {
		return nil, err
	}

	slog.Info("representative logged in", "representative_id", rep.ID)
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
		User: dto.UserSummary{
			ID:    rep.ID,
			Email: rep.Email,
		},
	}, nil
}

// Resolve maps a bearer token back to a stored representative.
func (s *AuthService) Resolve(ctx context.Context, token string) (*models.Representative, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		return nil, ErrUnauthorized
	}
	return s.ResolveSubject(ctx, subject)
}

// ResolveSubject loads the representative named by a verified token
// subject. A valid signature is not enough: the account must still exist.
func (s *AuthService) ResolveSubject(ctx context.Context, email string) (*models.Representative, error) {
	if email == "" {
		return nil, ErrUnauthorized
	}
	rep, err := s.findByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to resolve token subject: %w", err)
	}
	return rep, nil
}

// RequireActive passes active representatives through unchanged.
func RequireActive(rep *models.Representative) (*models.Representative, error) {
	if rep == nil {
		return nil, ErrUnauthorized
	}
	if !rep.IsActive {
		return nil, ErrInactiveAccount
	}
	return rep, nil
}
