package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is used when TokenConfig.TTL is not set.
const DefaultTokenTTL = 30 * time.Minute

// TokenConfig is built once at startup and handed to NewTokenService.
type TokenConfig struct {
	Secret    []byte
	Algorithm string
	TTL       time.Duration
}

type TokenClaims struct {
	jwt.RegisteredClaims
}

// TokenService mints and verifies signed access tokens.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	if len(cfg.Secret) == 0 {
		return nil, fmt.Errorf("token secret is required")
	}

	method := jwt.GetSigningMethod(cfg.Algorithm)
	if cfg.Algorithm == "" {
		method = jwt.SigningMethodHS256
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported token algorithm %q", cfg.Algorithm)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &TokenService{
		secret: cfg.Secret,
		method: method,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (s *TokenService) TTL() time.Duration { return s.ttl }

func (s *TokenService) Algorithm() string { return s.method.Alg() }

// Issue signs a token for subject that expires after ttl. Expiry has
// second precision and is rounded up, so any positive ttl yields a token
// that verifies immediately; ttl <= 0 yields an already-expired token.
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, time.Time, error) {
	expiresAt := s.now().Add(ttl)
	if ttl > 0 {
		if rounded := expiresAt.Truncate(time.Second); rounded.Before(expiresAt) {
			expiresAt = rounded.Add(time.Second)
		}
	}
	token, err := s.IssueAt(subject, expiresAt)
	return token, expiresAt, err
}

// IssueDefault signs a token with the configured TTL.
func (s *TokenService) IssueDefault(subject string) (string, time.Time, error) {
	return s.Issue(subject, s.ttl)
}

// IssueAt signs a token that expires at the given instant.
func (s *TokenService) IssueAt(subject string, expiresAt time.Time) (string, error) {
	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify returns the token subject, or ErrInvalidToken for any signature,
// structure, algorithm or expiry problem.
func (s *TokenService) Verify(token string) (string, error) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, s.Keyfunc,
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	return SubjectFromClaims(claims)
}

// Keyfunc resolves the verification key. It rejects tokens signed with any
// other algorithm so the bearer middleware and Verify agree.
func (s *TokenService) Keyfunc(t *jwt.Token) (interface{}, error) {
	if t.Method == nil || t.Method.Alg() != s.method.Alg() {
		return nil, ErrInvalidToken
	}
	return s.secret, nil
}

// SubjectFromClaims checks the claims that Verify requires beyond the
// signature: a subject and an expiry.
func SubjectFromClaims(claims *TokenClaims) (string, error) {
	if claims == nil || claims.Subject == "" || claims.ExpiresAt == nil {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
