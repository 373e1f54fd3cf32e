package auth

import (
	"errors"
	"fmt"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/role"
	"catering/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// Session token lifetimes. Staff sessions are short-lived; customer sessions
// last a week, matching the storefront's remember-me behavior.
const (
	StaffTokenTTL    = 24 * time.Hour
	CustomerTokenTTL = 7 * 24 * time.Hour
)

// ErrSecretIsRequired is returned when constructing a token service without
// a signing secret.
var ErrSecretIsRequired = errors.New("token signing secret is required")

// Claims are the JWT claims carried by a session token.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TokenService signs and verifies session tokens. Tokens are HMAC-signed
// JWTs encoding {subject id, email, role}; verification failures of any kind
// (malformed, expired, bad signature, unknown role) surface as
// errs.ErrUnauthenticated so callers never distinguish why a token is bad.
type TokenService struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewTokenService creates a token service with the given signing secret.
func NewTokenService(secret string, issuer string) (*TokenService, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}, nil
}

// Issue signs a session token for the principal, valid for ttl.
func (s *TokenService) Issue(p Principal, ttl time.Duration) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	now := s.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   p.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: p.Email,
		Role:  p.Role.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a session token and resolves its principal.
func (s *TokenService) Verify(tokenString string) (Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return Principal{}, fmt.Errorf("%w: invalid session token", errs.ErrUnauthenticated)
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: invalid subject", errs.ErrUnauthenticated)
	}

	r, err := role.FromString(claims.Role)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: invalid role", errs.ErrUnauthenticated)
	}

	return Principal{ID: id, Email: claims.Email, Role: r}, nil
}
