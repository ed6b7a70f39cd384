package security

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"textgateway.app/internal/ports"
	"textgateway.app/pkg/errors"
)

const signingAlgorithm = "HS256"

// JWTTokenService signs and verifies HS256 bearer tokens with a shared secret
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ ports.TokenService = (*JWTTokenService)(nil)

// NewJWTTokenService creates a token service for the given secret and validity window
func NewJWTTokenService(secret string, ttl time.Duration) (*JWTTokenService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.NewConfigurationError("token signing secret cannot be empty", nil)
	}
	if ttl <= 0 {
		return nil, errors.NewConfigurationError("token ttl must be positive", nil)
	}
	return &JWTTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs {sub, iat, exp, jti} for the subject
func (s *JWTTokenService) Issue(subject string) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", errors.NewValidationError("token subject cannot be empty")
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry and returns the claims
func (s *JWTTokenService) Verify(token string) (*ports.TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{signingAlgorithm}))
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.NewAuthError("token has expired", err)
		}
		return nil, errors.NewAuthError("could not validate credentials", err)
	}
	if !parsed.Valid {
		return nil, errors.NewAuthError("could not validate credentials", nil)
	}
	if claims.ExpiresAt == nil {
		return nil, errors.NewAuthError("token has no expiry", nil)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return nil, errors.NewAuthError("token has no subject", nil)
	}

	result := &ports.TokenClaims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	return result, nil
}
