package security

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"textgateway.app/pkg/errors"
)

const testSecret = "a-very-secret-signing-key"

func newTestService(t *testing.T) *JWTTokenService {
	t.Helper()
	svc, err := NewJWTTokenService(testSecret, 15*time.Minute)
	require.NoError(t, err)
	return svc
}

func TestNewJWTTokenService_Validation(t *testing.T) {
	_, err := NewJWTTokenService("", time.Minute)
	assert.True(t, errors.IsConfigurationError(err))

	_, err = NewJWTTokenService(testSecret, 0)
	assert.True(t, errors.IsConfigurationError(err))
}

func TestJWTTokenService_IssueAndVerify(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.Issue("alice")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(token, "."))

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.WithinDuration(t, claims.IssuedAt.Add(15*time.Minute), claims.ExpiresAt, time.Second)
}

func TestJWTTokenService_IssueRequiresSubject(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Issue(" ")
	assert.True(t, errors.IsValidationError(err))
}

func TestJWTTokenService_RejectsExpiredToken(t *testing.T) {
	svc := newTestService(t)
	svc.now = func() time.Time { return time.Now().Add(-20 * time.Minute) }

	token, err := svc.Issue("alice")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.IsAuthError(err))
	assert.Contains(t, err.Error(), "token has expired")
}

func TestJWTTokenService_RejectsWrongSecret(t *testing.T) {
	issuer := newTestService(t)
	verifier, err := NewJWTTokenService("another-signing-secret-value", 15*time.Minute)
	require.NoError(t, err)

	token, err := issuer.Issue("alice")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.True(t, errors.IsAuthError(err))
}

func TestJWTTokenService_RejectsMalformedToken(t *testing.T) {
	svc := newTestService(t)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.True(t, errors.IsAuthError(err), token)
	}
}

func TestJWTTokenService_RejectsUnexpectedAlgorithm(t *testing.T) {
	svc := newTestService(t)

	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.True(t, errors.IsAuthError(err))
}

func TestJWTTokenService_RejectsMissingSubjectOrExpiry(t *testing.T) {
	svc := newTestService(t)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(noSubject)
	assert.ErrorContains(t, err, "token has no subject")

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "alice",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(noExpiry)
	assert.ErrorContains(t, err, "token has no expiry")
}
