package auth

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mocks "textgateway.app/internal/mocks"
	"textgateway.app/internal/ports"
	"textgateway.app/pkg/errors"
)

func newGate(t *testing.T) (*Gate, *mocks.TokenService) {
	tokens := mocks.NewTokenService(t)
	gate, err := NewGate(GateDependencies{
		Tokens: tokens,
		Logger: mocks.NewLoggerAllowingAll(t),
	})
	require.NoError(t, err)
	return gate, tokens
}

func TestNewGate_MissingDependencies(t *testing.T) {
	_, err := NewGate(GateDependencies{})
	assert.True(t, errors.IsValidationError(err))
}

func TestGate_Authenticate_Success(t *testing.T) {
	gate, tokens := newGate(t)
	tokens.EXPECT().Verify("good-token").Return(&ports.TokenClaims{
		Subject:   "alice",
		ExpiresAt: time.Now().Add(time.Minute),
	}, nil)

	identity, err := gate.Authenticate("Bearer good-token")

	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Subject)
}

func TestGate_Authenticate_RejectsHeaderShapes(t *testing.T) {
	gate, _ := newGate(t)

	headers := []string{"", "   ", "good-token", "Basic dXNlcjpwYXNz", "Bearer", "Bearer    "}
	for _, header := range headers {
		t.Run(fmt.Sprintf("%q", header), func(t *testing.T) {
			_, err := gate.Authenticate(header)
			assert.True(t, errors.IsAuthError(err))
		})
	}
}

func TestGate_Authenticate_SchemeIsCaseInsensitive(t *testing.T) {
	gate, tokens := newGate(t)
	tokens.EXPECT().Verify("tok").Return(&ports.TokenClaims{Subject: "bob"}, nil)

	identity, err := gate.Authenticate("bearer tok")

	require.NoError(t, err)
	assert.Equal(t, "bob", identity.Subject)
}

func TestGate_Authenticate_VerifyFailure(t *testing.T) {
	gate, tokens := newGate(t)
	tokens.EXPECT().Verify("expired").Return(nil, errors.NewAuthError("token has expired", nil))

	_, err := gate.Authenticate("Bearer expired")

	assert.True(t, errors.IsAuthError(err))
	assert.Contains(t, err.Error(), "token has expired")
}

func TestGate_Authenticate_UntypedVerifyFailureBecomesAuthError(t *testing.T) {
	gate, tokens := newGate(t)
	tokens.EXPECT().Verify("broken").Return(nil, fmt.Errorf("boom"))

	_, err := gate.Authenticate("Bearer broken")

	assert.True(t, errors.IsAuthError(err))
}

func TestGate_Authenticate_EmptySubject(t *testing.T) {
	gate, tokens := newGate(t)
	tokens.EXPECT().Verify("anon").Return(&ports.TokenClaims{Subject: " "}, nil)

	_, err := gate.Authenticate("Bearer anon")

	assert.True(t, errors.IsAuthError(err))
}

func TestGate_IssueToken(t *testing.T) {
	gate, tokens := newGate(t)
	tokens.EXPECT().Issue("alice").Return("signed", nil)

	token, err := gate.IssueToken("alice")

	require.NoError(t, err)
	assert.Equal(t, "signed", token)
}
