package auth

import (
	"strings"

	"textgateway.app/internal/ports"
	"textgateway.app/pkg/errors"
)

const bearerScheme = "bearer"

// Identity is the verified caller behind a bearer credential
type Identity struct {
	Subject string
}

// Gate turns an Authorization header into a caller identity
type Gate struct {
	tokens ports.TokenService
	logger ports.Logger
}

type GateDependencies struct {
	Tokens ports.TokenService
	Logger ports.Logger
}

func NewGate(deps GateDependencies) (*Gate, error) {
	if deps.Tokens == nil {
		return nil, errors.NewValidationError("token service is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	return &Gate{tokens: deps.Tokens, logger: deps.Logger}, nil
}

// Authenticate validates "Bearer <token>" and returns the token subject
func (g *Gate) Authenticate(authorization string) (Identity, error) {
	token, err := ExtractBearerToken(authorization)
	if err != nil {
		return Identity{}, err
	}

	claims, err := g.tokens.Verify(token)
	if err != nil {
		g.logger.Debug("Bearer token rejected", ports.F("error", err))
		if !errors.IsAuthError(err) {
			err = errors.NewAuthError("could not validate credentials", err)
		}
		return Identity{}, err
	}

	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return Identity{}, errors.NewAuthError("token has no subject", nil)
	}
	return Identity{Subject: subject}, nil
}

// IssueToken signs a credential for the identity
func (g *Gate) IssueToken(subject string) (string, error) {
	return g.tokens.Issue(subject)
}

// ExtractBearerToken splits an Authorization header value
func ExtractBearerToken(authorization string) (string, error) {
	authorization = strings.TrimSpace(authorization)
	if authorization == "" {
		return "", errors.NewAuthError("not authenticated", nil)
	}

	scheme, token, found := strings.Cut(authorization, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", errors.NewAuthError("invalid authentication scheme", nil)
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", errors.NewAuthError("not authenticated", nil)
	}
	return token, nil
}
