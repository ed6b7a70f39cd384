package ports

import "time"

// TokenClaims is the verified content of a bearer credential
type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService signs and verifies bearer credentials
type TokenService interface {
	Issue(subject string) (string, error)
	Verify(token string) (*TokenClaims, error)
}
