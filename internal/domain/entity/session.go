package entity

import (
	"fmt"

	"github.com/diillson/buildops-audit-go/internal/shared/types"
)

// Session is the result of one token exchange. It is never mutated after
// construction and is shared by every concurrent request of a run.
type Session struct {
	TokenType   string
	AccessToken string
	ExpiresIn   int
	TenantID    string
}

// NewSession builds a session, rejecting empty token data.
func NewSession(tokenType, accessToken string, expiresIn int, tenantID string) (*Session, error) {
	if tokenType == "" || accessToken == "" {
		return nil, fmt.Errorf("%w: missing token", types.ErrUnauthorized)
	}
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant ID not set", types.ErrUnauthorized)
	}
	return &Session{
		TokenType:   tokenType,
		AccessToken: accessToken,
		ExpiresIn:   expiresIn,
		TenantID:    tenantID,
	}, nil
}

// AuthHeader returns the value for the Authorization header.
func (s *Session) AuthHeader() (string, error) {
	if s == nil || s.AccessToken == "" || s.TokenType == "" {
		return "", fmt.Errorf("%w: authorize first", types.ErrUnauthorized)
	}
	return s.TokenType + " " + s.AccessToken, nil
}

// Tenant returns the tenant sent on every request.
func (s *Session) Tenant() (string, error) {
	if s == nil || s.TenantID == "" {
		return "", fmt.Errorf("%w: tenant ID not set", types.ErrUnauthorized)
	}
	return s.TenantID, nil
}
