package auth

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/diillson/buildops-audit-go/internal/domain/entity"
	"github.com/diillson/buildops-audit-go/internal/domain/repository"
	"github.com/diillson/buildops-audit-go/internal/shared/types"
)

// AuthRepositoryImpl exchanges client credentials at the BuildOps token endpoint.
type AuthRepositoryImpl struct {
	tokenURL   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewAuthRepository cria uma nova implementação do AuthRepository.
func NewAuthRepository(tokenURL string, httpClient *http.Client, logger *zap.Logger) repository.AuthRepository {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthRepositoryImpl{
		tokenURL:   tokenURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

type tokenRequest struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Authorize performs one token exchange and returns the session for the tenant.
func (r *AuthRepositoryImpl) Authorize(ctx context.Context, creds types.Credentials) (*entity.Session, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(tokenRequest{ClientID: creds.ClientID, ClientSecret: creds.ClientSecret})
	if err != nil {
		return nil, fmt.Errorf("encoding token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.tokenURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: token exchange failed: %v", types.ErrUnauthorized, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: token endpoint returned status %d", types.ErrUnauthorized, resp.StatusCode)
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("%w: invalid token response: %v", types.ErrUnauthorized, err)
	}

	session, err := entity.NewSession(token.TokenType, token.AccessToken, token.ExpiresIn, creds.TenantID)
	if err != nil {
		return nil, fmt.Errorf("authorization failed: %w", err)
	}

	r.logger.Info("authorized",
		zap.String("tenant_id", session.TenantID),
		zap.String("token_type", session.TokenType),
		zap.Int("expires_in", session.ExpiresIn),
	)
	return session, nil
}
