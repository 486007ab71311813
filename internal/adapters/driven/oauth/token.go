// Package oauth provides token refresh for the authenticated fetch path.
//
// The authorisation handshake that produces the initial credential bundle
// happens in the excluded request layer; this package only keeps the
// bundle's access token fresh.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/GareevaAlice/yt-playlists-app/internal/core/domain"
	"github.com/GareevaAlice/yt-playlists-app/internal/core/ports/driven"
	"github.com/GareevaAlice/yt-playlists-app/internal/logger"
)

// TokenResponse holds the response from a token refresh.
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int       `json:"expires_in"`
	Expiry       time.Time `json:"-"`
}

// RefreshAccessToken exchanges a refresh token for a new access token.
func RefreshAccessToken(
	ctx context.Context,
	tokenURL, clientID, clientSecret, refreshToken string,
) (*TokenResponse, error) {
	data := url.Values{}
	data.Set("grant_type", "refresh_token")
	data.Set("client_id", clientID)
	data.Set("client_secret", clientSecret)
	data.Set("refresh_token", refreshToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error       string `json:"error"`
			Description string `json:"error_description"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("token error: %s - %s", errResp.Error, errResp.Description)
		}
		return nil, fmt.Errorf("token request failed with status %d", resp.StatusCode)
	}

	var tokenResp TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}

	if tokenResp.ExpiresIn > 0 {
		tokenResp.Expiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	}

	return &tokenResp, nil
}

// Ensure TokenProvider implements the port.
var _ driven.TokenProvider = (*TokenProvider)(nil)

// TokenProvider serves access tokens from a credential bundle, refreshing
// through the bundle's token endpoint when the stored token has expired.
type TokenProvider struct {
	mu    sync.Mutex
	creds domain.Credentials
}

// NewTokenProvider creates a provider over a credential bundle.
func NewTokenProvider(creds domain.Credentials) *TokenProvider {
	return &TokenProvider{creds: creds}
}

// GetToken implements driven.TokenProvider.
func (p *TokenProvider) GetToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.creds.Token != "" && !p.creds.IsExpired() {
		return p.creds.Token, nil
	}
	if !p.creds.CanRefresh() {
		return "", fmt.Errorf("oauth: no usable token and refresh impossible: %w", domain.ErrAuthRequired)
	}

	logger.Debug("Refreshing access token via %s", p.creds.TokenEndpoint)
	resp, err := RefreshAccessToken(ctx, p.creds.TokenEndpoint, p.creds.ClientID, p.creds.ClientSecret, p.creds.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("oauth: refresh: %w", err)
	}

	p.creds.Token = resp.AccessToken
	if resp.RefreshToken != "" {
		p.creds.RefreshToken = resp.RefreshToken
	}
	p.creds.Expiry = resp.Expiry
	return p.creds.Token, nil
}

// IsAuthenticated implements driven.TokenProvider.
func (p *TokenProvider) IsAuthenticated() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.creds.IsAuthenticated()
}

// Credentials returns the current bundle, including any refreshed tokens,
// so the session layer can store it back.
func (p *TokenProvider) Credentials() domain.Credentials {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.creds
}
