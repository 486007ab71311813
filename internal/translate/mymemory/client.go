// Package mymemory provides a client for the MyMemory translation API
// (https://mymemory.translated.net/doc/spec.php). Anonymous use is free
// up to 1000 words per day and needs no API key.
package mymemory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/GareevaAlice/yt-playlists-app/internal/core/domain"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.mymemory.translated.net"
	DefaultTimeout = 15 * time.Second
)

// Config holds configuration for the translation client.
type Config struct {
	// BaseURL is the API base URL (default: https://api.mymemory.translated.net).
	BaseURL string

	// Timeout is the request timeout (default: 15s).
	Timeout time.Duration
}

// Client translates short texts between a fixed language pair.
type Client struct {
	client  *http.Client
	baseURL string
}

// translateResponse is the /get response format.
type translateResponse struct {
	Matches []struct {
		Translation string `json:"translation"`
	} `json:"matches"`
}

// NewClient creates a new translation client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
	}
}

// Translate returns the top translation candidate for the text, where
// langpair names the direction as "source|target" (e.g. "ru|en").
// An unreachable or failing service maps to domain.ErrTranslationUnavailable;
// a response without candidates maps to domain.ErrTranslationNotFound.
func (c *Client) Translate(ctx context.Context, text, langpair string) (string, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", langpair)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/get?"+params.Encode(), http.NoBody)
	if err != nil {
		return "", fmt.Errorf("mymemory: create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("mymemory: %w: %w", domain.ErrTranslationUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mymemory: %w: status %d", domain.ErrTranslationUnavailable, resp.StatusCode)
	}

	var parsed translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("mymemory: %w: decode response: %w", domain.ErrTranslationUnavailable, err)
	}

	if len(parsed.Matches) == 0 {
		return "", fmt.Errorf("mymemory: %w", domain.ErrTranslationNotFound)
	}
	return parsed.Matches[0].Translation, nil
}
