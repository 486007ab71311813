// Package detectlanguage provides a client for the Detect Language API
// (https://detectlanguage.com). The free tier allows 1000 words per day,
// authenticated with a bearer API key.
package detectlanguage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/GareevaAlice/yt-playlists-app/internal/core/domain"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://ws.detectlanguage.com/0.2"
	DefaultTimeout = 15 * time.Second
)

// Config holds configuration for the detection client.
type Config struct {
	// APIKey is the Detect Language API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://ws.detectlanguage.com/0.2).
	BaseURL string

	// Timeout is the request timeout (default: 15s).
	Timeout time.Duration
}

// Client detects the language of short texts.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// detectRequest is the /detect request format.
type detectRequest struct {
	Query string `json:"q"`
}

// detectResponse is the /detect response format.
type detectResponse struct {
	Data struct {
		Detections []struct {
			Language string `json:"language"`
		} `json:"detections"`
	} `json:"data"`
}

// NewClient creates a new detection client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("detectlanguage: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}, nil
}

// Detect returns the language code of the first detection for the text.
// An unreachable or failing service maps to domain.ErrLanguageUndetermined;
// a response without detections maps to domain.ErrTranslationNotFound.
func (c *Client) Detect(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(detectRequest{Query: text})
	if err != nil {
		return "", fmt.Errorf("detectlanguage: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/detect", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("detectlanguage: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("detectlanguage: %w: %w", domain.ErrLanguageUndetermined, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("detectlanguage: %w: status %d", domain.ErrLanguageUndetermined, resp.StatusCode)
	}

	var parsed detectResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("detectlanguage: %w: decode response: %w", domain.ErrLanguageUndetermined, err)
	}

	if len(parsed.Data.Detections) == 0 {
		return "", fmt.Errorf("detectlanguage: %w", domain.ErrTranslationNotFound)
	}
	return parsed.Data.Detections[0].Language, nil
}
