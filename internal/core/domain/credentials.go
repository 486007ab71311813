package domain

import "time"

// Credentials is the OAuth credential bundle the session layer stores for
// an authenticated user. It carries everything needed to mint and refresh
// access tokens; the authorisation handshake that produces it is outside
// the engine.
type Credentials struct {
	// Token is the current bearer access token.
	Token string `json:"token"`

	// RefreshToken is used to obtain new access tokens.
	RefreshToken string `json:"refresh_token"`

	// TokenEndpoint is the provider's token URL used for refreshing.
	TokenEndpoint string `json:"token_uri"`

	// ClientID identifies the OAuth application.
	ClientID string `json:"client_id"`

	// ClientSecret authenticates the OAuth application.
	ClientSecret string `json:"client_secret"`

	// Scopes are the granted OAuth scopes.
	Scopes []string `json:"scopes"`

	// Expiry is when the access token expires. A zero Expiry means the
	// token is treated as valid until a request is rejected.
	Expiry time.Time `json:"expiry,omitempty"`
}

// IsExpired returns true if the access token has expired.
func (c *Credentials) IsExpired() bool {
	if c.Expiry.IsZero() {
		return false
	}
	return time.Now().After(c.Expiry)
}

// IsAuthenticated returns true if the bundle contains a usable token.
func (c *Credentials) IsAuthenticated() bool {
	return c != nil && (c.Token != "" || c.RefreshToken != "")
}

// CanRefresh returns true if the bundle carries everything needed to
// exchange the refresh token for a new access token.
func (c *Credentials) CanRefresh() bool {
	return c.RefreshToken != "" && c.TokenEndpoint != "" && c.ClientID != ""
}
