package youtube

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/GareevaAlice/yt-playlists-app/internal/core/ports/driven"
)

// tokenSourceAdapter bridges the engine's TokenProvider port to
// oauth2.TokenSource so the generated API client can pull tokens from it.
type tokenSourceAdapter struct {
	provider driven.TokenProvider
	ctx      context.Context
}

// NewTokenSource adapts a TokenProvider for use with
// option.WithTokenSource when creating an authorised service.
func NewTokenSource(ctx context.Context, provider driven.TokenProvider) oauth2.TokenSource {
	return &tokenSourceAdapter{provider: provider, ctx: ctx}
}

// Token implements oauth2.TokenSource.
func (t *tokenSourceAdapter) Token() (*oauth2.Token, error) {
	accessToken, err := t.provider.GetToken(t.ctx)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}, nil
}
