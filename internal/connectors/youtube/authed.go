package youtube

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/GareevaAlice/yt-playlists-app/internal/core/domain"
	"github.com/GareevaAlice/yt-playlists-app/internal/core/ports/driven"
)

// Ensure AuthedClient implements the interface.
var _ driven.PageSource = (*AuthedClient)(nil)

// AuthedClient is the OAuth page source. It reads playlists as the
// authenticated user and includes entries by owning-channel presence,
// which lets the user see their own unlisted and private videos.
type AuthedClient struct {
	svc     *youtube.Service
	limiter *RateLimiter
}

// NewAuthedClient creates a token-source backed page source.
func NewAuthedClient(ctx context.Context, ts oauth2.TokenSource, opts ...option.ClientOption) (*AuthedClient, error) {
	if ts == nil {
		return nil, fmt.Errorf("youtube: token source is required")
	}

	svc, err := youtube.NewService(ctx, append([]option.ClientOption{option.WithTokenSource(ts)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("youtube: create authorised service: %w", err)
	}

	return &AuthedClient{svc: svc, limiter: NewRateLimiter()}, nil
}

// Check is a no-op: the authenticated path has no pre-check and reports
// every failure through the paging loop instead.
func (c *AuthedClient) Check(_ context.Context, _ string) error {
	return nil
}

// Page fetches one PlaylistItems page with the snippet part. Any transport
// or authorisation failure carries domain.ErrAuthFetchFailed.
func (c *AuthedClient) Page(ctx context.Context, playlistID, pageToken string) (*driven.ItemPage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, wrapFetchErr(domain.ErrAuthFetchFailed, "list playlist items", err)
	}

	call := c.svc.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(playlistID).
		MaxResults(driven.MaxPageSize)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		recordIfRateLimited(c.limiter, err)
		return nil, wrapFetchErr(domain.ErrAuthFetchFailed, "list playlist items", err)
	}
	return pageFromAPI(resp), nil
}

// Include keeps entries the user can actually access.
func (c *AuthedClient) Include(item driven.Item) bool {
	return IncludeByOwner(item)
}
