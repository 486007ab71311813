package youtube

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/GareevaAlice/yt-playlists-app/internal/core/domain"
	"github.com/GareevaAlice/yt-playlists-app/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.PageSource = (*Client)(nil)

// Client is the unauthenticated page source. It reads public playlists
// with an API key and includes entries by privacy status.
type Client struct {
	svc     *youtube.Service
	limiter *RateLimiter
}

// NewClient creates an API-key backed page source. Extra options are
// appended after the key, so tests can point the client at a fake
// endpoint.
func NewClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube: API key is required")
	}

	svc, err := youtube.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("youtube: create service: %w", err)
	}

	return &Client{svc: svc, limiter: NewRateLimiter()}, nil
}

// Check verifies the playlist exists and is visible through a status-only
// Playlists lookup. A non-success response or zero matching results means
// the playlist is gone or private; only a transport failure that produced
// no response at all is reported as connectivity trouble.
func (c *Client) Check(ctx context.Context, playlistID string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("youtube: check playlist: %w", err)
	}

	resp, err := c.svc.Playlists.List([]string{"status"}).
		Id(playlistID).
		Context(ctx).
		Do()
	if err != nil {
		recordIfRateLimited(c.limiter, err)
		if _, ok := isAPIError(err); ok {
			return fmt.Errorf("youtube: check playlist %q: %w", playlistID, domain.ErrPlaylistUnavailable)
		}
		return fmt.Errorf("youtube: check playlist %q: %w", playlistID, err)
	}
	if resp.PageInfo == nil || resp.PageInfo.TotalResults == 0 {
		return fmt.Errorf("youtube: check playlist %q: %w", playlistID, domain.ErrPlaylistUnavailable)
	}
	return nil
}

// Page fetches one PlaylistItems page with snippet and status parts.
// Any failure carries domain.ErrFetchIncomplete: without this page's
// cursor no further progress is possible and the fetch must be abandoned.
func (c *Client) Page(ctx context.Context, playlistID, pageToken string) (*driven.ItemPage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, wrapFetchErr(domain.ErrFetchIncomplete, "list playlist items", err)
	}

	call := c.svc.PlaylistItems.List([]string{"snippet", "status"}).
		PlaylistId(playlistID).
		MaxResults(driven.MaxPageSize)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		recordIfRateLimited(c.limiter, err)
		return nil, wrapFetchErr(domain.ErrFetchIncomplete, "list playlist items", err)
	}
	return pageFromAPI(resp), nil
}

// Include keeps public and unlisted entries.
func (c *Client) Include(item driven.Item) bool {
	return IncludeByStatus(item)
}
