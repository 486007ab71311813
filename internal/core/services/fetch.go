package services

import (
	"context"

	"github.com/GareevaAlice/yt-playlists-app/internal/core/domain"
	"github.com/GareevaAlice/yt-playlists-app/internal/core/ports/driven"
	"github.com/GareevaAlice/yt-playlists-app/internal/logger"
)

// FetchService walks a remote playlist to exhaustion and builds the video
// table. The page loop is shared between the public and the authenticated
// path; everything path-specific lives behind driven.PageSource.
type FetchService struct{}

// NewFetchService creates a new fetch service.
func NewFetchService() *FetchService {
	return &FetchService{}
}

// accumulator collects videos across page iterations. The position counter
// spans the whole fetch: every scanned item advances it, whether or not the
// item ends up in the table.
type accumulator struct {
	playlistID string
	position   int
	videos     []domain.Video
}

// scan advances the position counter and appends the item when included.
func (a *accumulator) scan(item driven.Item, include bool) {
	a.position++
	if !include {
		return
	}
	a.videos = append(a.videos, domain.NewVideo(
		a.position,
		item.VideoID,
		item.Title,
		item.Description,
		item.OwnerChannelID,
		item.OwnerChannelTitle,
	))
}

func (a *accumulator) playlist() *domain.Playlist {
	return &domain.Playlist{ID: a.playlistID, Videos: a.videos}
}

// Fetch produces the complete video table for a playlist, following the
// source's next-page cursor until no cursor remains. A failed page leaves
// no cursor to continue from, so the whole fetch fails and everything
// accumulated so far is discarded; partial tables are never returned.
func (f *FetchService) Fetch(
	ctx context.Context, playlistID string, src driven.PageSource,
) (*domain.Playlist, error) {
	logger.Section("Playlist Fetch")
	logger.Debug("Playlist: %q", playlistID)

	if err := src.Check(ctx, playlistID); err != nil {
		return nil, err
	}

	acc := &accumulator{playlistID: playlistID}
	pageToken := ""
	pages := 0
	for {
		page, err := src.Page(ctx, playlistID, pageToken)
		if err != nil {
			logger.Warn("Page %d failed, discarding %d accumulated videos", pages+1, len(acc.videos))
			return nil, err
		}
		pages++
		for _, item := range page.Items {
			acc.scan(item, src.Include(item))
		}
		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	logger.Info("Fetched %d videos (%d entries scanned) across %d pages",
		len(acc.videos), acc.position, pages)
	return acc.playlist(), nil
}
