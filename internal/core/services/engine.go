package services

import (
	"context"
	"sync"

	"github.com/GareevaAlice/yt-playlists-app/internal/core/domain"
	"github.com/GareevaAlice/yt-playlists-app/internal/core/ports/driven"
	"github.com/GareevaAlice/yt-playlists-app/internal/core/ports/driving"
	"github.com/GareevaAlice/yt-playlists-app/internal/logger"
)

// Ensure Engine implements the interface.
var _ driving.PlaylistEngine = (*Engine)(nil)

// Engine composes the fetcher and the searcher around a single active
// playlist table. The table and the active-playlist marker follow a
// single-writer rule: only Load replaces them, and only after a fetch
// fully succeeds. Searches share the table read-only; a fetch in progress
// excludes concurrent queries.
type Engine struct {
	fetcher  *FetchService
	searcher *SearchService

	// public serves unauthenticated fetches, authed the OAuth path.
	// authed may be nil when no credentials are configured.
	public driven.PageSource
	authed driven.PageSource

	mu       sync.RWMutex
	playlist *domain.Playlist
	activeID string
}

// NewEngine creates an engine over the two fetch paths.
// authed may be nil; authenticated loads then fail with ErrAuthRequired.
func NewEngine(fetcher *FetchService, searcher *SearchService, public, authed driven.PageSource) *Engine {
	return &Engine{
		fetcher:  fetcher,
		searcher: searcher,
		public:   public,
		authed:   authed,
	}
}

// Load fetches the playlist named by ref and swaps it in as the active
// table. On any failure the previous table and marker stay untouched.
func (e *Engine) Load(ctx context.Context, ref string, authenticated bool) (*domain.Playlist, error) {
	playlistID := domain.PlaylistIDFromRef(ref)

	src := e.public
	if authenticated {
		if e.authed == nil {
			return nil, domain.ErrAuthRequired
		}
		src = e.authed
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	playlist, err := e.fetcher.Fetch(ctx, playlistID, src)
	if err != nil {
		return nil, err
	}

	e.playlist = playlist
	e.activeID = playlistID
	logger.Info("Active playlist is now %q (%d videos)", playlistID, playlist.Len())
	return playlist, nil
}

// Search evaluates a query against the active table. A query matching zero
// videos returns domain.ErrNoResults; that policy lives here so the matcher
// itself stays composable.
func (e *Engine) Search(ctx context.Context, q domain.Query) (*domain.SearchResult, error) {
	e.mu.RLock()
	playlist := e.playlist
	e.mu.RUnlock()

	if playlist == nil {
		return nil, domain.ErrNoPlaylist
	}

	result, err := e.searcher.Search(ctx, playlist, q)
	if err != nil {
		return nil, err
	}
	if len(result.Videos) == 0 {
		return nil, domain.ErrNoResults
	}
	return result, nil
}

// ActivePlaylistID returns the ID of the last successfully loaded playlist.
func (e *Engine) ActivePlaylistID() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.activeID
}

// Playlist returns the active table, or nil before the first Load.
func (e *Engine) Playlist() *domain.Playlist {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.playlist
}
