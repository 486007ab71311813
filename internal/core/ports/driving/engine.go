package driving

import (
	"context"

	"github.com/GareevaAlice/yt-playlists-app/internal/core/domain"
)

// PlaylistEngine is the single entry point the request layer drives:
// load a playlist, then query it repeatedly until another playlist is
// loaded. One engine instance holds at most one active playlist.
type PlaylistEngine interface {
	// Load fetches the playlist named by ref (raw ID or URL) and makes it
	// the active table. authenticated selects the OAuth fetch path.
	// On failure the previously active table is kept untouched.
	Load(ctx context.Context, ref string, authenticated bool) (*domain.Playlist, error)

	// Search evaluates a query against the active table.
	// Returns domain.ErrNoPlaylist before the first successful Load and
	// domain.ErrNoResults when the query matches nothing.
	Search(ctx context.Context, q domain.Query) (*domain.SearchResult, error)

	// ActivePlaylistID returns the ID of the last successfully loaded
	// playlist, or empty. The request layer uses it to skip refetching
	// the playlist it already holds.
	ActivePlaylistID() string

	// Playlist returns the active table, or nil.
	Playlist() *domain.Playlist
}
