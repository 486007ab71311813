package driven

import (
	"context"

	"github.com/GareevaAlice/yt-playlists-app/internal/core/domain"
)

// SessionStore persists per-session state for the surrounding request
// layer: the OAuth credential bundle and the active-playlist marker.
// The engine core never touches it directly.
type SessionStore interface {
	// SaveCredentials stores the credential bundle for a session,
	// replacing any previous bundle.
	SaveCredentials(ctx context.Context, sessionID string, creds domain.Credentials) error

	// Credentials returns the stored bundle for a session.
	// Returns domain.ErrNotFound if the session has none.
	Credentials(ctx context.Context, sessionID string) (*domain.Credentials, error)

	// SaveActivePlaylist records the playlist ID a session last
	// successfully loaded.
	SaveActivePlaylist(ctx context.Context, sessionID, playlistID string) error

	// ActivePlaylist returns the playlist ID a session last loaded.
	// Returns domain.ErrNotFound if the session has none.
	ActivePlaylist(ctx context.Context, sessionID string) (string, error)

	// DeleteSession removes all state for a session.
	DeleteSession(ctx context.Context, sessionID string) error

	// Close releases resources.
	Close() error
}
