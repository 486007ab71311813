// Package sqlite provides a SQLite-backed implementation of the session
// store, for request layers that want sessions to survive a restart.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/GareevaAlice/yt-playlists-app/internal/core/domain"
	"github.com/GareevaAlice/yt-playlists-app/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore persists per-session credentials and the active-playlist
// marker in a SQLite database.
type SessionStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id              TEXT PRIMARY KEY,
	credentials     TEXT,
	active_playlist TEXT,
	updated_at      TIMESTAMP NOT NULL
);`

// Open opens (creating if needed) a session database at path.
// Use ":memory:" for an ephemeral database.
func Open(path string) (*SessionStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: create schema: %w", err)
	}

	return &SessionStore{db: db}, nil
}

// SaveCredentials implements driven.SessionStore.
func (s *SessionStore) SaveCredentials(ctx context.Context, sessionID string, creds domain.Credentials) error {
	payload, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("sqlite: encode credentials: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, credentials, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET credentials = excluded.credentials, updated_at = excluded.updated_at
	`, sessionID, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("sqlite: save credentials: %w", err)
	}
	return nil
}

// Credentials implements driven.SessionStore.
func (s *SessionStore) Credentials(ctx context.Context, sessionID string) (*domain.Credentials, error) {
	var payload sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT credentials FROM sessions WHERE id = ?`, sessionID,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: query credentials: %w", err)
	}
	if !payload.Valid {
		return nil, domain.ErrNotFound
	}

	var creds domain.Credentials
	if err := json.Unmarshal([]byte(payload.String), &creds); err != nil {
		return nil, fmt.Errorf("sqlite: decode credentials: %w", err)
	}
	return &creds, nil
}

// SaveActivePlaylist implements driven.SessionStore.
func (s *SessionStore) SaveActivePlaylist(ctx context.Context, sessionID, playlistID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, active_playlist, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET active_playlist = excluded.active_playlist, updated_at = excluded.updated_at
	`, sessionID, playlistID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("sqlite: save active playlist: %w", err)
	}
	return nil
}

// ActivePlaylist implements driven.SessionStore.
func (s *SessionStore) ActivePlaylist(ctx context.Context, sessionID string) (string, error) {
	var playlistID sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT active_playlist FROM sessions WHERE id = ?`, sessionID,
	).Scan(&playlistID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("sqlite: query active playlist: %w", err)
	}
	if !playlistID.Valid {
		return "", domain.ErrNotFound
	}
	return playlistID.String, nil
}

// DeleteSession implements driven.SessionStore.
func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, sessionID); err != nil {
		return fmt.Errorf("sqlite: delete session: %w", err)
	}
	return nil
}

// Close implements driven.SessionStore.
func (s *SessionStore) Close() error {
	return s.db.Close()
}
