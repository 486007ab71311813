// Package memory provides an in-memory implementation of driven port
// interfaces, primarily for single-process deployments and tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/GareevaAlice/yt-playlists-app/internal/core/domain"
	"github.com/GareevaAlice/yt-playlists-app/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

type sessionState struct {
	creds          *domain.Credentials
	activePlaylist string
	hasPlaylist    bool
}

// SessionStore keeps per-session credentials and the active-playlist
// marker in process memory. State is lost on restart, which matches the
// engine's no-persistence stance.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionState
}

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*sessionState)}
}

// NewSessionID mints a fresh session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

func (s *SessionStore) session(id string) *sessionState {
	if st, ok := s.sessions[id]; ok {
		return st
	}
	st := &sessionState{}
	s.sessions[id] = st
	return st
}

// SaveCredentials implements driven.SessionStore.
func (s *SessionStore) SaveCredentials(_ context.Context, sessionID string, creds domain.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session(sessionID).creds = &creds
	return nil
}

// Credentials implements driven.SessionStore.
func (s *SessionStore) Credentials(_ context.Context, sessionID string) (*domain.Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.sessions[sessionID]
	if !ok || st.creds == nil {
		return nil, domain.ErrNotFound
	}
	creds := *st.creds
	return &creds, nil
}

// SaveActivePlaylist implements driven.SessionStore.
func (s *SessionStore) SaveActivePlaylist(_ context.Context, sessionID, playlistID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.session(sessionID)
	st.activePlaylist = playlistID
	st.hasPlaylist = true
	return nil
}

// ActivePlaylist implements driven.SessionStore.
func (s *SessionStore) ActivePlaylist(_ context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.sessions[sessionID]
	if !ok || !st.hasPlaylist {
		return "", domain.ErrNotFound
	}
	return st.activePlaylist, nil
}

// DeleteSession implements driven.SessionStore.
func (s *SessionStore) DeleteSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Close implements driven.SessionStore.
func (s *SessionStore) Close() error {
	return nil
}
