// Package session wires one playlist engine per request-layer session.
//
// The request layer hands every call a session ID; the manager lazily
// builds that session's engine from the configured key files and any
// OAuth credentials the session store holds, and keeps the session's
// active-playlist marker in the store so a loaded playlist is not
// refetched needlessly.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"google.golang.org/api/option"

	"github.com/GareevaAlice/yt-playlists-app/internal/adapters/driven/oauth"
	"github.com/GareevaAlice/yt-playlists-app/internal/connectors/youtube"
	"github.com/GareevaAlice/yt-playlists-app/internal/core/domain"
	"github.com/GareevaAlice/yt-playlists-app/internal/core/ports/driven"
	"github.com/GareevaAlice/yt-playlists-app/internal/core/services"
	"github.com/GareevaAlice/yt-playlists-app/internal/logger"
	"github.com/GareevaAlice/yt-playlists-app/internal/translate"
	"github.com/GareevaAlice/yt-playlists-app/internal/translate/detectlanguage"
	"github.com/GareevaAlice/yt-playlists-app/internal/translate/mymemory"
)

// Config holds the collaborators and keys the manager builds engines from.
type Config struct {
	// Store keeps per-session credentials and the active-playlist marker.
	Store driven.SessionStore

	// YouTubeKey returns the current YouTube Data API key.
	// Typically file.KeyFile.Value so key rotation is picked up.
	YouTubeKey func() string

	// DetectLanguageKey returns the current Detect Language API key.
	DetectLanguageKey func() string

	// YouTubeOptions are extra client options for the YouTube services.
	// Tests use them to point the clients at a fake endpoint.
	YouTubeOptions []option.ClientOption

	// DetectLanguageBaseURL and MyMemoryBaseURL override the translator
	// endpoints. Empty means the real services.
	DetectLanguageBaseURL string
	MyMemoryBaseURL       string
}

// Manager builds and caches one engine per session.
type Manager struct {
	cfg Config

	mu      sync.Mutex
	engines map[string]*services.Engine
}

// NewManager creates a session manager.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("session: store is required")
	}
	if cfg.YouTubeKey == nil {
		return nil, fmt.Errorf("session: YouTube key source is required")
	}
	if cfg.DetectLanguageKey == nil {
		return nil, fmt.Errorf("session: Detect Language key source is required")
	}
	return &Manager{cfg: cfg, engines: make(map[string]*services.Engine)}, nil
}

// Engine returns the session's engine, building it on first use.
func (m *Manager) Engine(ctx context.Context, sessionID string) (*services.Engine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.engines[sessionID]; ok {
		return e, nil
	}

	e, err := m.buildEngine(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	m.engines[sessionID] = e
	return e, nil
}

// Invalidate drops the session's cached engine. The request layer calls
// this after storing fresh credentials so the next call rebuilds the
// engine with the authenticated fetch path available.
func (m *Manager) Invalidate(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.engines, sessionID)
}

// Load fetches a playlist into the session's engine. A reference that
// resolves to the playlist the engine already holds is served from the
// current table without refetching.
func (m *Manager) Load(ctx context.Context, sessionID, ref string, authenticated bool) (*domain.Playlist, error) {
	e, err := m.Engine(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	playlistID := domain.PlaylistIDFromRef(ref)
	if playlistID != "" && e.ActivePlaylistID() == playlistID {
		logger.Debug("Session %s already holds playlist %q", sessionID, playlistID)
		return e.Playlist(), nil
	}

	playlist, err := e.Load(ctx, ref, authenticated)
	if err != nil {
		return nil, err
	}
	if err := m.cfg.Store.SaveActivePlaylist(ctx, sessionID, playlist.ID); err != nil {
		logger.Warn("Saving active playlist marker failed: %v", err)
	}
	return playlist, nil
}

// Search evaluates a query against the session's active playlist.
func (m *Manager) Search(ctx context.Context, sessionID string, q domain.Query) (*domain.SearchResult, error) {
	e, err := m.Engine(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return e.Search(ctx, q)
}

func (m *Manager) buildEngine(ctx context.Context, sessionID string) (*services.Engine, error) {
	public, err := youtube.NewClient(ctx, m.cfg.YouTubeKey(), m.cfg.YouTubeOptions...)
	if err != nil {
		return nil, err
	}

	var authed driven.PageSource
	creds, err := m.cfg.Store.Credentials(ctx, sessionID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		// Unauthenticated session; only the public path is available.
	case err != nil:
		return nil, fmt.Errorf("session: load credentials: %w", err)
	case creds.IsAuthenticated():
		provider := oauth.NewTokenProvider(*creds)
		ts := youtube.NewTokenSource(ctx, provider)
		authed, err = youtube.NewAuthedClient(ctx, ts, m.cfg.YouTubeOptions...)
		if err != nil {
			return nil, err
		}
	}

	detector, err := detectlanguage.NewClient(detectlanguage.Config{
		APIKey:  m.cfg.DetectLanguageKey(),
		BaseURL: m.cfg.DetectLanguageBaseURL,
	})
	if err != nil {
		return nil, err
	}
	provider := mymemory.NewClient(mymemory.Config{BaseURL: m.cfg.MyMemoryBaseURL})
	translator := translate.NewService(detector, provider)

	return services.NewEngine(
		services.NewFetchService(),
		services.NewSearchService(translator),
		public,
		authed,
	), nil
}
