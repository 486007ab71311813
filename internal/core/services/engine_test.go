package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GareevaAlice/yt-playlists-app/internal/core/domain"
	"github.com/GareevaAlice/yt-playlists-app/internal/core/ports/driven"
)

func newTestEngine(public, authed driven.PageSource) *Engine {
	return NewEngine(NewFetchService(), NewSearchService(&mockTranslator{}), public, authed)
}

func TestEngineLoadResolvesReference(t *testing.T) {
	src := &fakePageSource{
		include: includePublic,
		pages:   [][]driven.Item{{publicItem("a", "First", "public")}},
	}
	e := newTestEngine(src, nil)

	playlist, err := e.Load(context.Background(), "https://www.youtube.com/playlist?list=PLxyz", false)
	require.NoError(t, err)

	assert.Equal(t, "PLxyz", playlist.ID)
	assert.Equal(t, "PLxyz", e.ActivePlaylistID())
	assert.Same(t, playlist, e.Playlist())
}

func TestEngineFailedLoadKeepsPreviousTable(t *testing.T) {
	good := &fakePageSource{
		include: includePublic,
		pages:   [][]driven.Item{{publicItem("a", "First", "public")}},
	}
	e := newTestEngine(good, nil)

	_, err := e.Load(context.Background(), "PLold", false)
	require.NoError(t, err)

	good.failPage = 1
	good.pageErr = fmt.Errorf("boom: %w", domain.ErrFetchIncomplete)

	_, err = e.Load(context.Background(), "PLnew", false)
	assert.ErrorIs(t, err, domain.ErrFetchIncomplete)

	assert.Equal(t, "PLold", e.ActivePlaylistID(), "marker only moves on full success")
	require.NotNil(t, e.Playlist())
	assert.Equal(t, "PLold", e.Playlist().ID)
}

func TestEngineSearchBeforeLoad(t *testing.T) {
	e := newTestEngine(&fakePageSource{}, nil)

	res, err := e.Search(context.Background(), domain.Query{Match: domain.MatchVerbatim})
	assert.ErrorIs(t, err, domain.ErrNoPlaylist)
	assert.Nil(t, res)
}

func TestEngineSearchNoResults(t *testing.T) {
	src := &fakePageSource{
		include: includePublic,
		pages:   [][]driven.Item{{publicItem("a", "Some title", "public")}},
	}
	e := newTestEngine(src, nil)

	_, err := e.Load(context.Background(), "PL1", false)
	require.NoError(t, err)

	res, err := e.Search(context.Background(), domain.Query{
		Keywords: "nothing matches this",
		Match:    domain.MatchVerbatim,
	})
	assert.ErrorIs(t, err, domain.ErrNoResults)
	assert.Nil(t, res)

	res, err = e.Search(context.Background(), domain.Query{Match: domain.MatchVerbatim})
	require.NoError(t, err)
	assert.Len(t, res.Videos, 1)
}

func TestEngineAuthenticatedWithoutCredentials(t *testing.T) {
	e := newTestEngine(&fakePageSource{}, nil)

	_, err := e.Load(context.Background(), "PL1", true)
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestEngineAuthenticatedPathSelection(t *testing.T) {
	public := &fakePageSource{
		include: includePublic,
		pages:   [][]driven.Item{{publicItem("a", "Public copy", "public")}},
	}
	authed := &fakePageSource{
		include: includeOwned,
		pages: [][]driven.Item{{
			{VideoID: "b", Title: "Owned copy", OwnerChannelID: "chan-b", OwnerChannelTitle: "Me"},
		}},
	}
	e := newTestEngine(public, authed)

	playlist, err := e.Load(context.Background(), "PL1", true)
	require.NoError(t, err)

	require.Len(t, playlist.Videos, 1)
	assert.Equal(t, "Owned copy", playlist.Videos[0].Title)
	assert.Zero(t, public.pageCalls)
}
