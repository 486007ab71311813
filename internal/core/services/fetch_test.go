package services

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GareevaAlice/yt-playlists-app/internal/core/domain"
	"github.com/GareevaAlice/yt-playlists-app/internal/core/ports/driven"
)

// --- Mock implementations ---

// fakePageSource serves a fixed sequence of pages. Page i hands out the
// token for page i+1, mirroring the remote source's cursor behaviour.
type fakePageSource struct {
	pages     [][]driven.Item
	include   func(driven.Item) bool
	checkErr  error
	failPage  int // 1-based page index that fails; 0 means never
	pageErr   error
	pageCalls int
}

func (f *fakePageSource) Check(_ context.Context, _ string) error {
	return f.checkErr
}

func (f *fakePageSource) Page(_ context.Context, _ string, pageToken string) (*driven.ItemPage, error) {
	f.pageCalls++

	idx := 0
	if pageToken != "" {
		i, err := strconv.Atoi(pageToken)
		if err != nil {
			return nil, fmt.Errorf("fake: bad token %q", pageToken)
		}
		idx = i
	}
	if f.failPage != 0 && idx+1 == f.failPage {
		return nil, f.pageErr
	}

	page := &driven.ItemPage{Items: f.pages[idx]}
	if idx+1 < len(f.pages) {
		page.NextPageToken = strconv.Itoa(idx + 1)
	}
	return page, nil
}

func (f *fakePageSource) Include(item driven.Item) bool {
	if f.include == nil {
		return true
	}
	return f.include(item)
}

func includePublic(item driven.Item) bool {
	return item.PrivacyStatus == "public" || item.PrivacyStatus == "unlisted"
}

func includeOwned(item driven.Item) bool {
	return item.OwnerChannelID != ""
}

func publicItem(id, title, status string) driven.Item {
	return driven.Item{
		VideoID:           id,
		Title:             title,
		OwnerChannelID:    "chan-" + id,
		OwnerChannelTitle: "Author of " + id,
		PrivacyStatus:     status,
	}
}

// --- Tests ---

func TestFetchCompleteness(t *testing.T) {
	// Six entries across two pages with mixed visibility. The table must
	// hold exactly the public/unlisted ones, in order, positioned by their
	// 1-based rank among all scanned entries.
	src := &fakePageSource{
		include: includePublic,
		pages: [][]driven.Item{
			{
				publicItem("a", "First", "public"),
				publicItem("b", "Hidden", "private"),
				publicItem("c", "Third", "unlisted"),
			},
			{
				publicItem("d", "Gone", "private"),
				publicItem("e", "Fifth", "public"),
				publicItem("f", "Sixth", "public"),
			},
		},
	}

	f := NewFetchService()
	playlist, err := f.Fetch(context.Background(), "PL1", src)
	require.NoError(t, err)
	require.NotNil(t, playlist)

	assert.Equal(t, "PL1", playlist.ID)
	require.Len(t, playlist.Videos, 4)

	positions := make([]int, 0, len(playlist.Videos))
	titles := make([]string, 0, len(playlist.Videos))
	for _, v := range playlist.Videos {
		positions = append(positions, v.Position)
		titles = append(titles, v.Title)
	}
	assert.Equal(t, []int{1, 3, 5, 6}, positions, "positions rank all scanned entries, gaps kept")
	assert.Equal(t, []string{"First", "Third", "Fifth", "Sixth"}, titles)
}

func TestFetchDerivesVideoFields(t *testing.T) {
	src := &fakePageSource{
		include: includePublic,
		pages: [][]driven.Item{{
			{
				VideoID:           "vid1",
				Title:             "A title",
				Description:       "A description",
				OwnerChannelID:    "chan1",
				OwnerChannelTitle: "An author",
				PrivacyStatus:     "public",
			},
		}},
	}

	playlist, err := NewFetchService().Fetch(context.Background(), "PL1", src)
	require.NoError(t, err)
	require.Len(t, playlist.Videos, 1)

	v := playlist.Videos[0]
	assert.Equal(t, "https://www.youtube.com/watch?v=vid1", v.URL)
	assert.Equal(t, "https://img.youtube.com/vi/vid1/0.jpg", v.ThumbnailURL)
	assert.Equal(t, "https://www.youtube.com/channel/chan1", v.AuthorURL)
	assert.Equal(t, "An author", v.AuthorName)
	assert.Equal(t, "A description", v.Description)
}

func TestFetchPageFailureDiscardsEverything(t *testing.T) {
	src := &fakePageSource{
		include: includePublic,
		pages: [][]driven.Item{
			{publicItem("a", "First", "public")},
			{publicItem("b", "Second", "public")},
			{publicItem("c", "Third", "public")},
		},
		failPage: 2,
		pageErr:  fmt.Errorf("page 2: %w", domain.ErrFetchIncomplete),
	}

	playlist, err := NewFetchService().Fetch(context.Background(), "PL1", src)
	assert.ErrorIs(t, err, domain.ErrFetchIncomplete)
	assert.Nil(t, playlist, "partial results are never returned")
}

func TestFetchCheckFailureStopsBeforePaging(t *testing.T) {
	src := &fakePageSource{
		checkErr: domain.ErrPlaylistUnavailable,
		pages:    [][]driven.Item{{publicItem("a", "First", "public")}},
	}

	playlist, err := NewFetchService().Fetch(context.Background(), "PL1", src)
	assert.ErrorIs(t, err, domain.ErrPlaylistUnavailable)
	assert.Nil(t, playlist)
	assert.Zero(t, src.pageCalls, "no paging after a failed availability check")
}

func TestFetchEmptyPlaylist(t *testing.T) {
	src := &fakePageSource{include: includePublic, pages: [][]driven.Item{{}}}

	playlist, err := NewFetchService().Fetch(context.Background(), "PL1", src)
	require.NoError(t, err)
	require.NotNil(t, playlist)
	assert.Empty(t, playlist.Videos)
}

func TestFetchOwnerPredicate(t *testing.T) {
	// The authenticated path includes by owning-channel presence instead
	// of the status enum; the counter still advances for skipped entries.
	src := &fakePageSource{
		include: includeOwned,
		pages: [][]driven.Item{{
			{VideoID: "a", Title: "Mine", OwnerChannelID: "chan-a", OwnerChannelTitle: "Me"},
			{VideoID: "b", Title: "Inaccessible"},
			{VideoID: "c", Title: "Also mine", OwnerChannelID: "chan-c", OwnerChannelTitle: "Me"},
		}},
	}

	playlist, err := NewFetchService().Fetch(context.Background(), "PL1", src)
	require.NoError(t, err)
	require.Len(t, playlist.Videos, 2)
	assert.Equal(t, 1, playlist.Videos[0].Position)
	assert.Equal(t, 3, playlist.Videos[1].Position)
}
