package driven

import "context"

// Item is one raw playlist entry as reported by the remote source,
// before any visibility filtering.
type Item struct {
	// VideoID is the opaque video identifier.
	VideoID string

	// Title is the video title.
	Title string

	// Description is the video description.
	Description string

	// OwnerChannelID identifies the owning channel. Absent on the
	// authenticated path when the entry is inaccessible to the user.
	OwnerChannelID string

	// OwnerChannelTitle is the display name of the owning channel.
	OwnerChannelTitle string

	// PrivacyStatus is the source visibility status (public, unlisted,
	// private, privacyStatusUnspecified). Only populated on the
	// unauthenticated path.
	PrivacyStatus string
}

// ItemPage is one page of playlist entries plus the cursor to the next page.
type ItemPage struct {
	// Items holds the entries of this page in playlist order.
	Items []Item

	// NextPageToken is the cursor for the following page.
	// Empty when this is the last page.
	NextPageToken string
}

// PageSource walks one remote playlist page by page. It is the strategy
// object that varies between the public and the authenticated fetch path:
// the fetch loop itself is shared, while the availability check, the page
// call and the inclusion predicate differ.
//
// Page failures must already carry the path's terminal error class
// (domain.ErrFetchIncomplete or domain.ErrAuthFetchFailed) so the fetch
// loop can propagate them unchanged.
type PageSource interface {
	// Check verifies the playlist is addressable before any paging.
	// Implementations without a pre-check return nil.
	Check(ctx context.Context, playlistID string) error

	// Page fetches one page of at most MaxPageSize entries. An empty
	// pageToken requests the first page.
	Page(ctx context.Context, playlistID, pageToken string) (*ItemPage, error)

	// Include reports whether an item is visible to this fetch path.
	// Excluded items still advance the position counter.
	Include(item Item) bool
}

// MaxPageSize is the largest page the remote source hands out per request.
const MaxPageSize = 50
