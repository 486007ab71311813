package youtube

import (
	"google.golang.org/api/youtube/v3"

	"github.com/GareevaAlice/yt-playlists-app/internal/core/ports/driven"
)

// Privacy statuses that keep a playlist entry visible on the
// unauthenticated path.
const (
	PrivacyPublic   = "public"
	PrivacyUnlisted = "unlisted"
)

// itemFromAPI converts a PlaylistItems entry into the port representation.
// Snippet, status and resource ID can each be absent on deleted entries,
// so every dereference is guarded.
func itemFromAPI(pi *youtube.PlaylistItem) driven.Item {
	var item driven.Item
	if pi == nil {
		return item
	}
	if pi.Snippet != nil {
		item.Title = pi.Snippet.Title
		item.Description = pi.Snippet.Description
		item.OwnerChannelID = pi.Snippet.VideoOwnerChannelId
		item.OwnerChannelTitle = pi.Snippet.VideoOwnerChannelTitle
		if pi.Snippet.ResourceId != nil {
			item.VideoID = pi.Snippet.ResourceId.VideoId
		}
	}
	if pi.Status != nil {
		item.PrivacyStatus = pi.Status.PrivacyStatus
	}
	return item
}

// pageFromAPI converts a PlaylistItems response into the port representation.
func pageFromAPI(resp *youtube.PlaylistItemListResponse) *driven.ItemPage {
	page := &driven.ItemPage{NextPageToken: resp.NextPageToken}
	for _, pi := range resp.Items {
		page.Items = append(page.Items, itemFromAPI(pi))
	}
	return page
}

// IncludeByStatus reports whether an entry is visible to anonymous users.
// Private and deleted entries stay in the position count but out of the
// table.
func IncludeByStatus(item driven.Item) bool {
	return item.PrivacyStatus == PrivacyPublic || item.PrivacyStatus == PrivacyUnlisted
}

// IncludeByOwner reports whether an entry is accessible to the
// authenticated user. The API omits the owning channel for entries the
// user cannot access.
func IncludeByOwner(item driven.Item) bool {
	return item.OwnerChannelID != ""
}
