package domain

import "strings"

// Video is one visible entry of a fetched playlist.
type Video struct {
	// Position is the 1-based rank of the video among all scanned playlist
	// entries, including entries that were skipped for visibility.
	// Positions are strictly increasing in table order; gaps are expected
	// and are never renumbered.
	Position int `json:"position"`

	// URL is the watch page for the video.
	URL string `json:"url"`

	// ThumbnailURL is the preview image for the video.
	ThumbnailURL string `json:"thumbnail_url"`

	// Title is the video title.
	Title string `json:"title"`

	// Description is the video description.
	Description string `json:"description"`

	// AuthorURL is the channel page of the video owner.
	AuthorURL string `json:"author_url"`

	// AuthorName is the display name of the video owner.
	AuthorName string `json:"author_name"`
}

// NewVideo builds a Video at the given position from the opaque source
// identifiers. All URLs are derived deterministically from the IDs.
func NewVideo(position int, videoID, title, description, channelID, channelTitle string) Video {
	return Video{
		Position:     position,
		URL:          WatchURL(videoID),
		ThumbnailURL: ThumbnailURL(videoID),
		Title:        title,
		Description:  description,
		AuthorURL:    ChannelURL(channelID),
		AuthorName:   channelTitle,
	}
}

// WatchURL returns the watch page URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// ThumbnailURL returns the preview image URL for a video ID.
func ThumbnailURL(videoID string) string {
	return "https://img.youtube.com/vi/" + videoID + "/0.jpg"
}

// ChannelURL returns the channel page URL for a channel ID.
func ChannelURL(channelID string) string {
	return "https://www.youtube.com/channel/" + channelID
}

// Playlist is the ordered table of visible videos produced by one fetch.
// It is replaced wholesale on a refetch, never merged; after a fetch the
// base fields are only ever read.
type Playlist struct {
	// ID is the playlist identifier the table was fetched from.
	ID string `json:"id"`

	// Videos holds the visible entries in original playlist order.
	Videos []Video `json:"videos"`
}

// Len returns the number of visible videos in the table.
func (p *Playlist) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Videos)
}

// PlaylistIDFromRef extracts a playlist ID from a user-supplied reference.
// A reference containing "youtube" is treated as a URL whose trailing query
// parameter carries the ID (everything after the last '='); anything else is
// used verbatim.
func PlaylistIDFromRef(ref string) string {
	if !strings.Contains(ref, "youtube") {
		return ref
	}
	if i := strings.LastIndex(ref, "="); i >= 0 {
		return ref[i+1:]
	}
	return ref
}
