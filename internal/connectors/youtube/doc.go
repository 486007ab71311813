// Package youtube provides the playlist page sources backed by the
// YouTube Data API v3.
//
// Two driven.PageSource implementations share the generated API client:
//
//   - Client: unauthenticated access with an API key. Availability is
//     pre-checked through the Playlists endpoint and entries are included
//     by their public/unlisted privacy status.
//   - AuthedClient: OAuth access through a token source. No pre-check;
//     entries are included when they carry a resolvable owning channel,
//     since the API omits videoOwnerChannelId for entries the user
//     cannot access.
//
// Both paths page through PlaylistItems 50 entries at a time following
// nextPageToken, and rate-limit their requests to stay inside the API
// quota (10,000 units per day on the free tier).
package youtube
