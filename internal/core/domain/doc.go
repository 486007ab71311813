// Package domain defines the core business entities for the playlist engine.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Video: one visible entry of a fetched playlist
//   - Playlist: the ordered table of videos produced by a single fetch
//   - Query: a search request against the current playlist
//   - Credentials: the OAuth credential bundle supplied by the session layer
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
