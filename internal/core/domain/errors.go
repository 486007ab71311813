package domain

import "errors"

// Domain errors represent business logic failures.
// Each failure class the engine can surface is a distinct sentinel so
// callers can branch on errors.Is rather than string matching.
var (
	// ErrPlaylistUnavailable indicates the playlist does not exist or is
	// private. Reported by the availability pre-check, before any paging.
	ErrPlaylistUnavailable = errors.New("playlist unavailable: it does not exist or is private")

	// ErrFetchIncomplete indicates a page request failed part-way through
	// an unauthenticated fetch. No partial table is ever surfaced.
	ErrFetchIncomplete = errors.New("playlist fetch incomplete")

	// ErrAuthFetchFailed indicates a transport or authorisation failure
	// during an authenticated fetch.
	ErrAuthFetchFailed = errors.New("authorised playlist fetch failed")

	// ErrLanguageUndetermined indicates the language detection service was
	// unreachable or returned a non-success response.
	ErrLanguageUndetermined = errors.New("language detection unavailable")

	// ErrTranslationUnavailable indicates the translation service was
	// unreachable or returned a non-success response.
	ErrTranslationUnavailable = errors.New("translation service unavailable")

	// ErrTranslationNotFound indicates no usable detection or translation
	// exists for the text (unsupported language, empty candidate list).
	ErrTranslationNotFound = errors.New("no translation for this text")

	// ErrNoPlaylist indicates a search was issued before any playlist
	// was loaded.
	ErrNoPlaylist = errors.New("no playlist loaded")

	// ErrNoResults indicates a query matched zero videos. Raised by the
	// engine orchestration, never by the matcher itself.
	ErrNoResults = errors.New("no videos matched the query")

	// ErrAuthRequired indicates an authenticated fetch was requested but
	// no credentials are configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrNotFound indicates a requested entity does not exist in a store.
	ErrNotFound = errors.New("not found")
)
