package domain

// MatchMode selects how keywords are matched against a video's text.
type MatchMode string

const (
	// MatchVerbatim requires the keywords to appear as one contiguous,
	// case-insensitive substring.
	MatchVerbatim MatchMode = "verbatim"

	// MatchAnyOrder requires every whitespace-separated keyword to appear
	// somewhere in the text, in any order.
	MatchAnyOrder MatchMode = "any_order"
)

// Query describes one search over the current playlist table.
type Query struct {
	// Keywords is the search text. Empty keywords match every video.
	Keywords string `json:"keywords"`

	// Author filters by video owner name. Empty matches every video.
	Author string `json:"author"`

	// SearchDescription extends the keyword match to the description.
	SearchDescription bool `json:"search_description"`

	// Match selects verbatim or any-order keyword matching.
	Match MatchMode `json:"match"`

	// Bilingual augments the query with a machine translation of the
	// keywords so videos titled in the other supported language match too.
	Bilingual bool `json:"bilingual"`
}

// SearchResult is the outcome of evaluating a Query.
type SearchResult struct {
	// Videos is the matching subsequence of the playlist table,
	// in original order.
	Videos []Video `json:"videos"`

	// Translation is the lowercased translation used for a bilingual
	// query, or empty when the query was not translated.
	Translation string `json:"translation,omitempty"`
}
