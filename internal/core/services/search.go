package services

import (
	"context"
	"strings"

	"github.com/GareevaAlice/yt-playlists-app/internal/core/domain"
	"github.com/GareevaAlice/yt-playlists-app/internal/core/ports/driven"
	"github.com/GareevaAlice/yt-playlists-app/internal/logger"
)

// searchSeparator joins title and description when both are searched.
// The unit separator cannot occur in natural text, so keywords can never
// match across the title/description boundary.
const searchSeparator = "\x1f"

// SearchService evaluates queries against a video table. Matching is
// boolean membership, case-insensitive throughout, and never mutates the
// table; the result is the matching subsequence in original order.
type SearchService struct {
	translator driven.Translator
}

// NewSearchService creates a new search service.
func NewSearchService(translator driven.Translator) *SearchService {
	return &SearchService{translator: translator}
}

// Search evaluates a query against the given table. For a bilingual query
// with non-empty keywords the translator is invoked exactly once and its
// failures abort the query verbatim. An empty match set is a valid result,
// not an error; "nothing found" policy belongs to the caller.
func (s *SearchService) Search(
	ctx context.Context, playlist *domain.Playlist, q domain.Query,
) (*domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Keywords: %q, author: %q, mode: %s, description: %t, bilingual: %t",
		q.Keywords, q.Author, q.Match, q.SearchDescription, q.Bilingual)

	translation := ""
	translated := false
	if q.Bilingual && q.Keywords != "" {
		t, err := s.translator.Translate(ctx, q.Keywords)
		if err != nil {
			return nil, err
		}
		translation = strings.ToLower(t)
		translated = true
		logger.Debug("Translation: %q", translation)
	}

	keywords := strings.ToLower(q.Keywords)
	author := strings.ToLower(q.Author)

	matched := make([]domain.Video, 0, playlist.Len())
	for _, v := range playlist.Videos {
		if matchText(v, q, keywords, translation, translated) && matchAuthor(v, author) {
			matched = append(matched, v)
		}
	}

	logger.Info("Matched %d of %d videos", len(matched), playlist.Len())
	return &domain.SearchResult{Videos: matched, Translation: translation}, nil
}

// matchText evaluates the keyword predicate for one video.
// keywords and translation are already lowercased.
func matchText(v domain.Video, q domain.Query, keywords, translation string, translated bool) bool {
	if keywords == "" {
		return true
	}

	text := strings.ToLower(v.Title)
	if q.SearchDescription {
		text += searchSeparator + strings.ToLower(v.Description)
	}

	if q.Match == domain.MatchVerbatim {
		if strings.Contains(text, keywords) {
			return true
		}
		return translated && strings.Contains(text, translation)
	}

	// Any-order: every word must appear somewhere in the text, substring
	// containment rather than token-boundary matching. The translation is
	// only consulted when the primary word set fully fails; partial
	// matches are never unioned across languages.
	if allWordsIn(text, strings.Fields(keywords)) {
		return true
	}
	return translated && allWordsIn(text, strings.Fields(translation))
}

func allWordsIn(text string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}

// matchAuthor evaluates the author predicate. author is already lowercased.
func matchAuthor(v domain.Video, author string) bool {
	if author == "" {
		return true
	}
	return strings.Contains(strings.ToLower(v.AuthorName), author)
}
