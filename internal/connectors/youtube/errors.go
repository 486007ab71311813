package youtube

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"google.golang.org/api/googleapi"

	"github.com/GareevaAlice/yt-playlists-app/internal/core/domain"
)

// isAPIError reports whether err is a non-success API response, as opposed
// to a transport-level failure that never produced a response.
func isAPIError(err error) (*googleapi.Error, bool) {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr, true
	}
	return nil, false
}

// wrapFetchErr classifies a paging failure under the fetch path's terminal
// error class while keeping the underlying cause inspectable.
func wrapFetchErr(sentinel error, op string, err error) error {
	return fmt.Errorf("youtube: %s: %w: %w", op, sentinel, err)
}

// recordIfRateLimited feeds 429 responses into the limiter's backoff.
func recordIfRateLimited(limiter *RateLimiter, err error) {
	gerr, ok := isAPIError(err)
	if !ok || gerr.Code != http.StatusTooManyRequests {
		return
	}
	retryAfter := 0
	if gerr.Header != nil {
		if n, convErr := strconv.Atoi(gerr.Header.Get("Retry-After")); convErr == nil {
			retryAfter = n
		}
	}
	limiter.RecordRateLimitError(retryAfter)
}

// IsUnavailable returns true if the error reports a playlist that does not
// exist or cannot be seen.
func IsUnavailable(err error) bool {
	return errors.Is(err, domain.ErrPlaylistUnavailable)
}
