package detectlanguage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GareevaAlice/yt-playlists-app/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)
	return c
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestDetect(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/detect", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "cat video", req["q"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"detections":[{"language":"en","isReliable":true},{"language":"nl"}]}}`))
	})

	lang, err := c.Detect(context.Background(), "cat video")
	require.NoError(t, err)
	assert.Equal(t, "en", lang, "first detection wins")
}

func TestDetectNoDetections(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"detections":[]}}`))
	})

	_, err := c.Detect(context.Background(), "???")
	assert.ErrorIs(t, err, domain.ErrTranslationNotFound)
}

func TestDetectServiceFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	})

	_, err := c.Detect(context.Background(), "text")
	assert.ErrorIs(t, err, domain.ErrLanguageUndetermined)
}

func TestDetectUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(Config{APIKey: "test-key", BaseURL: url})
	require.NoError(t, err)

	_, err = c.Detect(context.Background(), "text")
	assert.ErrorIs(t, err, domain.ErrLanguageUndetermined)
}
