package translate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GareevaAlice/yt-playlists-app/internal/core/domain"
)

// --- Mock implementations ---

type mockDetector struct {
	lang  string
	err   error
	calls int
}

func (m *mockDetector) Detect(_ context.Context, _ string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.lang, nil
}

type mockProvider struct {
	result  string
	err     error
	gotText string
	gotPair string
	calls   int
}

func (m *mockProvider) Translate(_ context.Context, text, langpair string) (string, error) {
	m.calls++
	m.gotText = text
	m.gotPair = langpair
	if m.err != nil {
		return "", m.err
	}
	return m.result, nil
}

// --- Tests ---

func TestTranslateDirections(t *testing.T) {
	tests := []struct {
		name     string
		detected string
		wantPair string
	}{
		{name: "english to russian", detected: "en", wantPair: "en|ru"},
		{name: "russian to english", detected: "ru", wantPair: "ru|en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockProvider{result: "translated"}
			s := NewService(&mockDetector{lang: tt.detected}, provider)

			got, err := s.Translate(context.Background(), "some text")
			require.NoError(t, err)

			assert.Equal(t, "translated", got)
			assert.Equal(t, "some text", provider.gotText)
			assert.Equal(t, tt.wantPair, provider.gotPair)
		})
	}
}

func TestTranslateEmptyInputSkipsRemoteCalls(t *testing.T) {
	detector := &mockDetector{lang: "en"}
	provider := &mockProvider{result: "translated"}
	s := NewService(detector, provider)

	got, err := s.Translate(context.Background(), "")
	require.NoError(t, err)

	assert.Empty(t, got)
	assert.Zero(t, detector.calls)
	assert.Zero(t, provider.calls)
}

func TestTranslateUnsupportedLanguage(t *testing.T) {
	provider := &mockProvider{result: "translated"}
	s := NewService(&mockDetector{lang: "de"}, provider)

	_, err := s.Translate(context.Background(), "hallo welt")
	assert.ErrorIs(t, err, domain.ErrTranslationNotFound)
	assert.Zero(t, provider.calls, "no translation attempt for unsupported languages")
}

func TestTranslateDetectorFailurePropagates(t *testing.T) {
	s := NewService(&mockDetector{err: domain.ErrLanguageUndetermined}, &mockProvider{})

	_, err := s.Translate(context.Background(), "text")
	assert.ErrorIs(t, err, domain.ErrLanguageUndetermined)
}

func TestTranslateProviderFailurePropagates(t *testing.T) {
	for _, sentinel := range []error{domain.ErrTranslationUnavailable, domain.ErrTranslationNotFound} {
		s := NewService(&mockDetector{lang: "en"}, &mockProvider{err: sentinel})

		_, err := s.Translate(context.Background(), "text")
		assert.ErrorIs(t, err, sentinel)
	}
}
