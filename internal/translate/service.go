package translate

import (
	"context"
	"fmt"

	"github.com/GareevaAlice/yt-playlists-app/internal/core/domain"
	"github.com/GareevaAlice/yt-playlists-app/internal/core/ports/driven"
	"github.com/GareevaAlice/yt-playlists-app/internal/logger"
)

// The two supported query languages.
const (
	LanguageRussian = "ru"
	LanguageEnglish = "en"
)

// Detector detects the language of a text.
// Implemented by detectlanguage.Client.
type Detector interface {
	Detect(ctx context.Context, text string) (string, error)
}

// Provider translates a text along a "source|target" language pair.
// Implemented by mymemory.Client.
type Provider interface {
	Translate(ctx context.Context, text, langpair string) (string, error)
}

// Ensure Service implements the port.
var _ driven.Translator = (*Service)(nil)

// Service composes a detector and a provider into the engine's Translator
// port: detect the source language, then translate into the other half of
// the ru/en pair.
type Service struct {
	detector Detector
	provider Provider
}

// NewService creates a translator over the given collaborators.
func NewService(detector Detector, provider Provider) *Service {
	return &Service{detector: detector, provider: provider}
}

// Translate implements driven.Translator.
func (s *Service) Translate(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", nil
	}

	lang, err := s.detector.Detect(ctx, text)
	if err != nil {
		return "", err
	}
	logger.Debug("Detected language %q for %q", lang, text)

	langpair, ok := pairFor(lang)
	if !ok {
		return "", fmt.Errorf("translate: unsupported language %q: %w", lang, domain.ErrTranslationNotFound)
	}

	translated, err := s.provider.Translate(ctx, text, langpair)
	if err != nil {
		return "", err
	}
	return translated, nil
}

// pairFor maps a detected language to the translation direction.
func pairFor(lang string) (string, bool) {
	switch lang {
	case LanguageRussian:
		return LanguageRussian + "|" + LanguageEnglish, true
	case LanguageEnglish:
		return LanguageEnglish + "|" + LanguageRussian, true
	default:
		return "", false
	}
}
