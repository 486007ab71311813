package driven

import "context"

// Translator converts text between the two supported query languages
// without being told which direction to translate.
//
// Implementations detect the source language first and translate into the
// other language of the pair. Failure classes:
//
//   - domain.ErrLanguageUndetermined: the detector was unreachable
//   - domain.ErrTranslationUnavailable: the translator was unreachable
//   - domain.ErrTranslationNotFound: no usable detection or translation
type Translator interface {
	// Translate returns the text translated into the other supported
	// language. Empty input returns empty output with no remote call.
	Translate(ctx context.Context, text string) (string, error)
}
