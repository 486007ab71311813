// Package translate implements the bilingual keyword translator.
//
// The translator supports exactly two languages, Russian and English, and
// is never told which direction to translate: it detects the source
// language first (detectlanguage.com) and then asks MyMemory for the text
// in the other language of the pair. Text in any other language is not
// translatable and fails with domain.ErrTranslationNotFound.
package translate
