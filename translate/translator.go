// Package translate turns a transcript into translations for a set of
// target languages, one remote completion call per language.
package translate

import (
	"context"
	"fmt"
)

// Translator converts text into a single target language.
type Translator interface {
	Translate(ctx context.Context, text string, lang Language) (string, error)
}

// TranslationError reports a failed translation for one language. A
// failure is scoped to its language and carries no implication for
// sibling languages in the same fan-out.
type TranslationError struct {
	Language Language
	Err      error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translate to %s: %v", e.Language.Code, e.Err)
}

func (e *TranslationError) Unwrap() error { return e.Err }

// Result is the outcome for one requested language: either Text or Err
// is set, never both.
type Result struct {
	Language Language
	Text     string
	Err      error
}
