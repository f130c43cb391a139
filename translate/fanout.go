package translate

import (
	"context"
	"sync"
	"time"
)

// FanOut issues one translation call per requested language and
// collects every outcome. Languages are independent: one language's
// failure never cancels or skips the others.
type FanOut struct {
	Translator Translator

	// Workers bounds concurrent calls; 0 or less runs every language at
	// once. Language counts are user-selected and small, so unbounded
	// is the normal mode.
	Workers int

	// PerCallTimeout bounds each individual translation call; 0
	// disables the bound.
	PerCallTimeout time.Duration
}

// Translate runs the fan-out for langs over text. The returned slice
// holds exactly one Result per requested language, in the caller's
// order, regardless of completion order or failures. onResult, when
// non-nil, is invoked serially as each language finishes.
func (f *FanOut) Translate(ctx context.Context, text string, langs []Language, onResult func(Result)) []Result {
	results := make([]Result, len(langs))

	var sem chan struct{}
	if f.Workers > 0 {
		sem = make(chan struct{}, f.Workers)
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	for i, lang := range langs {
		wg.Add(1)
		go func(i int, lang Language) {
			defer wg.Done()
			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}

			results[i] = f.translateOne(ctx, text, lang)

			if onResult != nil {
				mu.Lock()
				onResult(results[i])
				mu.Unlock()
			}
		}(i, lang)
	}
	wg.Wait()

	return results
}

func (f *FanOut) translateOne(ctx context.Context, text string, lang Language) Result {
	if f.PerCallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.PerCallTimeout)
		defer cancel()
	}

	translated, err := f.Translator.Translate(ctx, text, lang)
	if err != nil {
		return Result{Language: lang, Err: &TranslationError{Language: lang, Err: err}}
	}
	return Result{Language: lang, Text: translated}
}
