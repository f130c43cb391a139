package translate

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, codes ...string) []Language {
	t.Helper()
	langs := make([]Language, len(codes))
	for i, c := range codes {
		l, err := Parse(c)
		require.NoError(t, err)
		langs[i] = l
	}
	return langs
}

func TestFanOutPreservesRequestOrder(t *testing.T) {
	langs := mustParse(t, "tr", "en", "fr", "de")

	// Later languages finish first.
	f := &FanOut{Translator: &MockTranslator{
		TranslateFunc: func(ctx context.Context, text string, lang Language) (string, error) {
			switch lang.Code {
			case "tr":
				time.Sleep(30 * time.Millisecond)
			case "en":
				time.Sleep(20 * time.Millisecond)
			case "fr":
				time.Sleep(10 * time.Millisecond)
			}
			return "translated to " + lang.Code, nil
		},
	}}

	results := f.Translate(context.Background(), "hello", langs, nil)
	require.Len(t, results, len(langs))
	for i, lang := range langs {
		assert.Equal(t, lang, results[i].Language)
		assert.Equal(t, "translated to "+lang.Code, results[i].Text)
		assert.NoError(t, results[i].Err)
	}
}

func TestFanOutIsolatesFailures(t *testing.T) {
	langs := mustParse(t, "fr", "de")
	remoteErr := errors.New("rate limited")

	f := &FanOut{Translator: &MockTranslator{
		TranslateFunc: func(ctx context.Context, text string, lang Language) (string, error) {
			if lang.Code == "de" {
				return "", remoteErr
			}
			return "Bonjour le monde", nil
		},
	}}

	results := f.Translate(context.Background(), "Hello world", langs, nil)
	require.Len(t, results, 2)

	assert.Equal(t, "Bonjour le monde", results[0].Text)
	assert.NoError(t, results[0].Err)

	assert.Empty(t, results[1].Text)
	var tErr *TranslationError
	require.True(t, errors.As(results[1].Err, &tErr))
	assert.Equal(t, "de", tErr.Language.Code)
	assert.ErrorIs(t, results[1].Err, remoteErr)
}

func TestFanOutAlwaysReturnsEveryLanguage(t *testing.T) {
	langs := mustParse(t, "tr", "en", "fr", "de", "es", "it")

	f := &FanOut{Translator: &MockTranslator{
		TranslateFunc: func(ctx context.Context, text string, lang Language) (string, error) {
			return "", fmt.Errorf("boom for %s", lang.Code)
		},
	}}

	results := f.Translate(context.Background(), "hello", langs, nil)
	require.Len(t, results, len(langs))
	for i, lang := range langs {
		assert.Equal(t, lang, results[i].Language)
		assert.Error(t, results[i].Err)
	}
}

func TestFanOutBoundedWorkers(t *testing.T) {
	langs := mustParse(t, "tr", "en", "fr", "de", "es", "it")

	var active, peak int32
	f := &FanOut{
		Workers: 2,
		Translator: &MockTranslator{
			TranslateFunc: func(ctx context.Context, text string, lang Language) (string, error) {
				n := atomic.AddInt32(&active, 1)
				for {
					p := atomic.LoadInt32(&peak)
					if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				atomic.AddInt32(&active, -1)
				return "ok", nil
			},
		},
	}

	results := f.Translate(context.Background(), "hello", langs, nil)
	require.Len(t, results, len(langs))
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestFanOutPerCallTimeout(t *testing.T) {
	langs := mustParse(t, "en")

	f := &FanOut{
		PerCallTimeout: 10 * time.Millisecond,
		Translator: &MockTranslator{
			TranslateFunc: func(ctx context.Context, text string, lang Language) (string, error) {
				select {
				case <-ctx.Done():
					return "", ctx.Err()
				case <-time.After(time.Second):
					return "too late", nil
				}
			},
		},
	}

	results := f.Translate(context.Background(), "hello", langs, nil)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, context.DeadlineExceeded)
}

func TestFanOutReportsEachResult(t *testing.T) {
	langs := mustParse(t, "tr", "en", "fr")

	f := &FanOut{Translator: &MockTranslator{
		TranslateFunc: func(ctx context.Context, text string, lang Language) (string, error) {
			return "ok", nil
		},
	}}

	var seen []string
	f.Translate(context.Background(), "hello", langs, func(r Result) {
		seen = append(seen, r.Language.Code)
	})

	assert.ElementsMatch(t, []string{"tr", "en", "fr"}, seen)
}
