package translate

import "context"

type MockTranslator struct {
	TranslateFunc func(ctx context.Context, text string, lang Language) (string, error)
}

func (m *MockTranslator) Translate(ctx context.Context, text string, lang Language) (string, error) {
	return m.TranslateFunc(ctx, text, lang)
}
