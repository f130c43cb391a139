package translate

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI translates text through a chat completion endpoint.
type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = openai.GPT4
	}
	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Translate returns the first completion's content verbatim, with no
// local post-processing or length limits.
func (t *OpenAI) Translate(ctx context.Context, text string, lang Language) (string, error) {
	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf("Translate the following text to %s.", lang.Name),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
