package llm

import (
	"context"
	"errors"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// defaultModel is used when OPENAI_MODEL is unset.
const defaultModel = "gpt-4o-mini"

// openAIProvider calls the OpenAI chat-completion API. Availability is an
// environment fact: the presence of OPENAI_API_KEY.
type openAIProvider struct{}

func (p *openAIProvider) Name() string { return "openai" }

func (p *openAIProvider) Available() bool {
	return os.Getenv("OPENAI_API_KEY") != ""
}

func (p *openAIProvider) DeriveTitle(ctx context.Context, excerpt string) (string, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return "", errors.New("OPENAI_API_KEY not set")
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}

	client := openai.NewClient(key)
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: titlePrompt},
			{Role: openai.ChatMessageRoleUser, Content: excerpt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
