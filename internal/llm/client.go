package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/schema"

	"github.com/dyike/FinAdvisorGo/config"
)

// Completer is the single capability every agent needs from the chat model:
// one system-instructed completion per call. Tests substitute a stub.
type Completer interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// Client wraps an OpenAI-compatible chat model behind the Completer
// interface.
type Client struct {
	model *openai.ChatModel
}

func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	maxTokens := cfg.MaxTokens
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:   cfg.BackendURL,
		APIKey:    cfg.OpenAIAPIKey,
		Model:     cfg.ChatModel,
		MaxTokens: &maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("create chat model: %w", err)
	}
	return &Client{model: chatModel}, nil
}

func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	msgs := []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(user),
	}
	out, err := c.model.Generate(ctx, msgs)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	return out.Content, nil
}
