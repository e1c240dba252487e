package planner

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/moizlokhandwala/aitravelagent/internal/config"
	"github.com/moizlokhandwala/aitravelagent/internal/logger"
)

// openAIProvider is the OpenAI chat-completion implementation of [Completer].
type openAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
	logger      *logger.Logger
}

// NewOpenAIProvider constructs a [Completer] backed by the OpenAI chat
// completion API. A non-empty cfg.BaseURL redirects the client to a
// compatible gateway (also used by tests).
func NewOpenAIProvider(cfg config.OpenAI, log *logger.Logger) Completer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	log.Debug().Str("model", cfg.Model).Msg("creating openai completion provider")

	return &openAIProvider{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
		logger:      log,
	}
}

// Complete sends the instruction as a single user message and returns the
// first choice's content. Callers bound the call with a context deadline.
func (p *openAIProvider) Complete(ctx context.Context, instruction string) (string, error) {
	log := logger.FromContext(ctx)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: p.temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: instruction,
			},
		},
	})
	if err != nil {
		log.Err(err).Str("model", p.model).Msg("chat completion call failed")
		return "", fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}

	if len(resp.Choices) == 0 {
		log.Error().Str("model", p.model).Msg("chat completion returned no choices")
		return "", fmt.Errorf("%w: no choices returned", ErrCompletionFailed)
	}

	return resp.Choices[0].Message.Content, nil
}
