package openai

import (
	"context"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/innerguide/guide-api/pkg/ai"
)

const NAME = "openai"

type Driver struct {
	client *openai.Client
	model  string
}

// New builds a driver against api.openai.com or any compatible endpoint
// when proxy is set.
func New(token, proxy, model string) *Driver {
	cfg := openai.DefaultConfig(token)
	if proxy != "" {
		cfg.BaseURL = proxy
	}
	if model == "" {
		model = openai.GPT4oMini
	}

	return &Driver{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (s *Driver) Name() string {
	return NAME
}

func (s *Driver) Available() bool {
	return true
}

func (s *Driver) Analyze(ctx context.Context, req ai.InsightRequest) (ai.InsightResult, error) {
	slog.Debug("Analyze", slog.String("driver", NAME), slog.String("model", s.model))

	if ai.ContentIsOverLimit(req.Content, s.model) {
		return ai.UnavailableResult(), fmt.Errorf("entry too long for a single analysis call")
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: ai.SystemPrompt(req.Content),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: ai.BuildInsightPrompt(req),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		MaxTokens: 600,
	})
	if err != nil {
		return ai.UnavailableResult(), fmt.Errorf("completion error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return ai.UnavailableResult(), fmt.Errorf("completion returned no choices")
	}

	result, err := ai.ParseInsightReply(resp.Choices[0].Message.Content)
	if err != nil {
		return ai.UnavailableResult(), err
	}
	result.Model = resp.Model

	return result, nil
}
