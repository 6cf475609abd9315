package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Responder turns an assembled prompt into natural-language text.
type Responder interface {
	Respond(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Enabled() bool
}

type openaiResponder struct {
	cfg      Config
	client   *openai.Client
	observer Observer
}

// NewOpenAIResponder creates a Responder backed by an OpenAI-compatible
// chat completion endpoint.
func NewOpenAIResponder(cfg Config, observer Observer) Responder {
	if observer == nil {
		observer = NoopObserver{}
	}
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return &openaiResponder{
		cfg:      cfg,
		client:   openai.NewClientWithConfig(clientConfig),
		observer: observer,
	}
}

func (r *openaiResponder) Enabled() bool {
	return r.cfg.Enabled
}

func (r *openaiResponder) Respond(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !r.cfg.Enabled {
		return "", ErrDisabled
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       r.cfg.Model,
		Temperature: float32(r.cfg.Temperature),
		MaxTokens:   r.cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	}

	var lastErr error
	attempts := 1 + r.cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		resp, err := r.client.CreateChatCompletion(ctx, req)
		if err == nil {
			if len(resp.Choices) == 0 {
				lastErr = ErrEmptyResponse
				continue
			}
			latency := time.Since(start).Milliseconds()
			r.observer.OnCallComplete(CallEvent{
				Model:     r.cfg.Model,
				LatencyMs: latency,
				Success:   true,
			})
			return resp.Choices[0].Message.Content, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout
		if ctx.Err() != nil {
			break
		}
	}

	r.observer.OnCallComplete(CallEvent{
		Model:     r.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(lastErr),
	})

	if ctx.Err() != nil {
		return "", fmt.Errorf("llm request: %w", ctx.Err())
	}
	return "", fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyResponse):
		return "EMPTY_RESPONSE"
	case errors.Is(err, context.DeadlineExceeded):
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// DisabledResponder always reports generation as unavailable. Useful when
// no API key is configured and in tests.
type DisabledResponder struct{}

func (DisabledResponder) Enabled() bool { return false }

func (DisabledResponder) Respond(context.Context, string, string) (string, error) {
	return "", ErrDisabled
}
