package suggestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
)

// statusOverloaded is returned by the provider when the model is saturated.
const statusOverloaded = 529

// ErrEmptyResponse is returned when the provider answers without text.
var ErrEmptyResponse = errors.New("empty llm response")

type request struct {
	system      string
	prompt      string
	temperature float64
	maxTokens   int64
}

// complete sends req to model and, while the provider reports rate limiting
// or overload, to each fallback model in order.
func (s *Service) complete(ctx context.Context, model string, req request) (string, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	maxTokens := req.maxTokens
	if maxTokens <= 0 {
		maxTokens = s.cfg.MaxTokens
	}

	models := append([]string{model}, s.cfg.FallbackModels...)
	var lastErr error
	for i, m := range models {
		if i > 0 && m == model {
			continue
		}

		params := anthropic.MessageNewParams{
			Model:       anthropic.Model(m),
			MaxTokens:   maxTokens,
			Temperature: anthropic.Float(req.temperature),
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(req.prompt)),
			},
		}
		if req.system != "" {
			params.System = []anthropic.TextBlockParam{{Text: req.system}}
		}

		msg, err := s.client.New(ctx, params)
		if err == nil {
			return responseText(msg)
		}

		lastErr = fmt.Errorf("llm call with model %s: %w", m, err)
		if !isRetryable(err) {
			return "", lastErr
		}
		s.log.WarnContext(ctx, "llm model rate limited, trying next",
			slog.String("model", m),
			slog.Int("remaining", len(models)-i-1),
		)
	}
	return "", lastErr
}

func responseText(msg *anthropic.Message) (string, error) {
	if msg == nil {
		return "", ErrEmptyResponse
	}
	var b strings.Builder
	for _, block := range msg.Content {
		b.WriteString(block.Text)
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func isRetryable(err error) bool {
	var apierr *anthropic.Error
	if !errors.As(err, &apierr) {
		return false
	}
	return apierr.StatusCode == http.StatusTooManyRequests || apierr.StatusCode == statusOverloaded
}
