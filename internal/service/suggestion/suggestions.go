package suggestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/internal/service/stats/analytics"
)

// Suggestions proposes new habits that complement the active ones.
// A disabled provider or a provider failure yields an empty list.
func (s *Service) Suggestions(ctx context.Context) ([]domain.Suggestion, error) {
	ai, ok, err := s.aiSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ai settings: %w", err)
	}
	if !ok || !ai.AutoSuggestions {
		return []domain.Suggestion{}, nil
	}

	habits, entries, err := s.snapshot(ctx, analytics.DefaultLookbackDays)
	if err != nil {
		return nil, fmt.Errorf("load habits: %w", err)
	}

	names := make([]string, len(habits))
	for i, h := range habits {
		names[i] = fmt.Sprintf("%s (%s)", h.Name, h.Category)
	}

	text, err := s.complete(ctx, s.model(ai), request{
		system:      suggestionsSystem,
		prompt:      suggestionsPrompt(names, recordedRate(entries), ai.MaxSuggestions),
		temperature: 0.8,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "generate suggestions", slog.String("error", err.Error()))
		return []domain.Suggestion{}, nil
	}

	out := parseSuggestions(text, s.now())
	if ai.MaxSuggestions > 0 && len(out) > ai.MaxSuggestions {
		out = out[:ai.MaxSuggestions]
	}

	s.log.InfoContext(ctx, "suggestions generated", slog.Int("count", len(out)))

	return out, nil
}

// recordedRate is completed/recorded entries in percent.
func recordedRate(entries []*domain.Entry) float64 {
	done := 0
	for _, e := range entries {
		if e.Completed {
			done++
		}
	}
	return domain.Percent(done, len(entries))
}
