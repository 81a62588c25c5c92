package suggestion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/internal/service/stats/analytics"
)

type analysisHabit struct {
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

type analysisStreak struct {
	HabitName     string `json:"habitName"`
	CurrentStreak int    `json:"currentStreak"`
	RecentEntries int    `json:"recentEntries"`
}

type analysisData struct {
	Habits         []analysisHabit  `json:"habits"`
	EntriesCount   int              `json:"entriesCount"`
	CompletionRate float64          `json:"completionRate"`
	CategoryCounts map[string]int   `json:"categoryCounts"`
	StreakData     []analysisStreak `json:"streakData"`
}

// Insights analyzes the habit data of the requested timeframe.
// A disabled provider or a provider failure yields an empty list.
func (s *Service) Insights(ctx context.Context, req domain.InsightRequest) ([]domain.Insight, error) {
	var errs []domain.FieldError
	if !req.Timeframe.IsValid() {
		errs = append(errs, domain.FieldError{Field: "timeframe", Message: "must be week, month, quarter or year"})
	}
	if !req.AnalysisType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "analysisType", Message: "must be suggestions, insights, correlations or predictions"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	ai, ok, err := s.aiSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ai settings: %w", err)
	}
	if !ok {
		return []domain.Insight{}, nil
	}

	habits, entries, err := s.snapshot(ctx, req.Timeframe.Days())
	if err != nil {
		return nil, fmt.Errorf("load habits: %w", err)
	}

	prompt, err := insightsPrompt(s.analysisData(habits, entries), string(req.AnalysisType), string(req.Timeframe))
	if err != nil {
		return nil, err
	}

	text, err := s.complete(ctx, s.model(ai), request{
		system:      insightsSystem,
		prompt:      prompt,
		temperature: 0.6,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "generate insights", slog.String("error", err.Error()))
		return []domain.Insight{}, nil
	}

	out := parseInsights(text, s.now())

	s.log.InfoContext(ctx, "insights generated",
		slog.String("timeframe", string(req.Timeframe)),
		slog.String("analysis", string(req.AnalysisType)),
		slog.Int("count", len(out)),
	)

	return out, nil
}

func (s *Service) analysisData(habits []*domain.Habit, entries []*domain.Entry) analysisData {
	today := s.today()
	data := analysisData{
		Habits:         make([]analysisHabit, len(habits)),
		EntriesCount:   len(entries),
		CompletionRate: recordedRate(entries),
		CategoryCounts: make(map[string]int),
		StreakData:     make([]analysisStreak, len(habits)),
	}

	week := today.AddDays(-6)
	perHabit := make(map[uuid.UUID]int)
	for _, e := range entries {
		if !e.Date.Before(week) {
			perHabit[e.HabitID]++
		}
	}

	for i, h := range habits {
		data.Habits[i] = analysisHabit{Name: h.Name, Category: h.Category, CreatedAt: h.CreatedAt}
		data.CategoryCounts[h.Category]++
		data.StreakData[i] = analysisStreak{
			HabitName:     h.Name,
			CurrentStreak: analytics.CurrentStreak(h.ID, entries, today, analytics.DefaultLookbackDays),
			RecentEntries: perHabit[h.ID],
		}
	}
	return data
}
