package suggestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/internal/service/stats/analytics"
)

// Motivation is an encouraging message for one habit.
type Motivation struct {
	HabitID        uuid.UUID
	Message        string
	Streak         int
	CompletionRate float64
	Generated      bool
}

// Motivation returns a short encouraging text. It never fails: a disabled
// provider, an error or an empty answer all give the canned message.
func (s *Service) Motivation(ctx context.Context, habitName string, streak int, rate float64) (string, bool) {
	ai, ok, err := s.aiSettings(ctx)
	if err != nil || !ok {
		return fallbackMotivation(streak), false
	}

	text, err := s.complete(ctx, s.model(ai), request{
		system:      motivationSystem,
		prompt:      motivationPrompt(habitName, streak, rate),
		temperature: 0.9,
		maxTokens:   200,
	})
	if err != nil {
		s.log.WarnContext(ctx, "generate motivation", slog.String("error", err.Error()))
		return fallbackMotivation(streak), false
	}
	return text, true
}

// HabitMotivation computes the habit's streak and 30-day rate and asks for a message.
func (s *Service) HabitMotivation(ctx context.Context, habitID uuid.UUID) (*Motivation, error) {
	if habitID == uuid.Nil {
		return nil, domain.NewValidationError("habitId", "required")
	}

	habit, err := s.habits.GetByID(ctx, habitID)
	if err != nil {
		return nil, fmt.Errorf("get habit: %w", err)
	}

	today := s.today()
	entries, err := s.entries.ListByDateRange(ctx, today.AddDays(-(analytics.DefaultLookbackDays - 1)), today, []uuid.UUID{habitID})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	streak := analytics.CurrentStreak(habitID, entries, today, analytics.DefaultLookbackDays)
	rate := recordedRate(entries)
	msg, generated := s.Motivation(ctx, habit.Name, streak, rate)

	return &Motivation{
		HabitID:        habitID,
		Message:        msg,
		Streak:         streak,
		CompletionRate: rate,
		Generated:      generated,
	}, nil
}

func fallbackMotivation(streak int) string {
	switch {
	case streak <= 0:
		return "Every journey begins with a single step. You've got this!"
	case streak < 7:
		return fmt.Sprintf("%d days strong! Keep building momentum.", streak)
	case streak < 30:
		return fmt.Sprintf("%d days streak! You're forming a solid habit.", streak)
	default:
		return fmt.Sprintf("Amazing %d day streak! You're an inspiration.", streak)
	}
}
