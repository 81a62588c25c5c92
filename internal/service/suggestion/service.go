// Package suggestion asks an LLM for habit suggestions, insights and
// motivational messages. Every call degrades to an empty result or a
// canned text when the provider is disabled or fails.
package suggestion

import (
	"context"
	"log/slog"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

type messageClient interface {
	New(ctx context.Context, body anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type settingsReader interface {
	Get(ctx context.Context) (domain.Settings, error)
}

type habitRepo interface {
	List(ctx context.Context, filter domain.HabitFilter) ([]*domain.Habit, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Habit, error)
}

type entryRepo interface {
	ListByDateRange(ctx context.Context, start, end domain.Date, habitIDs []uuid.UUID) ([]*domain.Entry, error)
}

// Config holds the provider credentials and request limits.
type Config struct {
	APIKey         string
	Model          string
	FallbackModels []string
	MaxTokens      int64
	Timeout        time.Duration
}

// Service talks to the LLM provider on behalf of the REST layer.
type Service struct {
	client   messageClient
	cfg      Config
	settings settingsReader
	habits   habitRepo
	entries  entryRepo
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new Suggestion service. A nil clock means time.Now.
func NewService(
	log *slog.Logger,
	client messageClient,
	cfg Config,
	settings settingsReader,
	habits habitRepo,
	entries entryRepo,
	now func() time.Time,
) *Service {
	if now == nil {
		now = time.Now
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1000
	}
	return &Service{
		client:   client,
		cfg:      cfg,
		settings: settings,
		habits:   habits,
		entries:  entries,
		log:      log.With("service", "suggestion"),
		now:      now,
	}
}

// aiSettings returns the user's AI settings and whether calls may be made.
func (s *Service) aiSettings(ctx context.Context) (domain.AISettings, bool, error) {
	st, err := s.settings.Get(ctx)
	if err != nil {
		return domain.AISettings{}, false, err
	}
	return st.AI, st.AI.Enabled && s.cfg.APIKey != "" && s.client != nil, nil
}

func (s *Service) model(ai domain.AISettings) string {
	if ai.Model != "" {
		return ai.Model
	}
	return s.cfg.Model
}

func (s *Service) today() domain.Date {
	return domain.DateOf(s.now())
}

// snapshot loads active habits and their entries of the last days days.
func (s *Service) snapshot(ctx context.Context, days int) ([]*domain.Habit, []*domain.Entry, error) {
	active := true
	today := s.today()

	var (
		habits  []*domain.Habit
		entries []*domain.Entry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		habits, err = s.habits.List(gctx, domain.HabitFilter{IsActive: &active})
		return err
	})
	g.Go(func() (err error) {
		entries, err = s.entries.ListByDateRange(gctx, today.AddDays(-days), today, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return habits, entries, nil
}
