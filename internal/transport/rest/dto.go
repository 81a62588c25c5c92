package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
	"github.com/heartmarshall/habitflow-backend/internal/service/entry"
	"github.com/heartmarshall/habitflow-backend/internal/service/stats"
	"github.com/heartmarshall/habitflow-backend/internal/service/stats/analytics"
	"github.com/heartmarshall/habitflow-backend/internal/service/suggestion"
)

type habitResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Category    string    `json:"category"`
	Color       string    `json:"color"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toHabitResponse(h *domain.Habit) habitResponse {
	return habitResponse{
		ID:          h.ID,
		Name:        h.Name,
		Description: h.Description,
		Category:    h.Category,
		Color:       h.Color,
		IsActive:    h.IsActive,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

func toHabitResponses(hs []*domain.Habit) []habitResponse {
	out := make([]habitResponse, len(hs))
	for i, h := range hs {
		out[i] = toHabitResponse(h)
	}
	return out
}

type habitWithStatsResponse struct {
	habitResponse
	TotalEntries     int     `json:"totalEntries"`
	CompletedEntries int     `json:"completedEntries"`
	CompletionRate   float64 `json:"completionRate"`
}

func toHabitWithStatsResponses(hs []domain.HabitWithStats) []habitWithStatsResponse {
	out := make([]habitWithStatsResponse, len(hs))
	for i := range hs {
		out[i] = habitWithStatsResponse{
			habitResponse:    toHabitResponse(&hs[i].Habit),
			TotalEntries:     hs[i].TotalEntries,
			CompletedEntries: hs[i].CompletedEntries,
			CompletionRate:   hs[i].CompletionRate,
		}
	}
	return out
}

type categoryResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type entryResponse struct {
	ID          uuid.UUID   `json:"id"`
	HabitID     uuid.UUID   `json:"habitId"`
	Date        domain.Date `json:"date"`
	Completed   bool        `json:"completed"`
	CompletedAt *time.Time  `json:"completedAt"`
	CreatedAt   time.Time   `json:"createdAt"`
}

func toEntryResponse(e *domain.Entry) entryResponse {
	return entryResponse{
		ID:          e.ID,
		HabitID:     e.HabitID,
		Date:        e.Date,
		Completed:   e.Completed,
		CompletedAt: e.CompletedAt,
		CreatedAt:   e.CreatedAt,
	}
}

func toEntryResponses(es []*domain.Entry) []entryResponse {
	out := make([]entryResponse, len(es))
	for i, e := range es {
		out[i] = toEntryResponse(e)
	}
	return out
}

type exportRowResponse struct {
	entryResponse
	HabitName     string `json:"habitName"`
	HabitCategory string `json:"habitCategory"`
}

type habitStatsResponse struct {
	TotalDays         int            `json:"totalDays"`
	CompletedDays     int            `json:"completedDays"`
	CompletionRate    float64        `json:"completionRate"`
	LastCompletedDate *domain.Date   `json:"lastCompletedDate"`
	CurrentStreak     int            `json:"currentStreak"`
	Habit             *habitResponse `json:"habit,omitempty"`
}

func toHabitStatsResponse(s *entry.HabitStats) habitStatsResponse {
	out := habitStatsResponse{
		TotalDays:         s.TotalDays,
		CompletedDays:     s.CompletedDays,
		CompletionRate:    s.CompletionRate,
		LastCompletedDate: s.LastCompletedDate,
		CurrentStreak:     s.CurrentStreak,
	}
	if s.Habit != nil {
		h := toHabitResponse(s.Habit)
		out.Habit = &h
	}
	return out
}

type dayPointResponse struct {
	Date           domain.Date `json:"date"`
	CompletedCount int         `json:"completedCount"`
	TotalHabits    int         `json:"totalHabits"`
	RatePercent    float64     `json:"ratePercent"`
}

type weekPointResponse struct {
	Label             string      `json:"label"`
	Start             domain.Date `json:"start"`
	End               domain.Date `json:"end"`
	CompletionPercent float64     `json:"completionPercent"`
}

type habitRateResponse struct {
	HabitID   uuid.UUID `json:"habitId"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Color     string    `json:"color"`
	Completed int       `json:"completed"`
	Recorded  int       `json:"recorded"`
	Rate      float64   `json:"rate"`
}

type categoryShareResponse struct {
	Category  string `json:"category"`
	Completed int    `json:"completed"`
}

type overviewResponse struct {
	Days              int                     `json:"days"`
	TotalHabits       int                     `json:"totalHabits"`
	TodayRate         float64                 `json:"todayRate"`
	WeeklyCompletion  float64                 `json:"weeklyCompletion"`
	PerfectDayStreak  int                     `json:"perfectDayStreak"`
	BestPerfectStreak int                     `json:"bestPerfectStreak"`
	Series            []dayPointResponse      `json:"series"`
	WeeklyTrend       []weekPointResponse     `json:"weeklyTrend"`
	PerHabit          []habitRateResponse     `json:"perHabit"`
	Categories        []categoryShareResponse `json:"categories"`
}

func toOverviewResponse(o *stats.Overview) overviewResponse {
	out := overviewResponse{
		Days:              o.Days,
		TotalHabits:       o.TotalHabits,
		TodayRate:         o.TodayRate,
		WeeklyCompletion:  o.WeeklyCompletion,
		PerfectDayStreak:  o.PerfectDayStreak,
		BestPerfectStreak: o.BestPerfectStreak,
		Series:            make([]dayPointResponse, len(o.Series)),
		WeeklyTrend:       make([]weekPointResponse, len(o.WeeklyTrend)),
		PerHabit:          make([]habitRateResponse, len(o.PerHabit)),
		Categories:        make([]categoryShareResponse, len(o.Categories)),
	}
	for i, p := range o.Series {
		out.Series[i] = dayPointResponse(p)
	}
	for i, p := range o.WeeklyTrend {
		out.WeeklyTrend[i] = weekPointResponse(p)
	}
	for i, p := range o.PerHabit {
		out.PerHabit[i] = habitRateResponse(p)
	}
	for i, c := range o.Categories {
		out.Categories[i] = categoryShareResponse(c)
	}
	return out
}

type calendarDayResponse struct {
	Date    domain.Date      `json:"date"`
	Status  domain.DayStatus `json:"status"`
	Percent float64          `json:"percent"`
}

type calendarResponse struct {
	Year    int                   `json:"year"`
	Month   int                   `json:"month"`
	HabitID *uuid.UUID            `json:"habitId,omitempty"`
	Days    []calendarDayResponse `json:"days"`
}

func toCalendarResponse(c *stats.Calendar) calendarResponse {
	out := calendarResponse{
		Year:    c.Year,
		Month:   int(c.Month),
		HabitID: c.HabitID,
		Days:    make([]calendarDayResponse, len(c.Days)),
	}
	for i, d := range c.Days {
		out.Days[i] = toCalendarDay(d)
	}
	return out
}

func toCalendarDay(d analytics.CalendarDay) calendarDayResponse {
	return calendarDayResponse{Date: d.Date, Status: d.Status, Percent: d.Percent}
}

type suggestionResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Color       string   `json:"color"`
	Reasoning   string   `json:"reasoning"`
	Confidence  float64  `json:"confidence"`
	Tags        []string `json:"tags"`
}

type insightResponse struct {
	ID          string             `json:"id"`
	Type        domain.InsightType `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Confidence  float64            `json:"confidence"`
	CreatedAt   time.Time          `json:"createdAt"`
}

type motivationResponse struct {
	HabitID        uuid.UUID `json:"habitId"`
	Message        string    `json:"message"`
	Streak         int       `json:"streak"`
	CompletionRate float64   `json:"completionRate"`
	Generated      bool      `json:"generated"`
}

type aiStatusResponse struct {
	Configured bool   `json:"configured"`
	Enabled    bool   `json:"enabled"`
	Model      string `json:"model"`
	Connected  bool   `json:"connected"`
	Error      string `json:"error,omitempty"`
}

func toAIStatusResponse(s suggestion.Status) aiStatusResponse {
	return aiStatusResponse(s)
}
