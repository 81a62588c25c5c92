package domain

import (
	"fmt"
	"time"
)

// Settings is the single user's application preferences.
type Settings struct {
	Theme                  Theme       `json:"theme"`
	Notifications          bool        `json:"notifications"`
	NotificationTime       string      `json:"notificationTime"`
	SoundEnabled           bool        `json:"soundEnabled"`
	WeekStartsOn           Weekday     `json:"weekStartsOn"`
	DefaultView            View        `json:"defaultView"`
	AnimationsEnabled      bool        `json:"animationsEnabled"`
	AutoBackup             bool        `json:"autoBackup"`
	StreakGoal             int         `json:"streakGoal"`
	DailyGoal              int         `json:"dailyGoal"`
	ReminderFrequency      Frequency   `json:"reminderFrequency"`
	ColorScheme            ColorScheme `json:"colorScheme"`
	CompactMode            bool        `json:"compactMode"`
	ShowMotivationalQuotes bool        `json:"showMotivationalQuotes"`
	PrivateMode            bool        `json:"privateMode"`
	AI                     AISettings  `json:"ai"`
}

// AISettings controls the suggestion provider. The API key lives in server config.
type AISettings struct {
	Enabled             bool   `json:"enabled"`
	Model               string `json:"model"`
	AutoSuggestions     bool   `json:"autoSuggestions"`
	WeeklyInsights      bool   `json:"weeklyInsights"`
	CorrelationAnalysis bool   `json:"correlationAnalysis"`
	PredictionEnabled   bool   `json:"predictionEnabled"`
	MaxSuggestions      int    `json:"maxSuggestions"`
}

// DefaultSettings returns the settings used before the user changes anything.
func DefaultSettings() Settings {
	return Settings{
		Theme:                  ThemeSystem,
		Notifications:          true,
		NotificationTime:       "09:00",
		SoundEnabled:           true,
		WeekStartsOn:           WeekdayMonday,
		DefaultView:            ViewHabits,
		AnimationsEnabled:      true,
		AutoBackup:             false,
		StreakGoal:             7,
		DailyGoal:              100,
		ReminderFrequency:      FrequencyDaily,
		ColorScheme:            ColorSchemeDefault,
		CompactMode:            false,
		ShowMotivationalQuotes: true,
		PrivateMode:            false,
		AI: AISettings{
			Enabled:             false,
			AutoSuggestions:     true,
			WeeklyInsights:      true,
			CorrelationAnalysis: true,
			PredictionEnabled:   false,
			MaxSuggestions:      5,
		},
	}
}

// SettingsPatch is a partial settings update. Nil fields keep their value.
type SettingsPatch struct {
	Theme                  *Theme       `json:"theme,omitempty"`
	Notifications          *bool        `json:"notifications,omitempty"`
	NotificationTime       *string      `json:"notificationTime,omitempty"`
	SoundEnabled           *bool        `json:"soundEnabled,omitempty"`
	WeekStartsOn           *Weekday     `json:"weekStartsOn,omitempty"`
	DefaultView            *View        `json:"defaultView,omitempty"`
	AnimationsEnabled      *bool        `json:"animationsEnabled,omitempty"`
	AutoBackup             *bool        `json:"autoBackup,omitempty"`
	StreakGoal             *int         `json:"streakGoal,omitempty"`
	DailyGoal              *int         `json:"dailyGoal,omitempty"`
	ReminderFrequency      *Frequency   `json:"reminderFrequency,omitempty"`
	ColorScheme            *ColorScheme `json:"colorScheme,omitempty"`
	CompactMode            *bool        `json:"compactMode,omitempty"`
	ShowMotivationalQuotes *bool        `json:"showMotivationalQuotes,omitempty"`
	PrivateMode            *bool        `json:"privateMode,omitempty"`
	AI                     *AIPatch     `json:"ai,omitempty"`
}

// AIPatch is a partial AISettings update.
type AIPatch struct {
	Enabled             *bool   `json:"enabled,omitempty"`
	Model               *string `json:"model,omitempty"`
	AutoSuggestions     *bool   `json:"autoSuggestions,omitempty"`
	WeeklyInsights      *bool   `json:"weeklyInsights,omitempty"`
	CorrelationAnalysis *bool   `json:"correlationAnalysis,omitempty"`
	PredictionEnabled   *bool   `json:"predictionEnabled,omitempty"`
	MaxSuggestions      *int    `json:"maxSuggestions,omitempty"`
}

// Validate checks every set field and collects all errors.
func (p SettingsPatch) Validate() error {
	var errs []FieldError

	if p.Theme != nil && !p.Theme.IsValid() {
		errs = append(errs, FieldError{Field: "theme", Message: "must be light, dark or system"})
	}
	if p.NotificationTime != nil {
		if _, err := time.Parse("15:04", *p.NotificationTime); err != nil {
			errs = append(errs, FieldError{Field: "notificationTime", Message: "must be HH:MM"})
		}
	}
	if p.WeekStartsOn != nil && !p.WeekStartsOn.IsValid() {
		errs = append(errs, FieldError{Field: "weekStartsOn", Message: "must be sunday or monday"})
	}
	if p.DefaultView != nil && !p.DefaultView.IsValid() {
		errs = append(errs, FieldError{Field: "defaultView", Message: "must be habits, analytics or history"})
	}
	if p.StreakGoal != nil && (*p.StreakGoal < 1 || *p.StreakGoal > 365) {
		errs = append(errs, FieldError{Field: "streakGoal", Message: "must be between 1 and 365"})
	}
	if p.DailyGoal != nil && (*p.DailyGoal < 1 || *p.DailyGoal > 100) {
		errs = append(errs, FieldError{Field: "dailyGoal", Message: "must be between 1 and 100"})
	}
	if p.ReminderFrequency != nil && !p.ReminderFrequency.IsValid() {
		errs = append(errs, FieldError{Field: "reminderFrequency", Message: "must be none, daily or weekly"})
	}
	if p.ColorScheme != nil && !p.ColorScheme.IsValid() {
		errs = append(errs, FieldError{Field: "colorScheme", Message: fmt.Sprintf("unknown color scheme %q", *p.ColorScheme)})
	}
	if p.AI != nil && p.AI.MaxSuggestions != nil && (*p.AI.MaxSuggestions < 1 || *p.AI.MaxSuggestions > 10) {
		errs = append(errs, FieldError{Field: "ai.maxSuggestions", Message: "must be between 1 and 10"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// MergeSettings returns old with every set field of p applied. Neither input is modified.
func MergeSettings(old Settings, p SettingsPatch) Settings {
	s := old
	setIf(&s.Theme, p.Theme)
	setIf(&s.Notifications, p.Notifications)
	setIf(&s.NotificationTime, p.NotificationTime)
	setIf(&s.SoundEnabled, p.SoundEnabled)
	setIf(&s.WeekStartsOn, p.WeekStartsOn)
	setIf(&s.DefaultView, p.DefaultView)
	setIf(&s.AnimationsEnabled, p.AnimationsEnabled)
	setIf(&s.AutoBackup, p.AutoBackup)
	setIf(&s.StreakGoal, p.StreakGoal)
	setIf(&s.DailyGoal, p.DailyGoal)
	setIf(&s.ReminderFrequency, p.ReminderFrequency)
	setIf(&s.ColorScheme, p.ColorScheme)
	setIf(&s.CompactMode, p.CompactMode)
	setIf(&s.ShowMotivationalQuotes, p.ShowMotivationalQuotes)
	setIf(&s.PrivateMode, p.PrivateMode)

	if p.AI != nil {
		setIf(&s.AI.Enabled, p.AI.Enabled)
		setIf(&s.AI.Model, p.AI.Model)
		setIf(&s.AI.AutoSuggestions, p.AI.AutoSuggestions)
		setIf(&s.AI.WeeklyInsights, p.AI.WeeklyInsights)
		setIf(&s.AI.CorrelationAnalysis, p.AI.CorrelationAnalysis)
		setIf(&s.AI.PredictionEnabled, p.AI.PredictionEnabled)
		setIf(&s.AI.MaxSuggestions, p.AI.MaxSuggestions)
	}
	return s
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
