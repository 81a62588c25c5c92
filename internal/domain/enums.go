package domain

// Theme is the UI color theme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) String() string { return string(t) }

func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Weekday is the first day of the week in calendar views.
type Weekday string

const (
	WeekdaySunday Weekday = "sunday"
	WeekdayMonday Weekday = "monday"
)

func (w Weekday) String() string { return string(w) }

func (w Weekday) IsValid() bool {
	return w == WeekdaySunday || w == WeekdayMonday
}

// View is the screen shown at startup.
type View string

const (
	ViewHabits    View = "habits"
	ViewAnalytics View = "analytics"
	ViewHistory   View = "history"
)

func (v View) String() string { return string(v) }

func (v View) IsValid() bool {
	switch v {
	case ViewHabits, ViewAnalytics, ViewHistory:
		return true
	}
	return false
}

// Frequency is how often reminders fire.
type Frequency string

const (
	FrequencyNone   Frequency = "none"
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

func (f Frequency) String() string { return string(f) }

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyNone, FrequencyDaily, FrequencyWeekly:
		return true
	}
	return false
}

// ColorScheme is the accent palette.
type ColorScheme string

const (
	ColorSchemeDefault      ColorScheme = "default"
	ColorSchemeColorful     ColorScheme = "colorful"
	ColorSchemeMinimal      ColorScheme = "minimal"
	ColorSchemeHighContrast ColorScheme = "high-contrast"
)

func (c ColorScheme) String() string { return string(c) }

func (c ColorScheme) IsValid() bool {
	switch c {
	case ColorSchemeDefault, ColorSchemeColorful, ColorSchemeMinimal, ColorSchemeHighContrast:
		return true
	}
	return false
}

// DayStatus classifies a calendar day.
type DayStatus string

const (
	DayStatusPerfect      DayStatus = "perfect"
	DayStatusGreat        DayStatus = "great"
	DayStatusGood         DayStatus = "good"
	DayStatusPartial      DayStatus = "partial"
	DayStatusPoor         DayStatus = "poor"
	DayStatusNone         DayStatus = "none"
	DayStatusCompleted    DayStatus = "completed"
	DayStatusNotCompleted DayStatus = "not-completed"
)

func (s DayStatus) String() string { return string(s) }

// InsightType is the kind of an LLM-generated insight.
type InsightType string

const (
	InsightPattern     InsightType = "pattern"
	InsightSuggestion  InsightType = "suggestion"
	InsightCorrelation InsightType = "correlation"
	InsightPrediction  InsightType = "prediction"
)

func (t InsightType) IsValid() bool {
	switch t {
	case InsightPattern, InsightSuggestion, InsightCorrelation, InsightPrediction:
		return true
	}
	return false
}

// Timeframe is the analysis window of an insight request.
type Timeframe string

const (
	TimeframeWeek    Timeframe = "week"
	TimeframeMonth   Timeframe = "month"
	TimeframeQuarter Timeframe = "quarter"
	TimeframeYear    Timeframe = "year"
)

// Days returns the window length, or 0 for an unknown timeframe.
func (t Timeframe) Days() int {
	switch t {
	case TimeframeWeek:
		return 7
	case TimeframeMonth:
		return 30
	case TimeframeQuarter:
		return 90
	case TimeframeYear:
		return 365
	}
	return 0
}

func (t Timeframe) IsValid() bool { return t.Days() > 0 }

// AnalysisType is what an insight request asks for.
type AnalysisType string

const (
	AnalysisSuggestions  AnalysisType = "suggestions"
	AnalysisInsights     AnalysisType = "insights"
	AnalysisCorrelations AnalysisType = "correlations"
	AnalysisPredictions  AnalysisType = "predictions"
)

func (a AnalysisType) IsValid() bool {
	switch a {
	case AnalysisSuggestions, AnalysisInsights, AnalysisCorrelations, AnalysisPredictions:
		return true
	}
	return false
}
