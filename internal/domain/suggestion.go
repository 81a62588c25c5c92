package domain

import "time"

// Suggestion is an LLM-proposed habit.
type Suggestion struct {
	ID          string
	Name        string
	Description string
	Category    string
	Color       string
	Reasoning   string
	Confidence  float64
	Tags        []string
}

// Insight is an LLM-generated observation about the user's habit data.
type Insight struct {
	ID          string
	Type        InsightType
	Title       string
	Description string
	Confidence  float64
	CreatedAt   time.Time
}

// InsightRequest selects the data window and the kind of analysis.
type InsightRequest struct {
	Timeframe    Timeframe
	AnalysisType AnalysisType
}
