package suggestion

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

const (
	defaultColor      = "#3B82F6"
	defaultConfidence = 0.7
)

type rawSuggestion struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Color       string   `json:"color"`
	Reasoning   string   `json:"reasoning"`
	Confidence  float64  `json:"confidence"`
	Tags        []string `json:"tags"`
}

type rawInsight struct {
	Type        domain.InsightType `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Confidence  float64            `json:"confidence"`
}

var fallbackSuggestion = rawSuggestion{
	Name:        "Try Again Later",
	Description: "AI suggestions temporarily unavailable due to formatting issue",
	Category:    "System",
	Color:       "#6B7280",
	Reasoning:   "Please refresh and try again",
	Confidence:  0.1,
	Tags:        []string{"system"},
}

var fallbackInsight = rawInsight{
	Type:        domain.InsightPattern,
	Title:       "Data Analysis Unavailable",
	Description: "Unable to generate AI insights at this time. The AI response contained invalid format. Please try again.",
	Confidence:  0.1,
}

// decodeArray unmarshals the text between the first '[' and the last ']'.
func decodeArray[T any](text string) ([]T, error) {
	text = strings.TrimSpace(text)
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON array found in response")
	}

	var out []T
	if err := json.Unmarshal([]byte(text[start:end+1]), &out); err != nil {
		return nil, fmt.Errorf("decode JSON array: %w", err)
	}
	return out, nil
}

// parseSuggestions never fails. Unparseable text yields the single fallback record.
func parseSuggestions(text string, now time.Time) []domain.Suggestion {
	raw, err := decodeArray[rawSuggestion](text)
	if err != nil {
		raw = []rawSuggestion{fallbackSuggestion}
	}

	out := make([]domain.Suggestion, 0, len(raw))
	for i, r := range raw {
		color := domain.NormalizeColor(r.Color)
		if !domain.IsValidColor(color) {
			color = defaultColor
		}
		conf := r.Confidence
		if conf <= 0 {
			conf = defaultConfidence
		}
		tags := r.Tags
		if tags == nil {
			tags = []string{}
		}
		out = append(out, domain.Suggestion{
			ID:          fmt.Sprintf("ai-suggestion-%d-%d", now.UnixMilli(), i),
			Name:        r.Name,
			Description: r.Description,
			Category:    r.Category,
			Color:       color,
			Reasoning:   r.Reasoning,
			Confidence:  conf,
			Tags:        tags,
		})
	}
	return out
}

// parseInsights never fails. Unparseable text yields the single fallback record.
func parseInsights(text string, now time.Time) []domain.Insight {
	raw, err := decodeArray[rawInsight](text)
	if err != nil {
		raw = []rawInsight{fallbackInsight}
	}

	out := make([]domain.Insight, 0, len(raw))
	for i, r := range raw {
		typ := r.Type
		if !typ.IsValid() {
			typ = domain.InsightPattern
		}
		conf := r.Confidence
		if conf <= 0 {
			conf = defaultConfidence
		}
		out = append(out, domain.Insight{
			ID:          fmt.Sprintf("ai-insight-%d-%d", now.UnixMilli(), i),
			Type:        typ,
			Title:       r.Title,
			Description: r.Description,
			Confidence:  conf,
			CreatedAt:   now,
		})
	}
	return out
}
