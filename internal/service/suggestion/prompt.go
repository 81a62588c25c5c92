package suggestion

import (
	"encoding/json"
	"fmt"
	"strings"
)

const suggestionsSystem = `You are a habit formation expert. You MUST respond with ONLY valid JSON, no explanations, no markdown, no additional text. Return exactly this format: [{"name":"Exercise","description":"Daily workout","category":"Health","color":"#3B82F6","reasoning":"Improves health","confidence":0.8,"tags":["fitness"]}]. No trailing commas.`

const insightsSystem = `You are a data analyst specializing in habit tracking. You MUST respond with ONLY valid JSON, no explanations, no markdown, no additional text. Return exactly this format: [{"type":"pattern","title":"Insight Title","description":"Brief insight","confidence":0.8}]. Valid types: "pattern","suggestion","correlation","prediction". No trailing commas.`

const motivationSystem = `Generate a short, encouraging message for a habit tracker user. Be positive and motivating. Keep it under 50 words.`

const connectionPrompt = `Hello, please respond with "Connection successful"`

func suggestionsPrompt(habits []string, rate float64, count int) string {
	list := "None"
	if len(habits) > 0 {
		list = strings.Join(habits, ", ")
	}
	return fmt.Sprintf("Current habits: %s. Recent completion rate: %.0f%%. Generate %d complementary habit suggestions. Respond with ONLY the JSON array, no additional text.",
		list, rate, count)
}

func insightsPrompt(data analysisData, analysis, timeframe string) (string, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal analysis data: %w", err)
	}
	return fmt.Sprintf("Analyze this habit data: %s. Generate insights for %s over %s. Respond with ONLY the JSON array, no additional text.",
		b, analysis, timeframe), nil
}

func motivationPrompt(habitName string, streak int, rate float64) string {
	return fmt.Sprintf("Habit: %s, Current streak: %d days, Completion rate: %.0f%%. Generate an encouraging message.",
		habitName, streak, rate)
}
