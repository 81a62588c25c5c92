package domain

import (
	"math"
	"regexp"
	"strings"
)

var colorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// IsValidColor reports whether c is a #RRGGBB hex color (case-insensitive).
func IsValidColor(c string) bool {
	return colorRe.MatchString(c)
}

// NormalizeColor trims and upper-cases a color code.
func NormalizeColor(c string) string {
	return strings.ToUpper(strings.TrimSpace(c))
}

// TrimOrNil trims whitespace. Returns nil if s is nil or the result is empty.
func TrimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Percent returns part/whole*100 rounded to 2 decimals, or 0 when whole is 0.
func Percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return Round2(float64(part) * 100 / float64(whole))
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
