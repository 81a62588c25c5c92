package domain

import (
	"time"

	"github.com/google/uuid"
)

// Field limits shared by every backend.
const (
	MaxHabitNameLen        = 255
	MaxHabitDescriptionLen = 1000
	MaxHabitCategoryLen    = 100
)

// Habit is a user-defined recurring activity.
type Habit struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Category    string
	Color       string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HabitUpdateParams holds a partial habit update. Nil fields keep their value.
// Description set to ptr("") clears it.
type HabitUpdateParams struct {
	Name        *string
	Description *string
	Category    *string
	Color       *string
	IsActive    *bool
}

// IsEmpty reports whether no field is set.
func (p HabitUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Category == nil && p.Color == nil && p.IsActive == nil
}

// Apply returns a copy of h with the set fields of p applied.
func (p HabitUpdateParams) Apply(h Habit) Habit {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Description != nil {
		if *p.Description == "" {
			h.Description = nil
		} else {
			d := *p.Description
			h.Description = &d
		}
	}
	if p.Category != nil {
		h.Category = *p.Category
	}
	if p.Color != nil {
		h.Color = *p.Color
	}
	if p.IsActive != nil {
		h.IsActive = *p.IsActive
	}
	return h
}

// HabitWithStats is a habit with entry totals over a trailing window.
type HabitWithStats struct {
	Habit
	TotalEntries     int
	CompletedEntries int
	CompletionRate   float64
}

// CategoryCount is the number of active habits in a category.
type CategoryCount struct {
	Category string
	Count    int
}

// StandardCategories is the fixed category set accepted by the local backend.
var StandardCategories = []string{
	"Health",
	"Fitness",
	"Mindfulness",
	"Productivity",
	"Learning",
	"Finance",
	"Social",
	"Home",
	"Creative",
	"Other",
}

// IsStandardCategory reports whether c belongs to StandardCategories.
func IsStandardCategory(c string) bool {
	for _, s := range StandardCategories {
		if s == c {
			return true
		}
	}
	return false
}
