package habit

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// CreateHabitInput holds the parameters for creating a habit.
type CreateHabitInput struct {
	Name        string
	Description *string
	Category    string
	Color       string
	IsActive    *bool
}

// Validate checks all fields and collects all errors.
func (i CreateHabitInput) Validate() error {
	errs := i.fieldErrors("")
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateHabitInput) fieldErrors(prefix string) []domain.FieldError {
	var errs []domain.FieldError
	errs = append(errs, validateName(prefix, i.Name)...)
	errs = append(errs, validateDescription(prefix, i.Description)...)
	errs = append(errs, validateCategory(prefix, i.Category)...)
	errs = append(errs, validateColor(prefix, i.Color)...)
	return errs
}

func (i CreateHabitInput) toHabit() *domain.Habit {
	active := true
	if i.IsActive != nil {
		active = *i.IsActive
	}
	return &domain.Habit{
		Name:        strings.TrimSpace(i.Name),
		Description: domain.TrimOrNil(i.Description),
		Category:    strings.TrimSpace(i.Category),
		Color:       domain.NormalizeColor(i.Color),
		IsActive:    active,
	}
}

// BulkCreateHabitsInput holds several habits created in one transaction.
type BulkCreateHabitsInput struct {
	Habits []CreateHabitInput
}

// Validate checks every habit and prefixes field names with the item index.
func (i BulkCreateHabitsInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Habits) == 0 {
		errs = append(errs, domain.FieldError{Field: "habits", Message: "required"})
	}
	if len(i.Habits) > MaxBulkHabits {
		errs = append(errs, domain.FieldError{Field: "habits", Message: fmt.Sprintf("max %d items", MaxBulkHabits)})
	}
	for idx, h := range i.Habits {
		errs = append(errs, h.fieldErrors(fmt.Sprintf("habits[%d].", idx))...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateHabitInput holds the parameters for updating a habit.
type UpdateHabitInput struct {
	HabitID     uuid.UUID
	Name        *string
	Description *string // nil = don't change; ptr("") = clear
	Category    *string
	Color       *string
	IsActive    *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateHabitInput) Validate() error {
	var errs []domain.FieldError

	if i.HabitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.params().IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = append(errs, validateName("", *i.Name)...)
	}
	errs = append(errs, validateDescription("", i.Description)...)
	if i.Category != nil {
		errs = append(errs, validateCategory("", *i.Category)...)
	}
	if i.Color != nil {
		errs = append(errs, validateColor("", *i.Color)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateHabitInput) params() domain.HabitUpdateParams {
	p := domain.HabitUpdateParams{IsActive: i.IsActive}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		p.Name = &name
	}
	if i.Description != nil {
		desc := strings.TrimSpace(*i.Description)
		p.Description = &desc
	}
	if i.Category != nil {
		cat := strings.TrimSpace(*i.Category)
		p.Category = &cat
	}
	if i.Color != nil {
		color := domain.NormalizeColor(*i.Color)
		p.Color = &color
	}
	return p
}

// ListHabitsInput filters a habit listing.
type ListHabitsInput struct {
	IsActive *bool
	Category *string
}

func (i ListHabitsInput) filter() domain.HabitFilter {
	f := domain.HabitFilter{IsActive: i.IsActive}
	if i.Category != nil {
		cat := strings.TrimSpace(*i.Category)
		f.Category = &cat
	}
	return f
}

// Validate checks all fields and collects all errors.
func (i ListHabitsInput) Validate() error {
	if i.Category != nil {
		if errs := validateCategory("", *i.Category); len(errs) > 0 {
			return &domain.ValidationError{Errors: errs}
		}
	}
	return nil
}

func validateName(prefix, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return []domain.FieldError{{Field: prefix + "name", Message: "required"}}
	}
	if utf8.RuneCountInString(name) > domain.MaxHabitNameLen {
		return []domain.FieldError{{Field: prefix + "name", Message: fmt.Sprintf("max %d characters", domain.MaxHabitNameLen)}}
	}
	return nil
}

func validateDescription(prefix string, desc *string) []domain.FieldError {
	if desc != nil && utf8.RuneCountInString(strings.TrimSpace(*desc)) > domain.MaxHabitDescriptionLen {
		return []domain.FieldError{{Field: prefix + "description", Message: fmt.Sprintf("max %d characters", domain.MaxHabitDescriptionLen)}}
	}
	return nil
}

func validateCategory(prefix, category string) []domain.FieldError {
	category = strings.TrimSpace(category)
	if category == "" {
		return []domain.FieldError{{Field: prefix + "category", Message: "required"}}
	}
	if utf8.RuneCountInString(category) > domain.MaxHabitCategoryLen {
		return []domain.FieldError{{Field: prefix + "category", Message: fmt.Sprintf("max %d characters", domain.MaxHabitCategoryLen)}}
	}
	return nil
}

func validateColor(prefix, color string) []domain.FieldError {
	if !domain.IsValidColor(strings.TrimSpace(color)) {
		return []domain.FieldError{{Field: prefix + "color", Message: "must be a hex color like #FF0000"}}
	}
	return nil
}
