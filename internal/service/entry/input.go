package entry

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// UpsertEntryInput sets the completion state of one habit on one day.
type UpsertEntryInput struct {
	HabitID   uuid.UUID
	Date      domain.Date
	Completed bool
}

// Validate checks all fields and collects all errors.
func (i UpsertEntryInput) Validate() error {
	if errs := i.fieldErrors(""); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpsertEntryInput) fieldErrors(prefix string) []domain.FieldError {
	var errs []domain.FieldError
	if i.HabitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: prefix + "habitId", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: prefix + "date", Message: "required"})
	}
	return errs
}

func (i UpsertEntryInput) upsert() domain.EntryUpsert {
	return domain.EntryUpsert{HabitID: i.HabitID, Date: i.Date, Completed: i.Completed}
}

// EntryKeyInput addresses a single entry.
type EntryKeyInput struct {
	HabitID uuid.UUID
	Date    domain.Date
}

// Validate checks all fields and collects all errors.
func (i EntryKeyInput) Validate() error {
	return UpsertEntryInput{HabitID: i.HabitID, Date: i.Date}.Validate()
}

// BulkUpsertInput holds many entry writes.
type BulkUpsertInput struct {
	Entries []UpsertEntryInput
}

// Validate checks every entry and prefixes field names with the item index.
func (i BulkUpsertInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Entries) == 0 {
		errs = append(errs, domain.FieldError{Field: "entries", Message: "must contain at least one item"})
	}
	if len(i.Entries) > MaxBulkEntries {
		errs = append(errs, domain.FieldError{Field: "entries", Message: fmt.Sprintf("max %d items", MaxBulkEntries)})
	}
	for idx, e := range i.Entries {
		errs = append(errs, e.fieldErrors(fmt.Sprintf("entries[%d].", idx))...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListEntriesInput selects entries either for one habit or for a date range.
// HabitID wins when both are given.
type ListEntriesInput struct {
	HabitID   *uuid.UUID
	StartDate *domain.Date
	EndDate   *domain.Date
	Completed *bool
	HabitIDs  []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ListEntriesInput) Validate() error {
	var errs []domain.FieldError

	if i.HabitID == nil && (i.StartDate == nil || i.EndDate == nil) {
		errs = append(errs, domain.FieldError{Field: "query", Message: "either habitId or both startDate and endDate are required"})
	}
	errs = append(errs, validateRange(i.StartDate, i.EndDate)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListEntriesInput) filter() domain.EntryFilter {
	return domain.EntryFilter{StartDate: i.StartDate, EndDate: i.EndDate, Completed: i.Completed}
}

// HabitEntriesInput lists the entries of one habit.
type HabitEntriesInput struct {
	HabitID   uuid.UUID
	StartDate *domain.Date
	EndDate   *domain.Date
	Completed *bool
}

// Validate checks all fields and collects all errors.
func (i HabitEntriesInput) Validate() error {
	var errs []domain.FieldError

	if i.HabitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "habitId", Message: "required"})
	}
	errs = append(errs, validateRange(i.StartDate, i.EndDate)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// HabitStatsInput requests completion stats for one habit.
// Zero Days means DefaultStatsDays.
type HabitStatsInput struct {
	HabitID uuid.UUID
	Days    int
}

// Validate checks all fields and collects all errors.
func (i HabitStatsInput) Validate() error {
	var errs []domain.FieldError

	if i.HabitID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "habitId", Message: "required"})
	}
	if i.Days < 0 || i.Days > MaxStatsDays {
		errs = append(errs, domain.FieldError{Field: "days", Message: fmt.Sprintf("must be between 1 and %d", MaxStatsDays)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i HabitStatsInput) days() int {
	if i.Days == 0 {
		return DefaultStatsDays
	}
	return i.Days
}

func validateRange(start, end *domain.Date) []domain.FieldError {
	if start != nil && end != nil && start.After(*end) {
		return []domain.FieldError{{Field: "endDate", Message: "must not be before startDate"}}
	}
	return nil
}
