package domain

// HabitFilter narrows habit listings. Nil fields do not filter.
type HabitFilter struct {
	IsActive *bool
	Category *string
}

// EntryFilter narrows entry listings for one habit. Dates are inclusive.
type EntryFilter struct {
	StartDate *Date
	EndDate   *Date
	Completed *bool
}
