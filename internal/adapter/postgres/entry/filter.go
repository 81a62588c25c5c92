package entry

import (
	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// applyFilter adds the EntryFilter conditions to qb. Dates are inclusive.
func applyFilter(qb squirrel.SelectBuilder, f domain.EntryFilter) squirrel.SelectBuilder {
	if f.StartDate != nil {
		qb = qb.Where(squirrel.GtOrEq{"date": f.StartDate.Time()})
	}
	if f.EndDate != nil {
		qb = qb.Where(squirrel.LtOrEq{"date": f.EndDate.Time()})
	}
	if f.Completed != nil {
		qb = qb.Where(squirrel.Eq{"completed": *f.Completed})
	}
	return qb
}
