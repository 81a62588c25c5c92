package rest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitflow-backend/internal/domain"
)

// queryParser collects field errors while reading path and query values.
type queryParser struct {
	r    *http.Request
	errs []domain.FieldError
}

func newQueryParser(r *http.Request) *queryParser {
	return &queryParser{r: r}
}

func (p *queryParser) fail(field, message string) {
	p.errs = append(p.errs, domain.FieldError{Field: field, Message: message})
}

// err returns the collected errors as a ValidationError, or nil.
func (p *queryParser) err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(p.errs)
}

func (p *queryParser) pathUUID(name string) uuid.UUID {
	id, err := uuid.Parse(p.r.PathValue(name))
	if err != nil {
		p.fail(name, "must be a valid UUID")
		return uuid.Nil
	}
	return id
}

func (p *queryParser) pathDate(name string) domain.Date {
	d, err := domain.ParseDate(p.r.PathValue(name))
	if err != nil {
		p.fail(name, "must be a date in YYYY-MM-DD format")
	}
	return d
}

func (p *queryParser) queryUUID(name string) *uuid.UUID {
	v := p.r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		p.fail(name, "must be a valid UUID")
		return nil
	}
	return &id
}

// queryUUIDs reads a comma separated id list.
func (p *queryParser) queryUUIDs(name string) []uuid.UUID {
	v := p.r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	var ids []uuid.UUID
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			p.fail(name, "must be a comma separated list of UUIDs")
			return nil
		}
		ids = append(ids, id)
	}
	return ids
}

func (p *queryParser) queryDate(name string) *domain.Date {
	v := p.r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	d, err := domain.ParseDate(v)
	if err != nil {
		p.fail(name, "must be a date in YYYY-MM-DD format")
		return nil
	}
	return &d
}

func (p *queryParser) queryBool(name string) *bool {
	v := p.r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(name, "must be true or false")
		return nil
	}
	return &b
}

// queryInt returns 0 when the parameter is absent.
func (p *queryParser) queryInt(name string) int {
	v := p.r.URL.Query().Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(name, "must be an integer")
		return 0
	}
	return n
}

func (p *queryParser) queryString(name string) *string {
	v := strings.TrimSpace(p.r.URL.Query().Get(name))
	if v == "" {
		return nil
	}
	return &v
}
