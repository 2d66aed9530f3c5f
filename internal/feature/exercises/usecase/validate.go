package usecase

import (
	"math"
	"time"

	"exercise_tracker/internal/feature/exercises/domain/entity"
	"exercise_tracker/internal/platform/parse"
)

// ValidEntry is an append request after validation. Duration is not range
// checked; the store rejects values below 1.
type ValidEntry struct {
	Description string
	Duration    int
	Date        time.Time
}

// ValidateEntryInput checks description, then duration, then date, and stops
// at the first failure. An empty date means the calendar day of now.
func ValidateEntryInput(in entity.EntryInput, now time.Time) (ValidEntry, error) {
	if in.Description == "" {
		return ValidEntry{}, ErrDescriptionRequired
	}
	if in.Duration == "" {
		return ValidEntry{}, ErrDurationRequired
	}
	duration, ok := parse.LeadingInt(in.Duration)
	if !ok {
		return ValidEntry{}, ErrDurationNotNumber
	}

	date := parse.Day(now)
	if in.HasDate() {
		d, ok := parse.Date(in.Date)
		if !ok {
			return ValidEntry{}, ErrDateInvalid
		}
		date = d
	}

	return ValidEntry{Description: in.Description, Duration: duration, Date: date}, nil
}

// ValidateLogQuery parses the optional from, to and limit filters, checking
// them in that order. An absent or zero limit is 0, meaning no cap. A
// negative limit caps the result at its magnitude.
func ValidateLogQuery(p entity.LogParams) (entity.DateRange, int, error) {
	var rng entity.DateRange

	if p.From != "" {
		from, ok := parse.Date(p.From)
		if !ok {
			return entity.DateRange{}, 0, ErrFromDateInvalid
		}
		rng.From = &from
	}
	if p.To != "" {
		to, ok := parse.Date(p.To)
		if !ok {
			return entity.DateRange{}, 0, ErrToDateInvalid
		}
		rng.To = &to
	}

	limit := 0
	if p.HasLimit() {
		n, ok := parse.LeadingInt(p.Limit)
		if !ok {
			return entity.DateRange{}, 0, ErrLimitNotNumber
		}
		limit = magnitude(n)
	}

	return rng, limit, nil
}

func magnitude(n int) int {
	switch {
	case n == math.MinInt:
		return math.MaxInt
	case n < 0:
		return -n
	}
	return n
}
