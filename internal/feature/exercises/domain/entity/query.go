package entity

import "time"

// DateRange is an inclusive window of calendar days. Either bound may be nil.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// LogQuery is a retrieval plan for one user's entries: exact UserID match,
// Range filter on Date, ascending Date order, and at most Limit rows.
// Limit <= 0 means no cap.
type LogQuery struct {
	UserID string
	Range  DateRange
	Limit  int
}

// Bounded reports whether the query caps the number of rows.
func (q LogQuery) Bounded() bool {
	return q.Limit > 0
}
