// Package entity defines the domain entities for the exercises feature.
package entity

import "time"

// Exercise is a single entry in a user's log. Entries are immutable once stored.
type Exercise struct {
	ID          string
	UserID      string
	Description string
	// Duration is in minutes. The store rejects values below 1.
	Duration int
	// Date is UTC midnight of the entry's calendar day.
	Date time.Time
}

// EntryInput is an append request as received from the client. Every field is
// raw text. DateSet marks a date field that was sent, even if empty.
type EntryInput struct {
	Description string
	Duration    string
	Date        string
	DateSet     bool
}

// HasDate reports whether the client supplied a date.
func (in EntryInput) HasDate() bool {
	return in.DateSet || in.Date != ""
}

// LogParams are the raw log filters from the query string. Empty From and To
// mean absent. LimitSet marks a limit parameter that was sent, even if empty.
type LogParams struct {
	From     string
	To       string
	Limit    string
	LimitSet bool
}

// HasLimit reports whether the client supplied a limit.
func (p LogParams) HasLimit() bool {
	return p.LimitSet || p.Limit != ""
}
