package entity

import "time"

// Log is a user's identity joined with a filtered view of their entries.
// Count always equals len(Items).
type Log struct {
	UserID   string
	Username string
	Count    int
	Items    []LogItem
}

// LogItem is one entry as shown in a Log.
type LogItem struct {
	Description string
	Duration    int
	Date        time.Time
}

// AddedExercise is the result of appending an entry: the owning user's
// identity plus the stored entry fields.
type AddedExercise struct {
	UserID      string
	Username    string
	Description string
	Duration    int
	Date        time.Time
}
