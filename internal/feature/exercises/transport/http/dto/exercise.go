// Package dto defines data transfer objects for the exercises feature's HTTP transport layer.
package dto

import (
	"bytes"
	"encoding/json"
	"errors"

	"exercise_tracker/internal/feature/exercises/domain/entity"
	"exercise_tracker/internal/platform/parse"
)

// FlexString is a form or JSON field kept as raw text. In JSON it accepts a
// string, a number or a boolean literal, and null as empty.
type FlexString string

var errNotScalar = errors.New("expected a string, number or boolean")

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*f = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	case len(b) > 0 && (b[0] == '{' || b[0] == '['):
		return errNotScalar
	}
	*f = FlexString(b)
	return nil
}

// AddExerciseReq is the body of POST /api/users/:id/exercises. Date is nil
// when the field is absent or JSON null.
type AddExerciseReq struct {
	Description FlexString  `form:"description" json:"description"`
	Duration    FlexString  `form:"duration" json:"duration"`
	Date        *FlexString `form:"date" json:"date"`
}

// ToInput converts the request into the usecase input.
func (r AddExerciseReq) ToInput() entity.EntryInput {
	in := entity.EntryInput{
		Description: string(r.Description),
		Duration:    string(r.Duration),
	}
	if r.Date != nil {
		in.Date = string(*r.Date)
		in.DateSet = true
	}
	return in
}

// LogReq holds the query filters of GET /api/users/:id/logs. Limit is nil
// when the parameter is absent.
type LogReq struct {
	From  string  `form:"from"`
	To    string  `form:"to"`
	Limit *string `form:"limit"`
}

// ToParams converts the request into the usecase parameters.
func (r LogReq) ToParams() entity.LogParams {
	p := entity.LogParams{From: r.From, To: r.To}
	if r.Limit != nil {
		p.Limit = *r.Limit
		p.LimitSet = true
	}
	return p
}

// AddedExerciseResponse is returned after appending an entry. ID and Username
// belong to the user.
type AddedExerciseResponse struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// FromAdded maps the append result to its response shape.
func FromAdded(a entity.AddedExercise) AddedExerciseResponse {
	return AddedExerciseResponse{
		ID:          a.UserID,
		Username:    a.Username,
		Description: a.Description,
		Duration:    a.Duration,
		Date:        parse.FormatDate(a.Date),
	}
}

// LogResponse is the body of a log request.
type LogResponse struct {
	ID       string            `json:"_id"`
	Username string            `json:"username"`
	Count    int               `json:"count"`
	Log      []LogItemResponse `json:"log"`
}

// LogItemResponse is a single entry in LogResponse.
type LogItemResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// FromLog maps an assembled log to its response shape.
func FromLog(l entity.Log) LogResponse {
	items := make([]LogItemResponse, 0, len(l.Items))
	for _, it := range l.Items {
		items = append(items, LogItemResponse{
			Description: it.Description,
			Duration:    it.Duration,
			Date:        parse.FormatDate(it.Date),
		})
	}
	return LogResponse{
		ID:       l.UserID,
		Username: l.Username,
		Count:    l.Count,
		Log:      items,
	}
}
