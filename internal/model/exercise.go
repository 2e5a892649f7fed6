// Package model defines domain entities for the application.
package model

import "time"

// DisplayDateLayout renders a calendar date the way it is exposed to API
// callers, e.g. "Thu Jan 05 2023". Raw timestamps and ISO strings never
// leave the service.
const DisplayDateLayout = "Mon Jan 02 2006"

// Exercise is a single immutable entry in a user's log. Date carries the
// calendar date only, normalized to midnight UTC; CreatedAt preserves
// insertion order within the log.
type Exercise struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// DateString renders the exercise date as a display string.
func (e *Exercise) DateString() string {
	return e.Date.Format(DisplayDateLayout)
}
