package service

import (
	"errors"
	"strings"
	"time"

	"github.com/exertrack/exertrack/internal/model"
)

var errUnparseableDate = errors.New("unparseable calendar date")

// calendarLayouts are the accepted input forms for a calendar date. Every
// layout is parsed as a plain date with no zone information, so a bare
// "2023-01-05" always means that calendar day. Running the raw string
// through a zone-aware parser would pin it to UTC midnight and let a later
// local-time rendering shift it by a day.
var calendarLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	model.DisplayDateLayout,
	"Mon Jan 2 2006",
	"January 2, 2006",
}

// parseCalendarDate parses raw into a calendar date at midnight UTC.
func parseCalendarDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, errUnparseableDate
	}

	for _, layout := range calendarLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return midnightUTC(t), nil
	}

	// Fall back to full timestamps, keeping only the date component as
	// written (not converted to another zone first).
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return midnightUTC(t), nil
	}

	return time.Time{}, errUnparseableDate
}

// today returns the current calendar date at midnight UTC.
func today() time.Time {
	return midnightUTC(time.Now().UTC())
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
