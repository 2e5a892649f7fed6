package service

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/exertrack/exertrack/internal/model"
)

// LogQuery holds the validated optional parameters of a log query. A nil
// bound or zero limit means the parameter was absent or failed validation;
// either way it simply does not participate in filtering.
type LogQuery struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// active reports whether at least one parameter survived validation.
// When false the full log is returned in stored order.
func (q LogQuery) active() bool {
	return q.From != nil || q.To != nil || q.Limit > 0
}

// parseLogQuery validates each raw parameter independently. A malformed
// value degrades to "absent" and never fails the request: a bad limit must
// not disable a valid date range, and vice versa.
func parseLogQuery(fromRaw, toRaw, limitRaw string) LogQuery {
	var q LogQuery

	if from, err := parseCalendarDate(fromRaw); err == nil {
		q.From = &from
	}
	if to, err := parseCalendarDate(toRaw); err == nil {
		q.To = &to
	}
	if limit, err := strconv.Atoi(strings.TrimSpace(limitRaw)); err == nil && limit > 0 {
		q.Limit = limit
	}

	return q
}

// sortByDate returns the entries sorted ascending by date. The sort is
// stable so same-day entries keep their insertion order. The input slice
// is not modified.
func sortByDate(entries []model.Exercise) []model.Exercise {
	sorted := make([]model.Exercise, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	return sorted
}

// filterByRange keeps entries within the inclusive [from, to] bounds.
// A nil bound leaves that side open.
func filterByRange(entries []model.Exercise, from, to *time.Time) []model.Exercise {
	if from == nil && to == nil {
		return entries
	}

	filtered := make([]model.Exercise, 0, len(entries))
	for _, e := range entries {
		if from != nil && e.Date.Before(*from) {
			continue
		}
		if to != nil && e.Date.After(*to) {
			continue
		}
		filtered = append(filtered, e)
	}

	return filtered
}

// limitEntries keeps the first n entries. Applied strictly after date
// filtering and sorting, so the earliest n qualifying entries win.
func limitEntries(entries []model.Exercise, n int) []model.Exercise {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}

// applyLogQuery runs the filter pipeline over a full log. With no active
// parameter the log passes through untouched in stored order; otherwise it
// is sorted ascending by date, range-filtered, then truncated.
func applyLogQuery(entries []model.Exercise, q LogQuery) []model.Exercise {
	if !q.active() {
		return entries
	}

	result := sortByDate(entries)
	result = filterByRange(result, q.From, q.To)
	result = limitEntries(result, q.Limit)

	return result
}
