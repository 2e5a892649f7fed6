package service

import (
	"testing"
	"time"

	"github.com/exertrack/exertrack/internal/model"
)

func day(t *testing.T, raw string) time.Time {
	t.Helper()
	parsed, err := parseCalendarDate(raw)
	if err != nil {
		t.Fatalf("bad test date %q: %v", raw, err)
	}
	return parsed
}

// testLog returns five entries whose insertion order deliberately differs
// from date order.
func testLog(t *testing.T) []model.Exercise {
	t.Helper()
	base := time.Date(2023, time.March, 1, 10, 0, 0, 0, time.UTC)
	return []model.Exercise{
		{ID: "e1", Description: "swim", Duration: 45, Date: day(t, "2023-01-20"), CreatedAt: base},
		{ID: "e2", Description: "run", Duration: 30, Date: day(t, "2023-01-05"), CreatedAt: base.Add(time.Minute)},
		{ID: "e3", Description: "lift", Duration: 60, Date: day(t, "2023-02-10"), CreatedAt: base.Add(2 * time.Minute)},
		{ID: "e4", Description: "walk", Duration: 20, Date: day(t, "2023-01-05"), CreatedAt: base.Add(3 * time.Minute)},
		{ID: "e5", Description: "row", Duration: 25, Date: day(t, "2023-01-31"), CreatedAt: base.Add(4 * time.Minute)},
	}
}

func ids(entries []model.Exercise) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func assertOrder(t *testing.T, entries []model.Exercise, want ...string) {
	t.Helper()
	got := ids(entries)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestParseLogQuery(t *testing.T) {
	tests := []struct {
		name      string
		from, to  string
		limit     string
		wantFrom  bool
		wantTo    bool
		wantLimit int
	}{
		{"all empty", "", "", "", false, false, 0},
		{"all valid", "2023-01-01", "2023-01-31", "5", true, true, 5},
		{"bad from keeps others", "nope", "2023-01-31", "5", false, true, 5},
		{"bad to keeps others", "2023-01-01", "nope", "5", true, false, 5},
		{"bad limit keeps dates", "2023-01-01", "2023-01-31", "abc", true, true, 0},
		{"zero limit invalid", "", "", "0", false, false, 0},
		{"negative limit invalid", "", "", "-5", false, false, 0},
		{"limit with spaces", "", "", " 2 ", false, false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := parseLogQuery(tt.from, tt.to, tt.limit)
			if (q.From != nil) != tt.wantFrom {
				t.Errorf("From presence = %v, want %v", q.From != nil, tt.wantFrom)
			}
			if (q.To != nil) != tt.wantTo {
				t.Errorf("To presence = %v, want %v", q.To != nil, tt.wantTo)
			}
			if q.Limit != tt.wantLimit {
				t.Errorf("Limit = %d, want %d", q.Limit, tt.wantLimit)
			}
		})
	}
}

func TestLogQuery_Active(t *testing.T) {
	if (LogQuery{}).active() {
		t.Error("empty query should be inactive")
	}

	from := time.Now()
	if !(LogQuery{From: &from}).active() {
		t.Error("query with From should be active")
	}
	if !(LogQuery{Limit: 1}).active() {
		t.Error("query with Limit should be active")
	}
}

func TestSortByDate(t *testing.T) {
	entries := testLog(t)
	sorted := sortByDate(entries)

	// Stable: e2 and e4 share a date and keep insertion order.
	assertOrder(t, sorted, "e2", "e4", "e1", "e5", "e3")

	// Input untouched.
	assertOrder(t, entries, "e1", "e2", "e3", "e4", "e5")
}

func TestFilterByRange(t *testing.T) {
	entries := sortByDate(testLog(t))
	from := day(t, "2023-01-05")
	to := day(t, "2023-01-31")

	t.Run("both bounds inclusive", func(t *testing.T) {
		assertOrder(t, filterByRange(entries, &from, &to), "e2", "e4", "e1", "e5")
	})

	t.Run("from only", func(t *testing.T) {
		after := day(t, "2023-01-21")
		assertOrder(t, filterByRange(entries, &after, nil), "e5", "e3")
	})

	t.Run("to only", func(t *testing.T) {
		before := day(t, "2023-01-20")
		assertOrder(t, filterByRange(entries, nil, &before), "e2", "e4", "e1")
	})

	t.Run("no bounds", func(t *testing.T) {
		assertOrder(t, filterByRange(entries, nil, nil), "e2", "e4", "e1", "e5", "e3")
	})

	t.Run("empty range", func(t *testing.T) {
		lo := day(t, "2024-01-01")
		if got := filterByRange(entries, &lo, nil); len(got) != 0 {
			t.Errorf("expected empty result, got %v", ids(got))
		}
	})
}

func TestLimitEntries(t *testing.T) {
	entries := sortByDate(testLog(t))

	t.Run("keeps earliest n", func(t *testing.T) {
		assertOrder(t, limitEntries(entries, 2), "e2", "e4")
	})

	t.Run("larger than log", func(t *testing.T) {
		if got := limitEntries(entries, 100); len(got) != 5 {
			t.Errorf("expected 5 entries, got %d", len(got))
		}
	})

	t.Run("zero is no-op", func(t *testing.T) {
		if got := limitEntries(entries, 0); len(got) != 5 {
			t.Errorf("expected 5 entries, got %d", len(got))
		}
	})
}

func TestApplyLogQuery(t *testing.T) {
	entries := testLog(t)

	t.Run("inactive query passes through in stored order", func(t *testing.T) {
		got := applyLogQuery(entries, LogQuery{})
		assertOrder(t, got, "e1", "e2", "e3", "e4", "e5")
	})

	t.Run("limit alone sorts then truncates", func(t *testing.T) {
		got := applyLogQuery(entries, LogQuery{Limit: 2})
		assertOrder(t, got, "e2", "e4")
	})

	t.Run("range and limit compose", func(t *testing.T) {
		from := day(t, "2023-01-06")
		to := day(t, "2023-02-28")
		got := applyLogQuery(entries, LogQuery{From: &from, To: &to, Limit: 2})
		assertOrder(t, got, "e1", "e5")
	})

	t.Run("range excluding everything yields empty", func(t *testing.T) {
		from := day(t, "2025-01-01")
		got := applyLogQuery(entries, LogQuery{From: &from})
		if len(got) != 0 {
			t.Errorf("expected empty result, got %v", ids(got))
		}
	})
}
