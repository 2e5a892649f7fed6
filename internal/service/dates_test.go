package service

import (
	"testing"
	"time"
)

func TestParseCalendarDate(t *testing.T) {
	jan5 := time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{"iso date", "2023-01-05", jan5, false},
		{"slash separated", "2023/01/05", jan5, false},
		{"display string", "Thu Jan 05 2023", jan5, false},
		{"display string unpadded", "Thu Jan 5 2023", jan5, false},
		{"long form", "January 5, 2023", jan5, false},
		{"rfc3339 keeps written day", "2023-01-05T23:30:00-06:00", jan5, false},
		{"surrounding whitespace", "  2023-01-05  ", jan5, false},
		{"empty", "", time.Time{}, true},
		{"garbage", "not-a-date", time.Time{}, true},
		{"partial", "2023-01", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCalendarDate(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseCalendarDate(%q) expected error, got %v", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCalendarDate(%q) unexpected error: %v", tt.raw, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseCalendarDate(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

// A bare ISO date must come back as the same calendar day regardless of the
// host timezone: this is the off-by-one-day class the parser guards against.
func TestParseCalendarDate_NoTimezoneShift(t *testing.T) {
	got, err := parseCalendarDate("2023-01-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Day() != 5 || got.Month() != time.January || got.Year() != 2023 {
		t.Errorf("calendar day shifted: got %v", got)
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("expected midnight, got %v", got)
	}
}

func TestToday_IsMidnight(t *testing.T) {
	got := today()
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("today() = %v, want midnight", got)
	}
	if got.Location() != time.UTC {
		t.Errorf("today() location = %v, want UTC", got.Location())
	}
}
