package model

import (
	"testing"
	"time"
)

func TestExercise_DateString(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"padded day", time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC), "Thu Jan 05 2023"},
		{"end of year", time.Date(1990, time.December, 31, 0, 0, 0, 0, time.UTC), "Mon Dec 31 1990"},
		{"leap day", time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), "Thu Feb 29 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Exercise{Date: tt.date}
			if got := e.DateString(); got != tt.want {
				t.Errorf("DateString() = %q, want %q", got, tt.want)
			}
		})
	}
}
