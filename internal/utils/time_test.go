package utils

import (
	"testing"
	"time"
)

func TestDayKeyIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+13", 13*60*60)
	// 23:30 local on Jan 2 is already Jan 2 in UTC+13 but still Jan 2
	// 10:30 in UTC.
	local := time.Date(2025, 1, 2, 23, 30, 0, 0, loc)
	if got := DayKey(local); got != "2025-01-02" {
		t.Errorf("DayKey() = %s, want 2025-01-02", got)
	}

	// 00:30 local on Jan 3 is still Jan 2 in UTC.
	local = time.Date(2025, 1, 3, 0, 30, 0, 0, loc)
	if got := DayKey(local); got != "2025-01-02" {
		t.Errorf("DayKey() = %s, want 2025-01-02", got)
	}
}

func TestParseDayRoundTrip(t *testing.T) {
	day, err := ParseDay("2025-09-01")
	if err != nil {
		t.Fatalf("ParseDay() error: %v", err)
	}
	if day.Location() != time.UTC {
		t.Errorf("ParseDay() location = %v, want UTC", day.Location())
	}
	if got := DayKey(day); got != "2025-09-01" {
		t.Errorf("round trip = %s, want 2025-09-01", got)
	}

	if _, err := ParseDay("not-a-date"); err == nil {
		t.Error("ParseDay() expected error for garbage input")
	}
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		anchor string
		months int
		want   string
	}{
		{"2025-01-31", 1, "2025-02-28"},
		{"2025-01-31", 2, "2025-03-31"},
		{"2025-01-31", 3, "2025-04-30"},
		{"2024-01-31", 1, "2024-02-29"}, // leap year
		{"2025-01-15", 1, "2025-02-15"},
		{"2025-11-30", 3, "2026-02-28"}, // across year boundary
		{"2025-05-10", 0, "2025-05-10"},
	}

	for _, tt := range tests {
		anchor, err := ParseDay(tt.anchor)
		if err != nil {
			t.Fatalf("ParseDay(%s) error: %v", tt.anchor, err)
		}
		got := DayKey(AddMonthsClamped(anchor, tt.months))
		if got != tt.want {
			t.Errorf("AddMonthsClamped(%s, %d) = %s, want %s", tt.anchor, tt.months, got, tt.want)
		}
	}
}
