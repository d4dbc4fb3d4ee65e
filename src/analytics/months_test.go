package analytics

import (
	"testing"
	"time"
)

func TestMonthKey(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"zero-pads single digit months", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), "2025-03"},
		{"two digit month", time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), "2024-11"},
		{"december", time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC), "2023-12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthKey(tt.date); got != tt.want {
				t.Errorf("MonthKey(%v) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestLastMonthKeys(t *testing.T) {
	now := time.Date(2025, 2, 28, 12, 0, 0, 0, time.UTC)

	got := LastMonthKeys(now, 6)
	want := []string{"2024-09", "2024-10", "2024-11", "2024-12", "2025-01", "2025-02"}
	if len(got) != len(want) {
		t.Fatalf("got %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Keys must be strictly increasing as plain strings.
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Errorf("keys not strictly increasing: %q >= %q", got[i-1], got[i])
		}
	}
}

func TestLastMonthKeysEndOfMonthAnchor(t *testing.T) {
	// Jan 31 must not skip months when stepping backwards.
	now := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	got := LastMonthKeys(now, 3)
	want := []string{"2024-11", "2024-12", "2025-01"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMonthBounds(t *testing.T) {
	start, next := MonthBounds(2025, time.February)
	if start != time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("start = %v", start)
	}
	if next != time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("next = %v", next)
	}

	inside := time.Date(2025, 2, 28, 23, 0, 0, 0, time.UTC)
	if inside.Before(start) || !inside.Before(next) {
		t.Errorf("last day of month should fall inside the window")
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), 30},
		{time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), 31},
		{time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), 29},
		{time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), 28},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.date); got != tt.want {
			t.Errorf("DaysInMonth(%v) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{12.345, 12.35},
		{12.344, 12.34},
		{0, 0},
		{99.999, 100},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
