package recurrence_test

import (
	"testing"
	"time"

	"gtd-task-management/pkg/recurrence"
)

func TestNextDaily(t *testing.T) {
	rule := recurrence.Rule{Frequency: recurrence.Daily}
	after := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	next, ok := rule.Next(after)
	if !ok {
		t.Fatalf("expected daily rule to recur")
	}
	want := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("daily next = %v, want %v", next, want)
	}
}

func TestNextWeekly(t *testing.T) {
	// Wednesday, May 1, 2024
	after := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		days []time.Weekday
		want time.Time
	}{
		{
			name: "Next allowed weekday later this week",
			days: []time.Weekday{time.Monday, time.Friday},
			want: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), // Friday
		},
		{
			name: "Wraps to next week",
			days: []time.Weekday{time.Monday},
			want: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Same weekday goes a full week out",
			days: []time.Weekday{time.Wednesday},
			want: time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Empty set defaults to seven days",
			days: nil,
			want: time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := recurrence.Rule{Frequency: recurrence.Weekly, DaysOfWeek: tt.days}
			next, ok := rule.Next(after)
			if !ok {
				t.Fatalf("expected weekly rule to recur")
			}
			if !next.Equal(tt.want) {
				t.Errorf("weekly next = %v, want %v", next, tt.want)
			}
		})
	}
}

func TestNextMonthly(t *testing.T) {
	t.Run("Day of month later this month", func(t *testing.T) {
		rule := recurrence.Rule{Frequency: recurrence.Monthly, DayOfMonth: 15}
		after := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		next, _ := rule.Next(after)
		want := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
		if !next.Equal(want) {
			t.Errorf("monthly next = %v, want %v", next, want)
		}
	})

	t.Run("Day of month rolls to next month", func(t *testing.T) {
		rule := recurrence.Rule{Frequency: recurrence.Monthly, DayOfMonth: 15}
		after := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
		next, _ := rule.Next(after)
		want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		if !next.Equal(want) {
			t.Errorf("monthly next = %v, want %v", next, want)
		}
	})

	t.Run("Day 31 clamps to short month", func(t *testing.T) {
		rule := recurrence.Rule{Frequency: recurrence.Monthly, DayOfMonth: 31}
		after := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
		next, _ := rule.Next(after)
		want := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC) // leap year
		if !next.Equal(want) {
			t.Errorf("monthly next = %v, want %v", next, want)
		}
	})

	t.Run("Day 31 does not skip February", func(t *testing.T) {
		rule := recurrence.Rule{Frequency: recurrence.Monthly, DayOfMonth: 31}
		after := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)
		next, _ := rule.Next(after)
		want := time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)
		if !next.Equal(want) {
			t.Errorf("monthly next = %v, want %v", next, want)
		}
	})

	t.Run("Second Tuesday", func(t *testing.T) {
		rule := recurrence.Rule{
			Frequency: recurrence.Monthly,
			Nth:       &recurrence.NthWeekday{N: 2, Weekday: time.Tuesday},
		}
		after := time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC) // second Tuesday of May
		next, _ := rule.Next(after)
		want := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC) // second Tuesday of June
		if !next.Equal(want) {
			t.Errorf("monthly nth next = %v, want %v", next, want)
		}
	})

	t.Run("Fifth Friday falls back to last occurrence", func(t *testing.T) {
		rule := recurrence.Rule{
			Frequency: recurrence.Monthly,
			Nth:       &recurrence.NthWeekday{N: 5, Weekday: time.Friday},
		}
		after := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC) // May 2024 has 5 Fridays, last is the 31st
		next, _ := rule.Next(after)
		want := time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC) // June has only 4 Fridays
		if !next.Equal(want) {
			t.Errorf("monthly nth next = %v, want %v", next, want)
		}
	})
}

func TestNextYearly(t *testing.T) {
	rule := recurrence.Rule{Frequency: recurrence.Yearly, DayOfYear: 60}

	t.Run("Later this year", func(t *testing.T) {
		after := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		next, _ := rule.Next(after)
		want := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC) // day 60 of leap year
		if !next.Equal(want) {
			t.Errorf("yearly next = %v, want %v", next, want)
		}
	})

	t.Run("Rolls to next year", func(t *testing.T) {
		after := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
		next, _ := rule.Next(after)
		want := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) // day 60 of non-leap year
		if !next.Equal(want) {
			t.Errorf("yearly next = %v, want %v", next, want)
		}
	})
}

func TestNoRecurrence(t *testing.T) {
	rule := recurrence.Rule{}
	if rule.Recurs() {
		t.Errorf("zero rule should not recur")
	}
	if _, ok := rule.Next(time.Now()); ok {
		t.Errorf("zero rule should have no next occurrence")
	}
}
