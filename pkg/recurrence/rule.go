package recurrence

import "time"

// Frequency is how often a rule repeats.
type Frequency string

const (
	None    Frequency = ""
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

// NthWeekday selects the Nth occurrence of a weekday within a month,
// e.g. {N: 2, Weekday: time.Tuesday} is the second Tuesday.
type NthWeekday struct {
	N       int          `json:"n"`
	Weekday time.Weekday `json:"weekday"`
}

// Rule describes how a task repeats. A zero Rule means no recurrence.
type Rule struct {
	Frequency Frequency `json:"frequency"`

	// Weekly: which weekdays the task repeats on. Empty means every 7 days.
	DaysOfWeek []time.Weekday `json:"daysOfWeek,omitempty"`

	// Monthly: either a fixed day of month (1-31, clamped to month length)
	// or an NthWeekday selector. DayOfMonth wins when both are set.
	DayOfMonth int         `json:"dayOfMonth,omitempty"`
	Nth        *NthWeekday `json:"nthWeekday,omitempty"`

	// Yearly: ordinal day of year (1-366, clamped to year length).
	DayOfYear int `json:"dayOfYear,omitempty"`
}

// Recurs reports whether the rule describes an actual repetition.
func (r Rule) Recurs() bool {
	return r.Frequency != None
}

// Next returns the first occurrence date strictly after the given time.
// The returned time is midnight in after's location. The second return
// value is false when the rule does not recur.
func (r Rule) Next(after time.Time) (time.Time, bool) {
	day := startOfDay(after)

	switch r.Frequency {
	case Daily:
		return day.AddDate(0, 0, 1), true

	case Weekly:
		return r.nextWeekly(day), true

	case Monthly:
		return r.nextMonthly(day), true

	case Yearly:
		return r.nextYearly(day), true
	}

	return time.Time{}, false
}

func (r Rule) nextWeekly(day time.Time) time.Time {
	if len(r.DaysOfWeek) == 0 {
		return day.AddDate(0, 0, 7)
	}

	allowed := make(map[time.Weekday]bool, len(r.DaysOfWeek))
	for _, wd := range r.DaysOfWeek {
		allowed[wd] = true
	}

	for i := 1; i <= 7; i++ {
		candidate := day.AddDate(0, 0, i)
		if allowed[candidate.Weekday()] {
			return candidate
		}
	}

	// Unreachable with a non-empty set, but keep the daily fallback.
	return day.AddDate(0, 0, 7)
}

func (r Rule) nextMonthly(day time.Time) time.Time {
	if r.DayOfMonth > 0 {
		this := dayInMonth(day.Year(), day.Month(), r.DayOfMonth, day.Location())
		if this.After(day) {
			return this
		}
		next := firstOfMonth(day).AddDate(0, 1, 0)
		return dayInMonth(next.Year(), next.Month(), r.DayOfMonth, day.Location())
	}

	if r.Nth != nil {
		this := nthWeekdayInMonth(day.Year(), day.Month(), r.Nth.N, r.Nth.Weekday, day.Location())
		if this.After(day) {
			return this
		}
		next := firstOfMonth(day).AddDate(0, 1, 0)
		return nthWeekdayInMonth(next.Year(), next.Month(), r.Nth.N, r.Nth.Weekday, day.Location())
	}

	// Neither selector set: same day next month.
	return day.AddDate(0, 1, 0)
}

func (r Rule) nextYearly(day time.Time) time.Time {
	ordinal := r.DayOfYear
	if ordinal <= 0 {
		return day.AddDate(1, 0, 0)
	}

	this := dayOfYear(day.Year(), ordinal, day.Location())
	if this.After(day) {
		return this
	}
	return dayOfYear(day.Year()+1, ordinal, day.Location())
}

// firstOfMonth anchors month arithmetic so AddDate cannot normalize a
// short-month overflow into the month after next.
func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// dayInMonth returns the given day of the month, clamped to the month length.
func dayInMonth(year int, month time.Month, day int, loc *time.Location) time.Time {
	last := lastDayOfMonth(year, month)
	if day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// nthWeekdayInMonth returns the Nth weekday of the month. When the month has
// no Nth occurrence the last occurrence is used instead.
func nthWeekdayInMonth(year int, month time.Month, n int, weekday time.Weekday, loc *time.Location) time.Time {
	if n < 1 {
		n = 1
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	offset := int(weekday - first.Weekday())
	if offset < 0 {
		offset += 7
	}

	candidate := first.AddDate(0, 0, offset+(n-1)*7)
	for candidate.Month() != month {
		candidate = candidate.AddDate(0, 0, -7)
	}
	return candidate
}

func dayOfYear(year, ordinal int, loc *time.Location) time.Time {
	max := 365
	if isLeapYear(year) {
		max = 366
	}
	if ordinal > max {
		ordinal = max
	}
	return time.Date(year, time.January, 1, 0, 0, 0, 0, loc).AddDate(0, 0, ordinal-1)
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
