package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// absoluteFormat is the explicit-date form accepted alongside the
// relative grammar.
const absoluteFormat = "2006-01-02"

var (
	// "in 3 days", "in 2 weeks", "in 1 month"
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	// capture shorthand: "+3d", "+2w", "+1m"
	shorthandRe = regexp.MustCompile(`^\+(\d+)([dwm])$`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser resolves due/defer date expressions entered during capture into
// absolute times. All results are midnight in the parser's location.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string, e.g. "UTC"
// or "Asia/Ho_Chi_Minh".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse resolves an expression against the given reference time.
//
// Accepted forms:
//
//	today | tomorrow | yesterday
//	in N days|weeks|months
//	+Nd | +Nw | +Nm
//	next <weekday> | <weekday>
//	next week | next month
//	2006-01-02
//
// Anything else is an error; the caller decides whether that clears the
// date or fails the request.
func (p *Parser) Parse(expr string, base time.Time) (time.Time, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))

	switch expr {
	case "today":
		return p.startOfDay(base), nil
	case "tomorrow":
		return p.startOfDay(base.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(base.AddDate(0, 0, -1)), nil
	case "next week":
		return p.startOfDay(base.AddDate(0, 0, daysUntilWeekday(base, time.Monday))), nil
	case "next month":
		start := p.startOfDay(base)
		return time.Date(start.Year(), start.Month()+1, 1, 0, 0, 0, 0, p.location), nil
	}

	if m := inDurationRe.FindStringSubmatch(expr); m != nil {
		return p.addUnits(base, m[1], m[2][:1])
	}
	if m := shorthandRe.FindStringSubmatch(expr); m != nil {
		return p.addUnits(base, m[1], m[2])
	}

	if day, ok := weekdays[strings.TrimPrefix(expr, "next ")]; ok {
		return p.startOfDay(base.AddDate(0, 0, daysUntilWeekday(base, day))), nil
	}

	if abs, err := time.ParseInLocation(absoluteFormat, expr, p.location); err == nil {
		return abs, nil
	}

	return base, fmt.Errorf("unrecognized date expression: %q", expr)
}

// addUnits applies an amount of days, weeks or months. unit is the
// single-letter form shared by the long and shorthand grammars.
func (p *Parser) addUnits(base time.Time, amountStr, unit string) (time.Time, error) {
	amount, err := strconv.Atoi(amountStr)
	if err != nil {
		return base, fmt.Errorf("invalid amount %q: %w", amountStr, err)
	}

	switch unit {
	case "d":
		return p.startOfDay(base.AddDate(0, 0, amount)), nil
	case "w":
		return p.startOfDay(base.AddDate(0, 0, amount*7)), nil
	case "m":
		return p.startOfDay(base.AddDate(0, amount, 0)), nil
	}
	return base, fmt.Errorf("unknown time unit: %q", unit)
}

// daysUntilWeekday returns the offset to the next occurrence of the weekday,
// never zero: the same weekday means a full week out.
func daysUntilWeekday(base time.Time, target time.Weekday) int {
	days := int(target - base.Weekday())
	if days <= 0 {
		days += 7
	}
	return days
}

// startOfDay returns midnight of the given day in the parser's location.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 of the day containing t, in the parser's
// location. Used when a due date should cover the whole day.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	return p.startOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
