package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	// IANA zone names must resolve even on hosts without zoneinfo.
	_ "time/tzdata"
)

var inDurationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"thur":      time.Thursday,
	"thurs":     time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
}

var months = map[string]time.Month{
	"january":   time.January,
	"jan":       time.January,
	"february":  time.February,
	"feb":       time.February,
	"march":     time.March,
	"mar":       time.March,
	"april":     time.April,
	"apr":       time.April,
	"may":       time.May,
	"june":      time.June,
	"jun":       time.June,
	"july":      time.July,
	"jul":       time.July,
	"august":    time.August,
	"aug":       time.August,
	"september": time.September,
	"sep":       time.September,
	"sept":      time.September,
	"october":   time.October,
	"oct":       time.October,
	"november":  time.November,
	"nov":       time.November,
	"december":  time.December,
	"dec":       time.December,
}

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserInLocation creates a parser bound to an already resolved location.
func NewParserInLocation(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Location returns the timezone calendar days are computed in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to the start of that day.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.AddDays(baseTime, 1), nil
	case "yesterday":
		return p.AddDays(baseTime, -1), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return time.Time{}, fmt.Errorf("unknown relative date: %q", relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationPattern.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.AddDays(baseTime, amount), nil
	case strings.HasPrefix(unit, "week"):
		return p.AddDays(baseTime, amount*7), nil
	case strings.HasPrefix(unit, "month"):
		day := p.StartOfDay(baseTime)
		return day.AddDate(0, amount, 0), nil
	}

	return time.Time{}, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := LookupWeekday(dayName)
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", dayName)
	}
	return p.NextWeekday(baseTime, targetWeekday, true), nil
}

// NextWeekday returns the start of the next day falling on target.
// When strict is false the base day itself qualifies.
func (p *Parser) NextWeekday(baseTime time.Time, target time.Weekday, strict bool) time.Time {
	base := p.StartOfDay(baseTime)
	daysUntil := int(target - base.Weekday())
	if daysUntil < 0 || (daysUntil == 0 && strict) {
		daysUntil += 7
	}
	return base.AddDate(0, 0, daysUntil)
}

// MonthDay returns the start of month/day in year, rejecting dates time.Date would normalize
// (February 30 becomes an error, not March 1).
func (p *Parser) MonthDay(year int, month time.Month, day int) (time.Time, error) {
	if month < time.January || month > time.December {
		return time.Time{}, fmt.Errorf("invalid month: %d", month)
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, p.location)
	if day < 1 || t.Month() != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("invalid day %d for %s %d", day, month, year)
	}
	return t, nil
}

// AddDays moves n calendar days from the day containing t. Calendar arithmetic keeps DST
// transitions from shifting the result off midnight.
func (p *Parser) AddDays(t time.Time, n int) time.Time {
	return p.StartOfDay(t).AddDate(0, 0, n)
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// LookupWeekday resolves an English weekday name or abbreviation.
func LookupWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}

// LookupMonth resolves an English month name or abbreviation.
func LookupMonth(name string) (time.Month, bool) {
	m, ok := months[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}
