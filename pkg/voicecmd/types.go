package voicecmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Category is the kind of calendar entry an utterance describes.
type Category string

const (
	CategoryMeeting Category = "meeting"
	CategoryTask    Category = "task"
	CategoryEvent   Category = "event"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryMeeting, CategoryTask, CategoryEvent:
		return true
	}
	return false
}

// Priority of a calendar entry. Low is never inferred from speech.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// TimeOfDay is a wall-clock time in 24-hour form.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// DefaultStartTime is used when an utterance carries no usable time clause.
var DefaultStartTime = TimeOfDay{Hour: 9}

// ParseTimeOfDay parses "HH:MM" (24-hour, single digit hours accepted).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(mm) != 2 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	t := TimeOfDay{Hour: h, Minute: m}
	if !t.Valid() {
		return TimeOfDay{}, fmt.Errorf("time of day %q out of range", s)
	}
	return t, nil
}

// Valid reports whether t is within 00:00..23:59.
func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Add moves t forward by d, saturating at 23:59 so the result stays on the same day.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	total := t.Minutes() + int(d/time.Minute)
	if total > 23*60+59 {
		total = 23*60 + 59
	}
	if total < 0 {
		total = 0
	}
	return TimeOfDay{Hour: total / 60, Minute: total % 60}
}

// Before reports whether t is strictly earlier than o.
func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.Minutes() < o.Minutes()
}

// On combines t with the calendar day of date.
func (t TimeOfDay) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, date.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(b []byte) error {
	parsed, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Defaulted marks the fields of an Intent that were not stated in the utterance.
// Callers show these as low-confidence suggestions.
type Defaulted struct {
	Date      bool `json:"date"`
	StartTime bool `json:"start_time"`
	Category  bool `json:"category"`
	Priority  bool `json:"priority"`
}

// Intent is the structured result of interpreting one utterance.
type Intent struct {
	Title     string
	Date      time.Time // midnight of the resolved calendar day
	StartTime TimeOfDay
	Category  Category
	Priority  Priority
	Defaulted Defaulted
}

// Config configures an Interpreter.
type Config struct {
	// Timezone is the IANA zone the reference instant is read in.
	// Empty means the reference instant's own location.
	Timezone string

	// DefaultStartTime replaces DefaultStartTime when set.
	DefaultStartTime *TimeOfDay
}
