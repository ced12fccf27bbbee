package event

import (
	"time"

	"voice-scheduler/pkg/voicecmd"
)

// --- Domain Model ---

// Event is a calendar entry the user confirmed.
type Event struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Date        time.Time // midnight of the calendar day in the service timezone
	StartTime   voicecmd.TimeOfDay
	EndTime     voicecmd.TimeOfDay
	Type        voicecmd.Category
	Priority    voicecmd.Priority
	ExternalID  string // Google Calendar event ID, empty when not synced
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Start returns the instant the event begins.
func (e Event) Start() time.Time {
	return e.StartTime.On(e.Date)
}

// End returns the instant the event ends.
func (e Event) End() time.Time {
	return e.EndTime.On(e.Date)
}

// Draft is an event form prefilled from an utterance. It is never persisted.
type Draft struct {
	Matched     bool // false when nothing could be interpreted and the form holds defaults only
	Title       string
	Description string
	Date        time.Time
	StartTime   voicecmd.TimeOfDay
	EndTime     voicecmd.TimeOfDay
	Type        voicecmd.Category
	Priority    voicecmd.Priority
	Defaulted   voicecmd.Defaulted
}

// --- UseCase Inputs ---

type InterpretInput struct {
	Utterance     string
	ReferenceTime *time.Time // nil: now
}

type CreateInput struct {
	Title       string
	Description string
	Date        time.Time
	StartTime   voicecmd.TimeOfDay
	EndTime     voicecmd.TimeOfDay
	Type        voicecmd.Category
	Priority    voicecmd.Priority
}

// ListInput filters by an inclusive calendar date range. Nil bounds are open.
type ListInput struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// UpdateInput is a partial update. Nil fields keep their stored value.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	Date        *time.Time
	StartTime   *voicecmd.TimeOfDay
	EndTime     *voicecmd.TimeOfDay
	Type        *voicecmd.Category
	Priority    *voicecmd.Priority
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Event Event
}

type ListOutput struct {
	Events []Event
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Event Event
}

type UpdateOutput struct {
	Event Event
}

// ExportOutput reports the rows written and how many events matched the range.
type ExportOutput struct {
	Count int
	Total int
}
