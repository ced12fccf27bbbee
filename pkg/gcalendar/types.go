package gcalendar

import (
	"context"
	"errors"
	"time"
)

// DefaultCalendarID is used when a request leaves CalendarID empty.
const DefaultCalendarID = "primary"

// ErrMissingEventID is returned by update and delete calls without an event ID.
var ErrMissingEventID = errors.New("gcalendar: event id is required")

// Calendar is the subset of the Google Calendar API the service syncs events through.
//
//go:generate mockery --name Calendar
type Calendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
	UpdateEvent(ctx context.Context, req UpdateEventRequest) (*Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Ho_Chi_Minh"
}

// UpdateEventRequest replaces the fields of an existing event.
type UpdateEventRequest struct {
	CreateEventRequest
	EventID string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
