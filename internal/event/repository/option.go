package repository

import (
	"time"

	"voice-scheduler/pkg/voicecmd"
)

// CreateEventOptions holds parameters for inserting a new Event.
type CreateEventOptions struct {
	UserID      string
	Title       string
	Description string
	Date        time.Time
	StartTime   voicecmd.TimeOfDay
	EndTime     voicecmd.TimeOfDay
	Type        voicecmd.Category
	Priority    voicecmd.Priority
}

// GetOneEventOptions holds filter parameters for fetching a single Event.
// All non-empty fields are applied as AND conditions.
type GetOneEventOptions struct {
	ID     string
	UserID string
}

// ListEventsOptions holds filter and pagination parameters for listing Events.
// From and To are inclusive calendar days.
type ListEventsOptions struct {
	UserID string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// UpdateEventOptions replaces every mutable column of an existing Event.
type UpdateEventOptions struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Date        time.Time
	StartTime   voicecmd.TimeOfDay
	EndTime     voicecmd.TimeOfDay
	Type        voicecmd.Category
	Priority    voicecmd.Priority
	ExternalID  string
}

// DeleteEventOptions identifies the Event to remove.
type DeleteEventOptions struct {
	ID     string
	UserID string
}
