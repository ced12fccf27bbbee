package repository

import (
	"context"

	"voice-scheduler/internal/event"
)

// Repository is the composed interface for the event domain data store.
type Repository interface {
	EventRepository
}

// EventRepository defines all data access methods for the Event entity.
// Lookups that match nothing return the zero Event and no error.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (event.Event, error)
	GetOneEvent(ctx context.Context, opt GetOneEventOptions) (event.Event, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]event.Event, int, error)
	UpdateEvent(ctx context.Context, opt UpdateEventOptions) (event.Event, error)
	DeleteEvent(ctx context.Context, opt DeleteEventOptions) error
}
