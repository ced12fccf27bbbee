package usecase

import (
	"strings"
	"time"

	"voice-scheduler/internal/event"
	"voice-scheduler/pkg/voicecmd"
)

// eventFields is the mutable part of an event shared by create and update validation.
type eventFields struct {
	Title       string
	Description string
	Date        time.Time
	StartTime   voicecmd.TimeOfDay
	EndTime     voicecmd.TimeOfDay
	Type        voicecmd.Category
	Priority    voicecmd.Priority
}

// normalize trims text and fills the type and priority defaults the form would show.
func (f eventFields) normalize() eventFields {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	if f.Type == "" {
		f.Type = voicecmd.CategoryEvent
	}
	if f.Priority == "" {
		f.Priority = voicecmd.PriorityMedium
	}
	return f
}

func (f eventFields) validate() error {
	switch {
	case f.Title == "":
		return event.ErrInvalidTitle
	case f.Date.IsZero():
		return event.ErrInvalidDate
	case !f.StartTime.Valid(), !f.EndTime.Valid():
		return event.ErrInvalidTime
	case f.EndTime.Before(f.StartTime):
		return event.ErrInvalidTimeRange
	case !f.Type.Valid():
		return event.ErrInvalidType
	case !f.Priority.Valid():
		return event.ErrInvalidPriority
	}
	return nil
}

func fieldsOf(e event.Event) eventFields {
	return eventFields{
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Type:        e.Type,
		Priority:    e.Priority,
	}
}

// apply overlays the non-nil fields of a partial update.
func (f eventFields) apply(in event.UpdateInput) eventFields {
	if in.Title != nil {
		f.Title = *in.Title
	}
	if in.Description != nil {
		f.Description = *in.Description
	}
	if in.Date != nil {
		f.Date = *in.Date
	}
	if in.StartTime != nil {
		f.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		f.EndTime = *in.EndTime
	}
	if in.Type != nil {
		f.Type = *in.Type
	}
	if in.Priority != nil {
		f.Priority = *in.Priority
	}
	return f
}
