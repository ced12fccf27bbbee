package event

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrInvalidScope     = errors.New("user id is required")
	ErrInvalidTitle     = errors.New("title is required")
	ErrInvalidDate      = errors.New("date is required")
	ErrInvalidTime      = errors.New("invalid time of day")
	ErrInvalidTimeRange = errors.New("end time is before start time")
	ErrInvalidType      = errors.New("invalid event type")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidDateRange = errors.New("from date is after to date")
)
