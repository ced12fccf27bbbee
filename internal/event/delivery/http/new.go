package http

import (
	"time"

	"voice-scheduler/internal/event"
	"voice-scheduler/pkg/datemath"
	"voice-scheduler/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    event.UseCase
	dates *datemath.Parser // calendar dates in requests are read in its zone
	loc   *time.Location
	now   func() time.Time
}

// New creates a new HTTP handler for the event domain. A nil dates parser reads dates in UTC.
func New(l log.Logger, uc event.UseCase, dates *datemath.Parser) *handler {
	if dates == nil {
		dates = datemath.NewParserInLocation(time.UTC)
	}
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
		loc:   dates.Location(),
		now:   time.Now,
	}
}

// SetClock replaces the clock relative range bounds are resolved against.
func (h *handler) SetClock(now func() time.Time) {
	h.now = now
}
