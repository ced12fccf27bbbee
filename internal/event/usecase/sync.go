package usecase

import (
	"context"

	"voice-scheduler/internal/event"
	repo "voice-scheduler/internal/event/repository"
	"voice-scheduler/pkg/gcalendar"
)

// syncCreated mirrors a new event to Google Calendar and records the external ID.
// On any failure the stored event is returned unchanged.
func (uc *implUseCase) syncCreated(ctx context.Context, e event.Event) event.Event {
	if uc.calendar == nil {
		return e
	}

	created, err := uc.calendar.CreateEvent(ctx, uc.calendarRequest(e))
	uc.metrics.SyncOp("create", err)
	if err != nil {
		uc.l.Warnf(ctx, "uc.syncCreated: event=%s: %v", e.ID, err)
		return e
	}

	updated, err := uc.repo.UpdateEvent(ctx, repo.UpdateEventOptions{
		ID:          e.ID,
		UserID:      e.UserID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Type:        e.Type,
		Priority:    e.Priority,
		ExternalID:  created.ID,
	})
	uc.metrics.StoreOp("update", err)
	if err != nil || updated.ID == "" {
		uc.l.Warnf(ctx, "uc.syncCreated: event=%s: saving external id %s: %v", e.ID, created.ID, err)
		return e
	}
	return updated
}

func (uc *implUseCase) syncUpdated(ctx context.Context, e event.Event) {
	if uc.calendar == nil || e.ExternalID == "" {
		return
	}
	_, err := uc.calendar.UpdateEvent(ctx, gcalendar.UpdateEventRequest{
		CreateEventRequest: uc.calendarRequest(e),
		EventID:            e.ExternalID,
	})
	uc.metrics.SyncOp("update", err)
	if err != nil {
		uc.l.Warnf(ctx, "uc.syncUpdated: event=%s external=%s: %v", e.ID, e.ExternalID, err)
	}
}

func (uc *implUseCase) syncDeleted(ctx context.Context, e event.Event) {
	if uc.calendar == nil || e.ExternalID == "" {
		return
	}
	err := uc.calendar.DeleteEvent(ctx, uc.calendarID, e.ExternalID)
	uc.metrics.SyncOp("delete", err)
	if err != nil {
		uc.l.Warnf(ctx, "uc.syncDeleted: event=%s external=%s: %v", e.ID, e.ExternalID, err)
	}
}

func (uc *implUseCase) calendarRequest(e event.Event) gcalendar.CreateEventRequest {
	return gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     e.Title,
		Description: e.Description,
		StartTime:   e.Start(),
		EndTime:     e.End(),
		Timezone:    uc.timezone,
	}
}
