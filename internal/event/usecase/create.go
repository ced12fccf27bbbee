package usecase

import (
	"context"

	"voice-scheduler/internal/event"
	repo "voice-scheduler/internal/event/repository"
	"voice-scheduler/internal/model"
)

// Create validates and persists a user-confirmed event, then mirrors it to Google Calendar
// when sync is enabled. A failed sync is logged and does not fail the creation.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input event.CreateInput) (event.CreateOutput, error) {
	if !sc.Valid() {
		return event.CreateOutput{}, event.ErrInvalidScope
	}

	f := eventFields{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Type:        input.Type,
		Priority:    input.Priority,
	}.normalize()
	if err := f.validate(); err != nil {
		return event.CreateOutput{}, err
	}

	e, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{
		UserID:      sc.UserID,
		Title:       f.Title,
		Description: f.Description,
		Date:        f.Date,
		StartTime:   f.StartTime,
		EndTime:     f.EndTime,
		Type:        f.Type,
		Priority:    f.Priority,
	})
	uc.metrics.StoreOp("create", err)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateEvent: %v", err)
		return event.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Create: user=%s event=%s date=%s", sc.UserID, e.ID, e.Date.Format("2006-01-02"))

	return event.CreateOutput{Event: uc.syncCreated(ctx, e)}, nil
}
