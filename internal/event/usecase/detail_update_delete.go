package usecase

import (
	"context"

	"voice-scheduler/internal/event"
	repo "voice-scheduler/internal/event/repository"
	"voice-scheduler/internal/model"
)

// Detail retrieves one of the caller's events. Returns ErrEventNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (event.DetailOutput, error) {
	e, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return event.DetailOutput{}, err
	}
	return event.DetailOutput{Event: e}, nil
}

// Update applies a partial update. Returns ErrEventNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input event.UpdateInput) (event.UpdateOutput, error) {
	existing, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return event.UpdateOutput{}, err
	}

	f := fieldsOf(existing).apply(input).normalize()
	if err := f.validate(); err != nil {
		return event.UpdateOutput{}, err
	}

	e, err := uc.repo.UpdateEvent(ctx, repo.UpdateEventOptions{
		ID:          existing.ID,
		UserID:      sc.UserID,
		Title:       f.Title,
		Description: f.Description,
		Date:        f.Date,
		StartTime:   f.StartTime,
		EndTime:     f.EndTime,
		Type:        f.Type,
		Priority:    f.Priority,
		ExternalID:  existing.ExternalID,
	})
	uc.metrics.StoreOp("update", err)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateEvent: %v", err)
		return event.UpdateOutput{}, err
	}
	if e.ID == "" {
		return event.UpdateOutput{}, event.ErrEventNotFound
	}

	uc.syncUpdated(ctx, e)
	return event.UpdateOutput{Event: e}, nil
}

// Delete removes one of the caller's events. Returns ErrEventNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return err
	}

	err = uc.repo.DeleteEvent(ctx, repo.DeleteEventOptions{ID: existing.ID, UserID: sc.UserID})
	uc.metrics.StoreOp("delete", err)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteEvent: %v", err)
		return err
	}

	uc.syncDeleted(ctx, existing)
	return nil
}

// getOwned loads an event of the scope's user. Other users' events are reported as not found.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string) (event.Event, error) {
	if !sc.Valid() {
		return event.Event{}, event.ErrInvalidScope
	}
	if id == "" {
		return event.Event{}, event.ErrEventNotFound
	}

	e, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: id, UserID: sc.UserID})
	uc.metrics.StoreOp("get", err)
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwned GetOneEvent: %v", err)
		return event.Event{}, err
	}
	if e.ID == "" {
		return event.Event{}, event.ErrEventNotFound
	}
	return e, nil
}
