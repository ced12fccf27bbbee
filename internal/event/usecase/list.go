package usecase

import (
	"context"

	"voice-scheduler/internal/event"
	repo "voice-scheduler/internal/event/repository"
	"voice-scheduler/internal/model"
)

// List returns the caller's events, optionally limited to an inclusive date range.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input event.ListInput) (event.ListOutput, error) {
	if !sc.Valid() {
		return event.ListOutput{}, event.ErrInvalidScope
	}
	if input.From != nil && input.To != nil && input.From.After(*input.To) {
		return event.ListOutput{}, event.ErrInvalidDateRange
	}

	events, total, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{
		UserID: sc.UserID,
		From:   input.From,
		To:     input.To,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	uc.metrics.StoreOp("list", err)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEvents: %v", err)
		return event.ListOutput{}, err
	}

	return event.ListOutput{
		Events: events,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
