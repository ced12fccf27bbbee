package usecase

import (
	"context"
	"errors"
	"time"

	"voice-scheduler/internal/event"
	"voice-scheduler/internal/model"
	"voice-scheduler/pkg/voicecmd"
)

// Interpret turns an utterance into a prefilled event form. Nothing is persisted.
// An utterance without an intent yields the default form with Matched=false, not an error.
func (uc *implUseCase) Interpret(ctx context.Context, sc model.Scope, input event.InterpretInput) (event.Draft, error) {
	if !sc.Valid() {
		return event.Draft{}, event.ErrInvalidScope
	}

	ref := uc.now()
	if input.ReferenceTime != nil {
		ref = *input.ReferenceTime
	}

	intent, err := uc.interpreter.Interpret(input.Utterance, ref)
	if errors.Is(err, voicecmd.ErrNoIntentFound) {
		uc.l.Debugf(ctx, "uc.Interpret: no intent in %d chars", len(input.Utterance))
		uc.metrics.Interpretation(false)
		return uc.emptyDraft(ref), nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Interpret: %v", err)
		return event.Draft{}, err
	}

	uc.metrics.Interpretation(true, defaultedFields(intent.Defaulted)...)
	uc.l.Infof(ctx, "uc.Interpret: user=%s date=%s start=%s type=%s priority=%s",
		sc.UserID, intent.Date.Format("2006-01-02"), intent.StartTime, intent.Category, intent.Priority)

	return event.Draft{
		Matched:   true,
		Title:     intent.Title,
		Date:      intent.Date,
		StartTime: intent.StartTime,
		EndTime:   intent.StartTime.Add(uc.duration),
		Type:      intent.Category,
		Priority:  intent.Priority,
		Defaulted: intent.Defaulted,
	}, nil
}

// emptyDraft is the form shown when nothing could be interpreted.
func (uc *implUseCase) emptyDraft(ref time.Time) event.Draft {
	start := uc.interpreter.DefaultStartTime()
	return event.Draft{
		Date:      uc.dateMath.StartOfDay(ref),
		StartTime: start,
		EndTime:   start.Add(uc.duration),
		Type:      voicecmd.CategoryEvent,
		Priority:  voicecmd.PriorityMedium,
		Defaulted: voicecmd.Defaulted{Date: true, StartTime: true, Category: true, Priority: true},
	}
}

func defaultedFields(d voicecmd.Defaulted) []string {
	var fields []string
	if d.Date {
		fields = append(fields, "date")
	}
	if d.StartTime {
		fields = append(fields, "start_time")
	}
	if d.Category {
		fields = append(fields, "category")
	}
	if d.Priority {
		fields = append(fields, "priority")
	}
	return fields
}
