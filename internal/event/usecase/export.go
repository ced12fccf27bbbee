package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"voice-scheduler/internal/event"
	"voice-scheduler/internal/model"
)

var exportHeader = []string{
	"ID", "Title", "Description", "Date", "Start Time", "End Time", "Type", "Priority", "Created At",
}

// Export writes the caller's events matching input as CSV, header first.
// The store is read page by page; input.Limit caps the rows written and 0 writes them all.
func (uc *implUseCase) Export(ctx context.Context, sc model.Scope, input event.ListInput, w io.Writer) (event.ExportOutput, error) {
	page := input
	page.Limit = uc.exportPageLimit(input.Limit, 0)

	out, err := uc.List(ctx, sc, page)
	if err != nil {
		return event.ExportOutput{}, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return event.ExportOutput{}, fmt.Errorf("write csv header: %w", err)
	}

	written := 0
	for {
		for _, e := range out.Events {
			if err := cw.Write(exportRecord(e)); err != nil {
				return event.ExportOutput{}, fmt.Errorf("write csv record: %w", err)
			}
		}
		written += len(out.Events)
		page.Offset += len(out.Events)

		if len(out.Events) == 0 || page.Offset >= out.Total {
			break
		}
		if input.Limit > 0 && written >= input.Limit {
			break
		}

		page.Limit = uc.exportPageLimit(input.Limit, written)
		if out, err = uc.List(ctx, sc, page); err != nil {
			return event.ExportOutput{}, err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return event.ExportOutput{}, fmt.Errorf("flush csv: %w", err)
	}

	uc.l.Infof(ctx, "uc.Export: user=%s rows=%d total=%d", sc.UserID, written, out.Total)
	return event.ExportOutput{Count: written, Total: out.Total}, nil
}

// exportPageLimit sizes the next page so a capped export never reads past its limit.
func (uc *implUseCase) exportPageLimit(limit, written int) int {
	if limit > 0 && limit-written < uc.exportPage {
		return limit - written
	}
	return uc.exportPage
}

func exportRecord(e event.Event) []string {
	return []string{
		e.ID,
		e.Title,
		e.Description,
		e.Date.Format("2006-01-02"),
		e.StartTime.String(),
		e.EndTime.String(),
		string(e.Type),
		string(e.Priority),
		e.CreatedAt.Format(time.RFC3339),
	}
}
