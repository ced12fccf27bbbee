package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"voice-scheduler/internal/event"
	repo "voice-scheduler/internal/event/repository"
	"voice-scheduler/pkg/voicecmd"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = time.RFC3339Nano

	eventColumns = `id, user_id, title, description, date, start_time, end_time, type, priority, external_id, created_at, updated_at`
)

// CreateEvent inserts a new Event row and returns the created entity.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (event.Event, error) {
	const query = `
		INSERT INTO calendar_events (` + eventColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, '', ?, ?)`

	now := r.now().UTC()
	e := event.Event{
		ID:          uuid.NewString(),
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		Date:        r.day(opt.Date),
		StartTime:   opt.StartTime,
		EndTime:     opt.EndTime,
		Type:        opt.Type,
		Priority:    opt.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.UserID, e.Title, e.Description, e.Date.Format(dateLayout),
		e.StartTime.String(), e.EndTime.String(), string(e.Type), string(e.Priority),
		now.Format(timestampLayout), now.Format(timestampLayout),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return event.Event{}, repo.ErrFailedToInsert
	}
	return e, nil
}

// GetOneEvent retrieves a single Event by the provided filters (AND condition).
// Returns zero-value Event (ID == "") when not found.
func (r *implRepository) GetOneEvent(ctx context.Context, opt repo.GetOneEventOptions) (event.Event, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM calendar_events WHERE %s LIMIT 1", eventColumns, mods)

	e, err := r.scanEvent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return event.Event{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEvent"), err)
		return event.Event{}, repo.ErrFailedToGet
	}
	return e, nil
}

// ListEvents returns a page of Events ordered by date and start time, plus the total count.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]event.Event, int, error) {
	where, whereArgs := r.buildListFilter(opt)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM calendar_events WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, whereArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListEvents"), err)
		return nil, 0, repo.ErrFailedToList
	}

	page, pageArgs := r.buildPagination(opt)
	query := fmt.Sprintf(
		"SELECT %s FROM calendar_events WHERE %s ORDER BY date ASC, start_time ASC, created_at ASC %s",
		eventColumns, where, page,
	)
	rows, err := r.db.QueryContext(ctx, query, append(whereArgs, pageArgs...)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		e, err := r.scanEvent(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEvents"), err)
			return nil, 0, repo.ErrFailedToList
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListEvents"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return events, total, nil
}

// UpdateEvent overwrites the mutable columns of an Event and returns the stored row.
// Returns zero-value Event when no row matches ID and UserID.
func (r *implRepository) UpdateEvent(ctx context.Context, opt repo.UpdateEventOptions) (event.Event, error) {
	const query = `
		UPDATE calendar_events
		SET title = ?, description = ?, date = ?, start_time = ?, end_time = ?,
		    type = ?, priority = ?, external_id = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`

	res, err := r.db.ExecContext(ctx, query,
		opt.Title, opt.Description, r.day(opt.Date).Format(dateLayout),
		opt.StartTime.String(), opt.EndTime.String(), string(opt.Type), string(opt.Priority),
		opt.ExternalID, r.now().UTC().Format(timestampLayout),
		opt.ID, opt.UserID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEvent"), err)
		return event.Event{}, repo.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return event.Event{}, nil
	}

	return r.GetOneEvent(ctx, repo.GetOneEventOptions{ID: opt.ID, UserID: opt.UserID})
}

// DeleteEvent removes an Event owned by UserID.
func (r *implRepository) DeleteEvent(ctx context.Context, opt repo.DeleteEventOptions) error {
	const query = `DELETE FROM calendar_events WHERE id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanEvent(row rowScanner) (event.Event, error) {
	var (
		e                    event.Event
		date, start, end     string
		typ, priority        string
		createdAt, updatedAt string
	)
	err := row.Scan(
		&e.ID, &e.UserID, &e.Title, &e.Description, &date, &start, &end,
		&typ, &priority, &e.ExternalID, &createdAt, &updatedAt,
	)
	if err != nil {
		return event.Event{}, err
	}

	if e.Date, err = time.ParseInLocation(dateLayout, date, r.loc); err != nil {
		return event.Event{}, fmt.Errorf("parse date %q: %w", date, err)
	}
	if err = e.StartTime.UnmarshalText([]byte(start)); err != nil {
		return event.Event{}, err
	}
	if err = e.EndTime.UnmarshalText([]byte(end)); err != nil {
		return event.Event{}, err
	}
	if e.CreatedAt, err = time.Parse(timestampLayout, createdAt); err != nil {
		return event.Event{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	if e.UpdatedAt, err = time.Parse(timestampLayout, updatedAt); err != nil {
		return event.Event{}, fmt.Errorf("parse updated_at %q: %w", updatedAt, err)
	}
	e.Type = voicecmd.Category(typ)
	e.Priority = voicecmd.Priority(priority)
	return e, nil
}

// day keeps the calendar day of t as written, placed at midnight in the repository location.
func (r *implRepository) day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, r.loc)
}
