package sqlite

import (
	"strings"

	repo "voice-scheduler/internal/event/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneEvent.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneEventOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, opt.UserID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListFilter builds the WHERE clause shared by the count and page queries of ListEvents.
// Dates are stored as YYYY-MM-DD so lexical comparison is calendar order.
func (r *implRepository) buildListFilter(opt repo.ListEventsOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, opt.UserID)
	}
	if opt.From != nil {
		conditions = append(conditions, "date >= ?")
		args = append(args, r.day(*opt.From).Format(dateLayout))
	}
	if opt.To != nil {
		conditions = append(conditions, "date <= ?")
		args = append(args, r.day(*opt.To).Format(dateLayout))
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildPagination builds LIMIT + OFFSET. SQLite only accepts OFFSET after a LIMIT, so an
// offset without a limit uses LIMIT -1.
func (r *implRepository) buildPagination(opt repo.ListEventsOptions) (string, []any) {
	if opt.Limit <= 0 && opt.Offset <= 0 {
		return "", nil
	}

	limit := opt.Limit
	if limit <= 0 {
		limit = -1
	}
	offset := opt.Offset
	if offset < 0 {
		offset = 0
	}
	return "LIMIT ? OFFSET ?", []any{limit, offset}
}
