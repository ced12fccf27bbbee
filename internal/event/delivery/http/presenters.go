package http

import (
	"time"

	"voice-scheduler/internal/event"
	"voice-scheduler/pkg/response"
	"voice-scheduler/pkg/voicecmd"
)

// --- Request DTOs ---

type interpretReq struct {
	Utterance     string `json:"utterance"      binding:"max=1000"`
	ReferenceTime string `json:"reference_time"` // RFC3339, optional
}

func (h *handler) toInterpretInput(r interpretReq) (event.InterpretInput, error) {
	in := event.InterpretInput{Utterance: r.Utterance}
	if r.ReferenceTime != "" {
		t, err := time.Parse(time.RFC3339, r.ReferenceTime)
		if err != nil {
			return in, errInvalidRefTime
		}
		in.ReferenceTime = &t
	}
	return in, nil
}

// ---

type createReq struct {
	Title       string `json:"title"       binding:"required,max=255"`
	Description string `json:"description" binding:"max=1000"`
	Date        string `json:"date"        binding:"required"`
	StartTime   string `json:"start_time"  binding:"required"`
	EndTime     string `json:"end_time"    binding:"required"`
	Type        string `json:"type"        binding:"omitempty,oneof=meeting task event"`
	Priority    string `json:"priority"    binding:"omitempty,oneof=High Medium Low"`
}

func (h *handler) toCreateInput(r createReq) (event.CreateInput, error) {
	date, err := h.parseDate(r.Date)
	if err != nil {
		return event.CreateInput{}, err
	}
	start, err := parseTime(r.StartTime)
	if err != nil {
		return event.CreateInput{}, err
	}
	end, err := parseTime(r.EndTime)
	if err != nil {
		return event.CreateInput{}, err
	}
	return event.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Date:        date,
		StartTime:   start,
		EndTime:     end,
		Type:        voicecmd.Category(r.Type),
		Priority:    voicecmd.Priority(r.Priority),
	}, nil
}

// ---

type listReq struct {
	From   string `form:"from"` // YYYY-MM-DD or relative ("today", "next monday", "in 2 weeks"), inclusive
	To     string `form:"to"`   // same forms as From, inclusive
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

// toListInput caps Limit at maxLimit; maxLimit <= 0 leaves it uncapped and 0 means every row.
func (h *handler) toListInput(r listReq, maxLimit int) (event.ListInput, error) {
	limit := r.Limit
	if limit < 0 {
		limit = 0
	}
	if maxLimit > 0 && (limit == 0 || limit > maxLimit) {
		limit = maxLimit
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	in := event.ListInput{Limit: limit, Offset: offset}
	if r.From != "" {
		from, err := h.parseRangeBound(r.From)
		if err != nil {
			return in, err
		}
		in.From = &from
	}
	if r.To != "" {
		to, err := h.parseRangeBound(r.To)
		if err != nil {
			return in, err
		}
		in.To = &to
	}
	return in, nil
}

// ---

type updateReq struct {
	ID          string  `json:"-"` // populated from URI param
	Title       *string `json:"title"       binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Date        *string `json:"date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Type        *string `json:"type"        binding:"omitempty,oneof=meeting task event"`
	Priority    *string `json:"priority"    binding:"omitempty,oneof=High Medium Low"`
}

func (h *handler) toUpdateInput(r updateReq) (event.UpdateInput, error) {
	in := event.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
	}
	if r.Date != nil {
		d, err := h.parseDate(*r.Date)
		if err != nil {
			return in, err
		}
		in.Date = &d
	}
	if r.StartTime != nil {
		t, err := parseTime(*r.StartTime)
		if err != nil {
			return in, err
		}
		in.StartTime = &t
	}
	if r.EndTime != nil {
		t, err := parseTime(*r.EndTime)
		if err != nil {
			return in, err
		}
		in.EndTime = &t
	}
	if r.Type != nil {
		c := voicecmd.Category(*r.Type)
		in.Type = &c
	}
	if r.Priority != nil {
		p := voicecmd.Priority(*r.Priority)
		in.Priority = &p
	}
	return in, nil
}

func (h *handler) parseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(response.DateFormat, s, h.loc)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return d, nil
}

// parseRangeBound reads an absolute day first, then a relative one against the handler clock.
func (h *handler) parseRangeBound(s string) (time.Time, error) {
	if d, err := h.parseDate(s); err == nil {
		return d, nil
	}
	d, err := h.dates.Parse(s, h.now())
	if err != nil {
		return time.Time{}, errInvalidRangeBound
	}
	return d, nil
}

func parseTime(s string) (voicecmd.TimeOfDay, error) {
	t, err := voicecmd.ParseTimeOfDay(s)
	if err != nil {
		return voicecmd.TimeOfDay{}, errInvalidTime
	}
	return t, nil
}

// --- Response DTOs ---

type eventResp struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Date        response.Date     `json:"date"`
	StartTime   string            `json:"start_time"`
	EndTime     string            `json:"end_time"`
	Type        string            `json:"type"`
	Priority    string            `json:"priority"`
	ExternalID  string            `json:"external_id,omitempty"`
	CreatedAt   response.DateTime `json:"created_at"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

func newEventResp(e event.Event) eventResp {
	return eventResp{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        response.Date(e.Date),
		StartTime:   e.StartTime.String(),
		EndTime:     e.EndTime.String(),
		Type:        string(e.Type),
		Priority:    string(e.Priority),
		ExternalID:  e.ExternalID,
		CreatedAt:   response.DateTime(e.CreatedAt),
		UpdatedAt:   response.DateTime(e.UpdatedAt),
	}
}

type draftResp struct {
	Matched     bool               `json:"matched"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Date        response.Date      `json:"date"`
	StartTime   string             `json:"start_time"`
	EndTime     string             `json:"end_time"`
	Type        string             `json:"type"`
	Priority    string             `json:"priority"`
	Suggested   voicecmd.Defaulted `json:"suggested"` // fields filled from defaults
}

func (h *handler) newDraftResp(d event.Draft) draftResp {
	return draftResp{
		Matched:     d.Matched,
		Title:       d.Title,
		Description: d.Description,
		Date:        response.Date(d.Date),
		StartTime:   d.StartTime.String(),
		EndTime:     d.EndTime.String(),
		Type:        string(d.Type),
		Priority:    string(d.Priority),
		Suggested:   d.Defaulted,
	}
}

type eventItemResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newEventItemResp(e event.Event) eventItemResp {
	return eventItemResp{Event: newEventResp(e)}
}

type listResp struct {
	Events []eventResp `json:"events"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

func (h *handler) newListResp(out event.ListOutput) listResp {
	events := make([]eventResp, len(out.Events))
	for i, e := range out.Events {
		events[i] = newEventResp(e)
	}
	return listResp{
		Events: events,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
