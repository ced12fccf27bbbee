package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"voice-scheduler/internal/middleware"
	"voice-scheduler/pkg/response"
)

// Interpret godoc
// @Summary     Interpret a scheduling command
// @Description Turns an utterance into a prefilled event form. Nothing is saved.
// @Description When no intent is found the default form is returned with matched=false.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string       true "Caller user id"
// @Param       body      body   interpretReq true "Utterance"
// @Success     200 {object} draftResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/interpret [POST]
func (h *handler) Interpret(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processInterpretReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	draft, err := h.uc.Interpret(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Interpret: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDraftResp(draft))
}

// Create godoc
// @Summary     Create an event
// @Description Saves a user-confirmed event and mirrors it to Google Calendar when sync is enabled.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Caller user id"
// @Param       body      body   createReq true "Event data"
// @Success     201 {object} eventItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newEventItemResp(output.Event))
}

// List godoc
// @Summary     List events
// @Description Returns the caller's events ordered by date and start time, optionally within an inclusive date range.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true  "Caller user id"
// @Param       from      query  string false "First day (YYYY-MM-DD, today, next monday, in 2 weeks, ...)"
// @Param       to        query  string false "Last day (same forms as from)"
// @Param       limit     query  int    false "Page size (default and max: 100)"
// @Param       offset    query  int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListReq(c, maxPageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Export godoc
// @Summary     Export events as CSV
// @Description Downloads the caller's events, optionally within an inclusive date range.
// @Tags        Events
// @Produce     text/csv
// @Param       X-User-ID header string true  "Caller user id"
// @Param       from      query  string false "First day (YYYY-MM-DD, today, next monday, in 2 weeks, ...)"
// @Param       to        query  string false "Last day (same forms as from)"
// @Param       limit     query  int    false "Maximum rows (default: all)"
// @Param       offset    query  int    false "Rows to skip (default: 0)"
// @Success     200 {string} string "CSV file"
// @Header      200 {int} X-Total-Count "Events matching the range"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListReq(c, 0)
	if err != nil {
		response.Error(c, err)
		return
	}

	var buf bytes.Buffer
	output, err := h.uc.Export(ctx, middleware.GetScope(c), input, &buf)
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header(headerTotalCount, strconv.Itoa(output.Total))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "calendar-events.csv"))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Detail godoc
// @Summary     Get event detail
// @Description Returns one of the caller's events.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller user id"
// @Param       id        path   string true "Event ID"
// @Success     200 {object} eventItemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.Detail(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newEventItemResp(output.Event))
}

// Update godoc
// @Summary     Update an event
// @Description Updates one of the caller's events. All fields are optional (partial update).
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Caller user id"
// @Param       id        path   string    true "Event ID"
// @Param       body      body   updateReq true "Fields to update"
// @Success     200 {object} eventItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newEventItemResp(output.Event))
}

// Delete godoc
// @Summary     Delete an event
// @Description Permanently removes one of the caller's events.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Caller user id"
// @Param       id        path   string true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.Delete(ctx, middleware.GetScope(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
