package http

import (
	"github.com/gin-gonic/gin"

	"voice-scheduler/internal/event"
)

const (
	maxPageSize = 100

	headerTotalCount = "X-Total-Count"
)

// processInterpretReq binds the interpret request body.
func (h *handler) processInterpretReq(c *gin.Context) (event.InterpretInput, error) {
	var req interpretReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return event.InterpretInput{}, err
	}
	return h.toInterpretInput(req)
}

// processCreateReq binds and validates the create event request body.
func (h *handler) processCreateReq(c *gin.Context) (event.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return event.CreateInput{}, err
	}
	return h.toCreateInput(req)
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context, maxLimit int) (event.ListInput, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return event.ListInput{}, err
	}
	return h.toListInput(req, maxLimit)
}

// processUpdateReq binds the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (event.UpdateInput, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return event.UpdateInput{}, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return event.UpdateInput{}, errMissingID
	}
	return h.toUpdateInput(req)
}
