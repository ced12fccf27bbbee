package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	eventHTTP "voice-scheduler/internal/event/delivery/http"
	eventRepo "voice-scheduler/internal/event/repository/sqlite"
	eventUC "voice-scheduler/internal/event/usecase"
	"voice-scheduler/internal/middleware"
)

// setupEventDomain initializes the event domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.sqliteDB, srv.l, loc)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, srv.dateMath)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupEventDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	loc := srv.dateMath.Location()

	// 1. Repository
	repo := eventRepo.New(srv.sqliteDB, srv.l, loc)

	// 2. UseCase
	uc := eventUC.New(srv.l, repo, srv.interpreter, srv.calendar, srv.dateMath, srv.metrics, eventUC.Options{
		Timezone:   loc.String(),
		Duration:   srv.duration,
		CalendarID: srv.calendarID,
	})

	// 3. HTTP Handler
	h := eventHTTP.New(srv.l, uc, srv.dateMath)

	// 4. Routes: registers /api/v1/events
	eventHTTP.RegisterRoutes(api, h, mw)

	if srv.calendar != nil {
		srv.l.Infof(ctx, "Event domain registered (Google Calendar sync enabled)")
	} else {
		srv.l.Infof(ctx, "Event domain registered")
	}
	return nil
}
