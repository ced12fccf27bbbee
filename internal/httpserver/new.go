package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"voice-scheduler/config"
	"voice-scheduler/pkg/datemath"
	"voice-scheduler/pkg/gcalendar"
	"voice-scheduler/pkg/log"
	"voice-scheduler/pkg/metrics"
	"voice-scheduler/pkg/voicecmd"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   config.RateLimitConfig

	// Storage
	sqliteDB *sql.DB

	// Event domain
	interpreter *voicecmd.Interpreter
	dateMath    *datemath.Parser
	calendar    gcalendar.Calendar
	calendarID  string
	duration    time.Duration

	// Metrics
	metrics  *metrics.Recorder
	gatherer prometheus.Gatherer
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	RateLimit   config.RateLimitConfig

	// Storage
	SQLiteDB *sql.DB

	// Event domain
	Interpreter *voicecmd.Interpreter
	DateMath    *datemath.Parser
	Calendar    gcalendar.Calendar // optional
	CalendarID  string
	Duration    time.Duration

	// Metrics, both optional. Gatherer defaults to prometheus.DefaultGatherer.
	Metrics  *metrics.Recorder
	Gatherer prometheus.Gatherer
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		rateLimit:   cfg.RateLimit,
		sqliteDB:    cfg.SQLiteDB,
		interpreter: cfg.Interpreter,
		dateMath:    cfg.DateMath,
		calendar:    cfg.Calendar,
		calendarID:  cfg.CalendarID,
		duration:    cfg.Duration,
		metrics:     cfg.Metrics,
		gatherer:    gatherer,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.sqliteDB == nil {
		return errors.New("sqlite db is required")
	}
	if srv.interpreter == nil {
		return errors.New("interpreter is required")
	}
	if srv.dateMath == nil {
		return errors.New("date math parser is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
