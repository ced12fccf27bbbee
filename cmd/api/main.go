package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"voice-scheduler/config"
	_ "voice-scheduler/docs" // Swagger docs
	"voice-scheduler/internal/event/repository/sqlite"
	"voice-scheduler/internal/httpserver"
	"voice-scheduler/pkg/datemath"
	"voice-scheduler/pkg/gcalendar"
	"voice-scheduler/pkg/log"
	"voice-scheduler/pkg/metrics"
	"voice-scheduler/pkg/voicecmd"
)

// @title       Voice Scheduler API
// @description Natural-language scheduling commands and calendar events.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Interpreter and date math share the service timezone
	dateMathParser, err := datemath.NewParser(cfg.Interpreter.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Interpreter.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	defaultStart, err := voicecmd.ParseTimeOfDay(cfg.Interpreter.DefaultStartTime)
	if err != nil {
		logger.Error(ctx, "Invalid interpreter.default_start_time: ", err)
		return
	}
	interpreter, err := voicecmd.New(voicecmd.Config{
		Timezone:         dateMathParser.Location().String(),
		DefaultStartTime: &defaultStart,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize interpreter: ", err)
		return
	}

	// 4. Event store
	db, err := sqlite.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	version, dirty, err := sqlite.RunMigrations(db)
	if err != nil {
		logger.Error(ctx, "Failed to run migrations: ", err)
		return
	}
	logger.Infof(ctx, "Database %s at schema version %d (dirty=%t)", cfg.Database.Path, version, dirty)

	// 5. Google Calendar client (optional)
	var calendarClient gcalendar.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, gErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gErr)
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar sync initialized")
		}
	}

	// 6. Metrics
	recorder, err := metrics.New(metrics.DefaultNamespace, prometheus.DefaultRegisterer)
	if err != nil {
		logger.Error(ctx, "Failed to register metrics: ", err)
		return
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		RateLimit:   cfg.RateLimit,
		SQLiteDB:    db,
		Interpreter: interpreter,
		DateMath:    dateMathParser,
		Calendar:    calendarClient,
		CalendarID:  cfg.GoogleCalendar.CalendarID,
		Duration:    time.Duration(cfg.Interpreter.DefaultDurationMinutes) * time.Minute,
		Metrics:     recorder,
		Gatherer:    prometheus.DefaultGatherer,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
