package usecase

import (
	"time"

	"voice-scheduler/internal/event"
	"voice-scheduler/internal/event/repository"
	"voice-scheduler/pkg/datemath"
	"voice-scheduler/pkg/gcalendar"
	pkgLog "voice-scheduler/pkg/log"
	"voice-scheduler/pkg/metrics"
	"voice-scheduler/pkg/voicecmd"
)

const (
	// DefaultDuration is the draft length when Options leaves it unset.
	DefaultDuration = time.Hour

	// DefaultExportPageSize is how many rows Export reads from the store per query.
	DefaultExportPageSize = 500
)

// Options carries the scheduling settings of the use case.
type Options struct {
	Timezone   string        // IANA zone; also sent to Google Calendar
	Duration   time.Duration // draft end time offset
	CalendarID string        // Google Calendar to sync into

	ExportPageSize int
}

var _ event.UseCase = (*implUseCase)(nil)

type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.Repository
	interpreter *voicecmd.Interpreter
	calendar    gcalendar.Calendar // nil: sync disabled
	dateMath    *datemath.Parser
	metrics     *metrics.Recorder
	timezone    string
	duration    time.Duration
	calendarID  string
	exportPage  int
	now         func() time.Time
}

// New creates a new event UseCase instance. calendar and rec may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	interpreter *voicecmd.Interpreter,
	calendar gcalendar.Calendar,
	dateMath *datemath.Parser,
	rec *metrics.Recorder,
	opt Options,
) *implUseCase {
	if opt.Duration <= 0 {
		opt.Duration = DefaultDuration
	}
	if opt.ExportPageSize <= 0 {
		opt.ExportPageSize = DefaultExportPageSize
	}
	return &implUseCase{
		l:           l,
		repo:        repo,
		interpreter: interpreter,
		calendar:    calendar,
		dateMath:    dateMath,
		metrics:     rec,
		timezone:    opt.Timezone,
		duration:    opt.Duration,
		calendarID:  opt.CalendarID,
		exportPage:  opt.ExportPageSize,
		now:         time.Now,
	}
}

// SetClock replaces the clock used for reference instants. Tests only.
func (uc *implUseCase) SetClock(now func() time.Time) {
	uc.now = now
}
