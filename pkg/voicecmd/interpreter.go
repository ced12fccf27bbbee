// Package voicecmd turns a spoken or typed scheduling command into a structured intent.
//
// Interpretation is a fixed pipeline: the date clause is extracted first, then the time
// clause, then the title is taken from what is left, and finally category and priority are
// inferred from keywords. Malformed date or time clauses fall back to defaults; the only
// failure is ErrNoIntentFound.
package voicecmd

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"voice-scheduler/pkg/datemath"
)

var (
	categoryKeywords = []struct {
		keyword  string
		category Category
	}{
		{"meeting", CategoryMeeting},
		{"task", CategoryTask},
	}

	highPriorityKeywords = []string{"urgent", "important"}
)

// Interpreter is immutable after New and safe for concurrent use.
type Interpreter struct {
	dates        *datemath.Parser // nil: use the reference instant's location
	defaultStart TimeOfDay
}

// New creates an Interpreter. An unknown timezone is an error.
func New(cfg Config) (*Interpreter, error) {
	in := &Interpreter{
		defaultStart: DefaultStartTime,
	}
	if cfg.DefaultStartTime != nil {
		if !cfg.DefaultStartTime.Valid() {
			return nil, errInvalidDefaultStart(*cfg.DefaultStartTime)
		}
		in.defaultStart = *cfg.DefaultStartTime
	}
	if cfg.Timezone != "" {
		p, err := datemath.NewParser(cfg.Timezone)
		if err != nil {
			return nil, err
		}
		in.dates = p
	}
	return in, nil
}

// DefaultStartTime is the start time used when an utterance has no time clause.
func (in *Interpreter) DefaultStartTime() TimeOfDay {
	return in.defaultStart
}

// Interpret extracts an Intent from utterance, resolving relative dates against ref.
func (in *Interpreter) Interpret(utterance string, ref time.Time) (Intent, error) {
	text := norm.NFC.String(utterance)
	if strings.TrimSpace(text) == "" {
		return Intent{}, ErrNoIntentFound
	}

	dates := in.dates
	if dates == nil {
		dates = datemath.NewParserInLocation(ref.Location())
	}

	w := newWorkText(text)

	date, dateFound := extractDate(w, dates, ref)

	start, timeFound := extractTime(w)
	if !timeFound {
		start = in.defaultStart
	}

	title := extractTitle(w)
	if title == "" {
		return Intent{}, ErrNoIntentFound
	}

	// Keyword inference looks at the whole utterance, clauses included.
	// A Caser is stateful, so each call gets its own.
	folded := cases.Fold().String(text)
	category, categoryFound := inferCategory(folded)
	priority, priorityFound := inferPriority(folded)

	return Intent{
		Title:     title,
		Date:      date,
		StartTime: start,
		Category:  category,
		Priority:  priority,
		Defaulted: Defaulted{
			Date:      !dateFound,
			StartTime: !timeFound,
			Category:  !categoryFound,
			Priority:  !priorityFound,
		},
	}, nil
}

func inferCategory(folded string) (Category, bool) {
	for _, k := range categoryKeywords {
		if strings.Contains(folded, k.keyword) {
			return k.category, true
		}
	}
	return CategoryEvent, false
}

func inferPriority(folded string) (Priority, bool) {
	for _, k := range highPriorityKeywords {
		if strings.Contains(folded, k) {
			return PriorityHigh, true
		}
	}
	return PriorityMedium, false
}
