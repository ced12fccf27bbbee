package voicecmd

import (
	"errors"
	"fmt"
)

// ErrNoIntentFound is returned when an utterance is empty or leaves no title once its
// date and time clauses are removed. It is an expected outcome, not a fault.
var ErrNoIntentFound = errors.New("no intent found")

func errInvalidDefaultStart(t TimeOfDay) error {
	return fmt.Errorf("invalid default start time %02d:%02d", t.Hour, t.Minute)
}
