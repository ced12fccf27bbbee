// Package metrics exports scheduling and event store telemetry to Prometheus.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const DefaultNamespace = "voice_scheduler"

const (
	OutcomeMatched  = "matched"
	OutcomeNoIntent = "no_intent"
)

// Recorder collects interpretation and store metrics. A nil *Recorder records nothing.
type Recorder struct {
	interpretations *prometheus.CounterVec
	defaulted       *prometheus.CounterVec
	storeOps        *prometheus.CounterVec
	syncOps         *prometheus.CounterVec
}

// New registers the collectors on reg (prometheus.DefaultRegisterer when nil).
// Registering twice on the same registry reuses the existing collectors.
func New(namespace string, reg prometheus.Registerer) (*Recorder, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	rec := &Recorder{
		interpretations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interpretations_total",
			Help:      "Utterances interpreted, by outcome.",
		}, []string{"outcome"}),
		defaulted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "defaulted_fields_total",
			Help:      "Intent fields filled from defaults instead of the utterance.",
		}, []string{"field"}),
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_store_operations_total",
			Help:      "Event store operations, by operation and result.",
		}, []string{"operation", "result"}),
		syncOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calendar_sync_operations_total",
			Help:      "Google Calendar sync calls, by operation and result.",
		}, []string{"operation", "result"}),
	}

	var err error
	if rec.interpretations, err = register(reg, rec.interpretations); err != nil {
		return nil, err
	}
	if rec.defaulted, err = register(reg, rec.defaulted); err != nil {
		return nil, err
	}
	if rec.storeOps, err = register(reg, rec.storeOps); err != nil {
		return nil, err
	}
	if rec.syncOps, err = register(reg, rec.syncOps); err != nil {
		return nil, err
	}
	return rec, nil
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("register metric: %w", err)
	}
	return c, nil
}

// Interpretation counts one interpretation and the fields it defaulted.
func (r *Recorder) Interpretation(matched bool, defaulted ...string) {
	if r == nil {
		return
	}
	outcome := OutcomeMatched
	if !matched {
		outcome = OutcomeNoIntent
	}
	r.interpretations.WithLabelValues(outcome).Inc()
	for _, f := range defaulted {
		r.defaulted.WithLabelValues(f).Inc()
	}
}

// StoreOp counts one event store operation.
func (r *Recorder) StoreOp(operation string, err error) {
	if r == nil {
		return
	}
	r.storeOps.WithLabelValues(operation, result(err)).Inc()
}

// SyncOp counts one Google Calendar call.
func (r *Recorder) SyncOp(operation string, err error) {
	if r == nil {
		return
	}
	r.syncOps.WithLabelValues(operation, result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
