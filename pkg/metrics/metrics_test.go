package metrics_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-scheduler/pkg/metrics"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.New("test", reg)
	require.NoError(t, err)

	rec.Interpretation(true, "date", "priority")
	rec.Interpretation(false)
	rec.StoreOp("create", nil)
	rec.StoreOp("create", errors.New("boom"))
	rec.SyncOp("delete", nil)

	count, err := testutil.GatherAndCount(reg,
		"test_interpretations_total",
		"test_defaulted_fields_total",
		"test_event_store_operations_total",
		"test_calendar_sync_operations_total",
	)
	require.NoError(t, err)
	// 2 outcomes + 2 fields + 2 store results + 1 sync result
	assert.Equal(t, 7, count)
}

func TestRecorder_RegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := metrics.New("", reg)
	require.NoError(t, err)
	second, err := metrics.New("", reg)
	require.NoError(t, err)

	first.StoreOp("list", nil)
	second.StoreOp("list", nil)

	count, err := testutil.GatherAndCount(reg, "voice_scheduler_event_store_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "both recorders share one series")
}

func TestRecorder_Nil(t *testing.T) {
	var rec *metrics.Recorder
	rec.Interpretation(true)
	rec.StoreOp("create", nil)
	rec.SyncOp("create", nil)
}
