package log_test

import (
	"context"
	"testing"

	"voice-scheduler/pkg/log"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{name: "debug console", cfg: log.ZapConfig{Level: "debug", Mode: log.ModeDebug, Encoding: log.EncodingConsole, ColorEnabled: true}},
		{name: "production json", cfg: log.ZapConfig{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON}},
		{name: "bad level falls back", cfg: log.ZapConfig{Level: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			if l == nil {
				t.Fatal("Init returned nil logger")
			}
			ctx := log.WithUserID(log.WithRequestID(context.Background(), "req-1"), "u-1")
			l.Debugf(ctx, "hello %s", "world")
			l.Info(ctx, "info line")
		})
	}
}

func TestRequestID(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "abc")
	if got := log.RequestID(ctx); got != "abc" {
		t.Errorf("RequestID() = %q, want %q", got, "abc")
	}
	if got := log.RequestID(context.Background()); got != "" {
		t.Errorf("RequestID() on empty ctx = %q, want empty", got)
	}
}
