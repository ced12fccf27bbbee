package middleware

import (
	"voice-scheduler/config"
	"voice-scheduler/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter // nil: rate limiting disabled
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.Enabled {
		mw.limiter = newRateLimiter(cfg.PerMin)
	}
	return mw
}
