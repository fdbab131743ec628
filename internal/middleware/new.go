package middleware

import (
	"schedule-calendar/config"
	"schedule-calendar/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter // nil when rate limiting is disabled
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.Enabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
