package middleware

import (
	"github.com/binguliki/IntelliLearn/config"
	pkgLog "github.com/binguliki/IntelliLearn/pkg/log"
)

type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

func New(l pkgLog.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RequestsPerMin),
	}
}
