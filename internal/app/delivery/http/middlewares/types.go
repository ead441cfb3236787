package middlewares

import (
	"time"
	"trimline-service/internal/app/config"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	// WriteLimiter guards the mutation endpoints with a stricter budget than
	// the router-wide limiter; offenders are blocked for a cool-off window.
	WriteLimiter *RateLimiter
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		WriteLimiter: NewRateLimiter(
			internalConfig.App.MutationRequests,
			time.Second,
			time.Duration(internalConfig.App.MutationBlockSeconds)*time.Second,
		),
	}
}
