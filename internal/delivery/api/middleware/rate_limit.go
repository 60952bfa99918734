package middleware

import (
	"time"

	"lifelink/config"
	domainerrors "lifelink/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const (
	defaultRateLimitRPS   = 5
	defaultRateLimitBurst = 10
	rateLimitExpiry       = 3 * time.Minute
)

// NewPublicRateLimiter limits unauthenticated scans per client IP.
func NewPublicRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	rps, burst := rate.Limit(defaultRateLimitRPS), defaultRateLimitBurst
	if cfg.RateLimit != nil {
		if cfg.RateLimit.RPS > 0 {
			rps = rate.Limit(cfg.RateLimit.RPS)
		}
		if cfg.RateLimit.Burst > 0 {
			burst = cfg.RateLimit.Burst
		}
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rps,
		Burst:     burst,
		ExpiresIn: rateLimitExpiry,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(echo.Context, error) error {
			return domainerrors.ErrRateLimited.WithDetails("client address could not be determined")
		},
		DenyHandler: func(echo.Context, string, error) error {
			return domainerrors.ErrRateLimited
		},
	})
}
