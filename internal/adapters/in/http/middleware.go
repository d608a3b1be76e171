package http

import (
	"time"

	"quickbasket/internal/metrics"

	"github.com/labstack/echo/v4"
)

// RequestDurationMiddleware observes handler latency labeled by route template
// and method. Registered routes report their pattern (e.g. /api/v1/orders/:id),
// never the raw path, so cardinality stays bounded.
func RequestDurationMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		start := time.Now()
		err := next(ctx)
		metrics.RequestDuration.
			WithLabelValues(ctx.Path(), ctx.Request().Method).
			Observe(time.Since(start).Seconds())
		return err
	}
}
