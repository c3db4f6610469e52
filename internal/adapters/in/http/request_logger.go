package http

import (
	"net/http"
	"time"

	"packing/internal/logger"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLogger logs one structured line per request. The level follows the
// response status: error for 5xx, warn for 4xx, info otherwise.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			log := logger.Component("http").With().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("route", c.Path()).
				Int("status_code", status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Str("ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Logger()
			if principal := Principal(c); principal != nil {
				log = log.With().Int64("principal", *principal).Logger()
			}

			levelFor(status, &log).Msg("HTTP request")
			return nil
		}
	}
}

func levelFor(status int, log *zerolog.Logger) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}
