package middleware

import (
	"strconv"
	"time"

	"repair_intake/internal/infrastructure/logging"
	"repair_intake/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger logs one line per request and records its latency.
// Causes attached with c.Error are logged with the line.
func RequestLogger(logger *zerolog.Logger) gin.HandlerFunc {
	l := logging.OrNop(logger).With().Str("component", "http").Logger()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		latency := time.Since(start)
		metrics.ObserveHTTPRequest(c.Request.Method, route, strconv.Itoa(status), latency.Seconds())

		var ev *zerolog.Event
		switch {
		case status >= 500:
			ev = l.Error()
		case status >= 400:
			ev = l.Warn()
		default:
			ev = l.Info()
		}
		ev = ev.Str("method", c.Request.Method).
			Str("route", route).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP())
		if len(c.Errors) > 0 {
			ev = ev.Str("error", c.Errors.String())
		}
		ev.Msg("request")
	}
}

// Recovery turns a panic into a 500 and logs it.
func Recovery(logger *zerolog.Logger) gin.HandlerFunc {
	l := logging.OrNop(logger).With().Str("component", "http").Logger()
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		l.Error().Interface("panic", recovered).Str("route", c.FullPath()).Msg("recovered from panic")
		c.AbortWithStatus(500)
	})
}
