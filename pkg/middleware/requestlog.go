package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestLog writes one access line per request. Run it inside
// echo's RequestID middleware so the id is already on the response.
func RequestLog(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			status := c.Response().Status
			lvl := zapcore.InfoLevel
			switch {
			case status >= 500:
				lvl = zapcore.ErrorLevel
			case status >= 400:
				lvl = zapcore.WarnLevel
			}
			if ce := log.Check(lvl, "request"); ce != nil {
				ce.Write(
					zap.String("method", c.Request().Method),
					zap.String("path", c.Request().URL.Path),
					zap.String("route", c.Path()),
					zap.Int("status", status),
					zap.Duration("latency", time.Since(start)),
					zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
					zap.String("remote_ip", c.RealIP()),
				)
			}
			return nil
		}
	}
}
