package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"farmtrack/pkg/apperr"
	"farmtrack/pkg/auth/token"
)

// Auth resolves the caller from an "Authorization: Bearer" header and sets
// "uid" and "role" on the context. With enabled=false requests without a
// usable token pass through anonymously.
func Auth(enabled bool, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if raw == "" {
				if !enabled {
					return next(c)
				}
				return apperr.Respond(c, apperr.Unauthorized("access denied: no token provided"))
			}
			claims, err := token.Parse(secret, raw)
			if err != nil {
				if !enabled {
					return next(c)
				}
				return apperr.Respond(c, apperr.Forbidden("invalid or expired token"))
			}
			c.Set("uid", claims.Subject)
			c.Set("role", claims.Role)
			return next(c)
		}
	}
}

func bearer(h string) string {
	scheme, rest, ok := strings.Cut(strings.TrimSpace(h), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(rest)
}
