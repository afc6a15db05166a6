package controllerImp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		ping   PingFunc
		status int
		body   string
	}{
		{"up", func(context.Context) error { return nil }, http.StatusOK, `"ok":true`},
		{"down", func(context.Context) error { return errors.New("connection refused") }, http.StatusServiceUnavailable, "connection refused"},
		{"slow", func(ctx context.Context) error { <-ctx.Done(); return ctx.Err() }, http.StatusServiceUnavailable, "deadline exceeded"},
		{"unset", nil, http.StatusServiceUnavailable, "no store configured"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.GET("/health", NewHealthCtrl("sqlite", tt.ping).Health)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}
