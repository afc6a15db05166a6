package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

var appStart = time.Now()

// PingFunc checks the active store.
type PingFunc func(ctx context.Context) error

type HealthCtrl struct {
	store string
	ping  PingFunc
}

func NewHealthCtrl(store string, ping PingFunc) *HealthCtrl {
	return &HealthCtrl{store: store, ping: ping}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	if h.ping == nil {
		dbOK = false
		dbErr = "no store configured"
	} else if err := h.ping(ctx); err != nil {
		dbOK = false
		dbErr = "ping: " + err.Error()
	}

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK     bool   `json:"ok"`
		Driver string `json:"driver,omitempty"`
		Err    string `json:"err,omitempty"`
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": dbOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": sub{OK: dbOK, Driver: h.store, Err: dbErr},
		},
		"time": time.Now().Format(time.RFC3339),
	}
	return c.JSON(status, resp)
}
