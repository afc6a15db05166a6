package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsByRoute(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/farmers/:id", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, echo.Map{"success": false})
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/farmers/Ramesh1234", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/api/farmers/:id", "404"))
	assert.Equal(t, 2.0, got)
}

func TestRecordersAndHandler(t *testing.T) {
	m := New()
	m.IdentityAttempt("collision")
	m.IdentityAttempt("ok")
	m.Compensation()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.identity.WithLabelValues("collision")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.compensations))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "farmtrack_linkage_compensations_total 1"))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.IdentityAttempt("ok")
	m.Compensation()

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
