package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("missing required fields", "name"), http.StatusBadRequest},
		{NotFound("farmer %q not found", "x"), http.StatusNotFound},
		{Conflict("duplicate", nil), http.StatusConflict},
		{IdentityExhausted(errors.New("boom")), http.StatusInternalServerError},
		{Storage("insert farmer", errors.New("disk full")), http.StatusInternalServerError},
		{Unauthorized("Invalid credentials"), http.StatusUnauthorized},
		{Forbidden("Invalid or expired token"), http.StatusForbidden},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Status(tc.err), tc.err.Error())
	}
}

func TestKindOfWrapped(t *testing.T) {
	base := NotFound("farmer %q not found", "Ramesh1234")
	wrapped := fmt.Errorf("link cultivation: %w", base)

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, Is(wrapped, KindNotFound))
	assert.False(t, Is(nil, KindNotFound))
	assert.Equal(t, KindInternal, KindOf(errors.New("x")))
}

func TestErrorMessageIncludesFieldsAndCause(t *testing.T) {
	err := Validation("missing required fields", "name", "phone")
	assert.Equal(t, "missing required fields: name, phone", err.Error())

	cause := errors.New("connection refused")
	serr := Storage("list farmers", cause)
	assert.Equal(t, "list farmers: connection refused", serr.Error())
	assert.ErrorIs(t, serr, cause)
}

func TestRespond(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, Respond(c, Validation("invalid fields", "landOwnership")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"code":"validation","message":"invalid fields: landOwnership","fields":["landOwnership"]}`, rec.Body.String())
}
