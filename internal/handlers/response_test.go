package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/service"
)

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	require.EqualValues(t, 42, id)

	for _, bad := range []string{"", "-1", "abc", "1.5"} {
		_, err := parseID(bad)
		require.Error(t, err, bad)
	}
}

func TestFailureMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
		body string
	}{
		{fmt.Errorf("product 9: %w", service.ErrNotFound), http.StatusNotFound, `{"error":"Product not found"}`},
		{fmt.Errorf("product id is required: %w", service.ErrValidation), http.StatusBadRequest, `{"error":"product id is required: validation"}`},
		{errors.New("disk I/O error"), http.StatusInternalServerError, `{"error":"internal server error"}`},
	}

	e := echo.New()
	for _, tc := range cases {
		var logs bytes.Buffer
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, failure(c, logging.NewWithWriter(&logs, "info"), "test_event", tc.err, msgProductNotFound))
		require.Equal(t, tc.code, rec.Code)
		require.JSONEq(t, tc.body, rec.Body.String())
		require.Contains(t, logs.String(), "test_event")
	}
}
