package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_RespondError_StatusMapping(t *testing.T) {
	tests := map[string]struct {
		err        error
		wantStatus int
	}{
		"required value": {
			err:        errs.NewValueIsRequiredError("name"),
			wantStatus: http.StatusBadRequest,
		},
		"invalid value": {
			err:        errs.NewValueIsInvalidError("status"),
			wantStatus: http.StatusBadRequest,
		},
		"unauthenticated": {
			err:        fmt.Errorf("%w: no session", errs.ErrUnauthenticated),
			wantStatus: http.StatusUnauthorized,
		},
		"forbidden": {
			err:        fmt.Errorf("%w: customers cannot manage packages", errs.ErrForbidden),
			wantStatus: http.StatusForbidden,
		},
		"not found": {
			err:        errs.NewObjectNotFoundError("order", "42"),
			wantStatus: http.StatusNotFound,
		},
		"already exists": {
			err:        errs.NewObjectAlreadyExistsError("email", "user@example.com"),
			wantStatus: http.StatusConflict,
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, respondError(c, logger, test.err))
			assert.Equal(t, test.wantStatus, rec.Code)

			var body response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, test.err.Error(), body.Message)
		})
	}
}

func Test_RespondError_UnknownErrorIsNotLeaked(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/orders", nil), rec)

	require.NoError(t, respondError(c, logger, errors.New("pq: connection refused")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.NotContains(t, body.Message, "pq:")
}
