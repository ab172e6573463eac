package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "sellerhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantHTTP int
		wantBody string
	}{
		{
			name:     "validation error keeps field messages",
			err:      errors.WithStack(domainerrors.NewValidationError("", map[string]string{"email": "Enter a valid email address."})),
			wantHTTP: http.StatusOK,
			wantBody: `{"status":{"code":220,"msg":"failed"},"message":"Invalid input.","messages":{"email":"Enter a valid email address."}}`,
		},
		{
			name:     "precondition",
			err:      errors.Wrap(domainerrors.ErrBusinessProfileRequired, "add bank details"),
			wantHTTP: http.StatusOK,
			wantBody: `{"status":{"code":230,"msg":"failed"},"message":"First create your business profile."}`,
		},
		{
			name:     "unauthorized never exposes fields",
			err:      domainerrors.ErrUnauthorized.WithFields(map[string]string{"token": "expired"}),
			wantHTTP: http.StatusUnauthorized,
			wantBody: `{"status":{"code":401,"msg":"failed"},"message":"Authentication credentials were not provided or are invalid."}`,
		},
		{
			name:     "not found",
			err:      errors.WithStack(domainerrors.ErrSellerGSTNotFound),
			wantHTTP: http.StatusNotFound,
			wantBody: `{"status":{"code":404,"msg":"failed"},"message":"Not found."}`,
		},
		{
			name:     "echo route miss",
			err:      echo.ErrNotFound,
			wantHTTP: http.StatusNotFound,
			wantBody: `{"status":{"code":404,"msg":"failed"},"message":"Not Found"}`,
		},
		{
			name:     "echo body limit",
			err:      echo.ErrStatusRequestEntityTooLarge,
			wantHTTP: http.StatusRequestEntityTooLarge,
			wantBody: `{"status":{"code":413,"msg":"failed"},"message":"Request Entity Too Large"}`,
		},
		{
			name:     "unknown error",
			err:      errors.New("pq: connection refused"),
			wantHTTP: http.StatusInternalServerError,
			wantBody: `{"status":{"code":500,"msg":"failed"},"message":"Internal server error, please try again later"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewErrorMiddleware(newDiscardLogger())
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/register", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantHTTP, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/home", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())

	var body map[string]any
	assert.Error(t, json.Unmarshal(rec.Body.Bytes(), &body))
}
