package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sellerhub/config"
	deliverycontext "sellerhub/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedEcho(t *testing.T, debug bool) (*echo.Echo, *bytes.Buffer) {
	t.Helper()

	logger, buf := newBufferLogger()
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e, buf
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		debug     bool
		handler   echo.HandlerFunc
		wantCode  int
		wantLevel string
	}{
		{
			name:     "success is quiet outside debug",
			handler:  func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantCode: http.StatusOK,
		},
		{
			name:      "success is logged in debug",
			debug:     true,
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantCode:  http.StatusOK,
			wantLevel: "INFO",
		},
		{
			name:      "client error",
			handler:   func(c echo.Context) error { return echo.ErrNotFound },
			wantCode:  http.StatusNotFound,
			wantLevel: "WARN",
		},
		{
			name: "server error carries the user",
			handler: func(c echo.Context) error {
				deliverycontext.SetUser(c, userID)

				return echo.ErrInternalServerError
			},
			wantCode:  http.StatusInternalServerError,
			wantLevel: "ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, buf := newLoggedEcho(t, tt.debug)
			e.GET("/home", tt.handler)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/home?page=2", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantLevel == "" {
				assert.Empty(t, buf.String())

				return
			}

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, "HTTP Request", line["msg"])
			assert.EqualValues(t, tt.wantCode, line["status"])
			assert.Equal(t, "page=2", line["query"])
			assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), line["request_id"])
			if tt.wantCode == http.StatusInternalServerError {
				assert.Equal(t, userID.String(), line["user_id"])
			}
		})
	}
}
