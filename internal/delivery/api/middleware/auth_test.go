package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "sellerhub/internal/delivery/context"
	"sellerhub/internal/domain/service"
	mockService "sellerhub/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setupMock  func(tokenSvc *mockService.MockTokenService)
		wantCode   int
		wantMsg    string
		wantCalled bool
	}{
		{
			name:     "missing header",
			wantCode: http.StatusUnauthorized,
			wantMsg:  msgMissingCredentials,
		},
		{
			name:     "wrong scheme",
			header:   "Basic dXNlcjpwYXNz",
			wantCode: http.StatusUnauthorized,
			wantMsg:  msgInvalidToken,
		},
		{
			name:     "empty bearer",
			header:   "Bearer   ",
			wantCode: http.StatusUnauthorized,
			wantMsg:  msgInvalidToken,
		},
		{
			name:   "rejected token",
			header: "Bearer refresh-token",
			setupMock: func(tokenSvc *mockService.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("refresh-token").
					Return(nil, errors.New("token type mismatch")).Once()
			},
			wantCode: http.StatusUnauthorized,
			wantMsg:  msgInvalidToken,
		},
		{
			name:   "valid token",
			header: "bearer access-token",
			setupMock: func(tokenSvc *mockService.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("access-token").
					Return(&service.Claims{UserID: userID, Roles: []string{"user"}, Type: service.TokenTypeAccess}, nil).Once()
			},
			wantCode:   http.StatusOK,
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setupMock != nil {
				tt.setupMock(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc, newDiscardLogger())

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/user-details", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			called := false
			err := m.Authenticate(func(c echo.Context) error {
				called = true
				gotID, ok := deliverycontext.GetUserID(c)
				assert.True(t, ok)
				assert.Equal(t, userID, gotID)
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return c.NoContent(http.StatusOK)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantMsg != "" {
				var body map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantMsg, body["message"])
				assert.Equal(t, map[string]any{"code": float64(401), "msg": "failed"}, body["status"])
			}
		})
	}
}

func TestAuthMiddleware_Authenticate_RequestLogger(t *testing.T) {
	userID := uuid.New()
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken("access-token").
		Return(&service.Claims{UserID: userID, Roles: []string{"user", "staff"}, Type: service.TokenTypeAccess}, nil).Once()

	var buf bytes.Buffer
	m := NewAuthMiddleware(tokenSvc, slog.New(slog.NewJSONHandler(&buf, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/user-details", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer access-token")
	rec := httptest.NewRecorder()

	err := m.Authenticate(func(c echo.Context) error {
		deliverycontext.GetLogger(c.Request().Context()).Info("handled")

		return c.NoContent(http.StatusOK)
	})(e.NewContext(req, rec))
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "handled", entry["msg"])
	assert.Equal(t, userID.String(), entry["user_id"])
	assert.Equal(t, []any{"user", "staff"}, entry["roles"])
}
