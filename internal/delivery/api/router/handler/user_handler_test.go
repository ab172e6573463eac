package handler

import (
	"net/http"
	"testing"

	"sellerhub/internal/domain/entity"
	domainerrors "sellerhub/internal/domain/errors"
	mockUsecase "sellerhub/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newUserTestServer(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockUsecase.MockUserUsecase) {
	uc := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc)

	e := newTestEcho()
	e.GET("/health", HealthCheck)
	e.GET("/user-details", h.GetUserDetails, asUser(userID))
	e.GET("/home", h.Home, asUser(userID))

	return e, uc
}

func TestUserHandler_GetUserDetails(t *testing.T) {
	userID := uuid.New()
	user := &entity.User{
		ID:            userID,
		Name:          "Asha Rao",
		Email:         "asha@example.com",
		ContactNumber: "9876543210",
		PasswordHash:  "$2a$10$hash",
		IsActive:      true,
		Details:       &entity.UserDetails{UserID: userID, EmailVerified: true},
	}

	tests := []struct {
		name      string
		user      *entity.User
		err       error
		wantHTTP  int
		wantCode  int
		wantMsg   string
		wantEmail any
	}{
		{
			name:      "found",
			user:      user,
			wantHTTP:  http.StatusOK,
			wantCode:  http.StatusOK,
			wantMsg:   "Successfully retrieved.",
			wantEmail: "asha@example.com",
		},
		{
			name:     "missing",
			err:      errors.WithStack(domainerrors.ErrUserNotFound),
			wantHTTP: http.StatusNotFound,
			wantCode: http.StatusNotFound,
			wantMsg:  "User not found.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, uc := newUserTestServer(t, userID)
			uc.EXPECT().GetUserDetails(mock.Anything, userID).Return(tt.user, tt.err).Once()

			rec := serve(e, jsonRequest(http.MethodGet, "/user-details", ""))

			body := assertEnvelope(t, rec, tt.wantHTTP, tt.wantCode, tt.wantMsg)
			if tt.wantEmail == nil {
				assert.NotContains(t, body, "user")

				return
			}
			view := body["user"].(map[string]any)
			assert.Equal(t, tt.wantEmail, view["email"])
			assert.Equal(t, true, view["email_verified"])
			assert.Equal(t, false, view["is_seller"])
			assert.NotContains(t, view, "password")
			assert.NotContains(t, rec.Body.String(), "$2a$10$hash")
		})
	}
}

func TestUserHandler_Home(t *testing.T) {
	userID := uuid.New()
	e, uc := newUserTestServer(t, userID)
	uc.EXPECT().GetUserDetails(mock.Anything, userID).
		Return(&entity.User{ID: userID, Email: "asha@example.com"}, nil).Once()

	rec := serve(e, jsonRequest(http.MethodGet, "/home", ""))

	body := assertEnvelope(t, rec, http.StatusOK, http.StatusOK, "You are authenticated")
	assert.Equal(t, "asha@example.com", body["username"])
}

func TestHealthCheck(t *testing.T) {
	e, _ := newUserTestServer(t, uuid.New())

	rec := serve(e, jsonRequest(http.MethodGet, "/health", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
