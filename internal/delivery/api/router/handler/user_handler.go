// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"sellerhub/internal/delivery/api/response"
	"sellerhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler serves the account endpoints of the authenticated user.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// GetUserDetails handles GET /user-details.
func (h *UserHandler) GetUserDetails(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetUserDetails(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Successfully retrieved.", response.Payload{
		response.KeyUser: newUserView(user),
	})
}

// Home handles GET /home, a token check for clients.
func (h *UserHandler) Home(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetUserDetails(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "You are authenticated", response.Payload{
		response.KeyUsername: user.Email,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
