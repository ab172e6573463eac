package handler

import (
	"sellerhub/internal/delivery/api/response"
	"sellerhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves registration, login, token and OTP endpoints.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:          req.Name,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		Password:      req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Registration Successful.", response.Payload{
		response.KeyToken:  newTokenView(output.Tokens),
		response.KeyUserID: output.UserID,
	})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Login Successful.", response.Payload{
		response.KeyToken: newTokenView(output.Tokens),
	})
}

// RefreshToken handles POST /token/refresh and returns a new access token only.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req refreshRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{RefreshToken: req.Refresh})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Token refreshed.", response.Payload{
		response.KeyToken: tokenView{Access: output.AccessToken},
	})
}

// VerifyOTP handles POST /verify/otp.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req verifyOTPRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.uc.VerifyOTP(c.Request().Context(), &usecase.VerifyOTPInput{
		UserID: userID,
		Target: req.Of,
		Code:   req.OTP,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Successfully OTP verified.", nil)
}

// Logout handles POST /logout by revoking the submitted refresh token.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req refreshRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.uc.Logout(c.Request().Context(), &usecase.LogoutInput{
		UserID:       userID,
		RefreshToken: req.Refresh,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Successfully logged out.", nil)
}
