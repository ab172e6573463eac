// Package middleware contains the echo middleware of the API server.
package middleware

import (
	"log/slog"
	"strings"

	"sellerhub/internal/delivery/api/response"
	deliverycontext "sellerhub/internal/delivery/context"
	"sellerhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	msgMissingCredentials = "Authentication credentials were not provided."
	msgInvalidToken       = "Given token not valid for any token type"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer access token and stores the caller on the context.
// The request-scoped logger is extended with the user id and token roles.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, msgMissingCredentials)
		}

		scheme, tokenString, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, msgInvalidToken)
		}

		claims, err := m.tokenSvc.ValidateAccessToken(strings.TrimSpace(tokenString))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return response.Unauthorized(c, msgInvalidToken)
		}

		deliverycontext.SetUser(c, claims.UserID)

		ctx := c.Request().Context()
		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(
			slog.String("user_id", claims.UserID.String()),
			slog.Any("roles", claims.Roles),
		)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, reqLogger)))

		return next(c)
	}
}
