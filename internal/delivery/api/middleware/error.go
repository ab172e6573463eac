package middleware

import (
	"log/slog"
	"net/http"

	"sellerhub/internal/delivery/api/response"
	deliverycontext "sellerhub/internal/delivery/context"
	domainerrors "sellerhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const msgInternalError = "Internal server error, please try again later"

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler and always answers with the envelope.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("error_code", appErr.ErrorCode()),
			)
		}
		_ = response.Failure(c, appErr.HTTPCode(), appErr.StatusCode(), appErr.Message(), appErr.FieldErrors())

		return
	}

	// Routing, body limit and binding failures raised by echo itself
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		_ = response.Failure(c, httpErr.Code, httpErr.Code, message, nil)

		return
	}

	logger.Error("Unhandled error", slog.Any("error", err))

	// For 500 errors, do not expose internal error details to the client
	_ = response.InternalServerError(c, msgInternalError)
}
