// Package response writes the JSON envelope shared by every endpoint.
package response

import (
	"maps"
	"net/http"

	domainerrors "sellerhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Payload keys used by the endpoints.
const (
	KeyUser      = "user"
	KeyUserID    = "user_id"
	KeyToken     = "token"
	KeySellerGST = "seller_gst"
	KeyBusiness  = "business"
	KeyBank      = "bank"
	KeyUsername  = "username"
)

// Status is the envelope status block.
type Status struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// Payload holds the named payload entries of a response, e.g. {"user": ...}.
type Payload map[string]any

// Envelope is the response body. Payload entries are written next to the fixed keys.
type Envelope map[string]any

func newEnvelope(status Status, message string, payload Payload) Envelope {
	body := make(Envelope, len(payload)+2)
	maps.Copy(body, payload)
	body["status"] = status
	if message != "" {
		body["message"] = message
	}

	return body
}

// Success writes a 200 response with status 200/success.
func Success(c echo.Context, message string, payload Payload) error {
	return c.JSON(http.StatusOK, newEnvelope(Status{
		Code: domainerrors.StatusSuccess,
		Msg:  domainerrors.StatusMsgSuccess,
	}, message, payload))
}

// Failure writes a failed envelope. Field messages are only written when present.
func Failure(c echo.Context, httpCode, statusCode int, message string, fields map[string]string) error {
	body := newEnvelope(Status{Code: statusCode, Msg: domainerrors.StatusMsgFailed}, message, nil)
	// Field details are never written for server or auth failures.
	if len(fields) > 0 && httpCode < http.StatusInternalServerError && httpCode != http.StatusUnauthorized {
		body["messages"] = fields
	}

	return c.JSON(httpCode, body)
}

// Unauthorized writes the 401 envelope used by the auth middleware.
func Unauthorized(c echo.Context, message string) error {
	return Failure(c, http.StatusUnauthorized, http.StatusUnauthorized, message, nil)
}

// InternalServerError writes the generic 500 envelope.
func InternalServerError(c echo.Context, message string) error {
	return Failure(c, http.StatusInternalServerError, http.StatusInternalServerError, message, nil)
}
