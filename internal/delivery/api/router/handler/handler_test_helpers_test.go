package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sellerhub/internal/delivery/api/middleware"
	"sellerhub/internal/delivery/api/validator"
	deliverycontext "sellerhub/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMediaBase = "/media"

// newTestEcho wires the validator and the envelope error handler the server uses.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

// asUser stands in for the auth middleware.
func asUser(userID uuid.UUID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetUser(c, userID)

			return next(c)
		}
	}
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

type multipartFile struct {
	field    string
	filename string
	content  string
}

func multipartRequest(t *testing.T, path string, values map[string]string, files ...multipartFile) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range values {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.field, file.filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(file.content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

// assertEnvelope checks the HTTP code and the status block, and returns the decoded body.
func assertEnvelope(t *testing.T, rec *httptest.ResponseRecorder, httpCode, statusCode int, message string) map[string]any {
	t.Helper()

	assert.Equal(t, httpCode, rec.Code)
	body := decodeEnvelope(t, rec)
	status, ok := body["status"].(map[string]any)
	require.True(t, ok, "status block missing: %s", rec.Body.String())
	assert.EqualValues(t, statusCode, status["code"])
	if statusCode == http.StatusOK {
		assert.Equal(t, "success", status["msg"])
	} else {
		assert.Equal(t, "failed", status["msg"])
	}
	assert.Equal(t, message, body["message"])

	return body
}

func fieldMessages(t *testing.T, body map[string]any) map[string]any {
	t.Helper()

	messages, ok := body["messages"].(map[string]any)
	require.True(t, ok, "messages missing: %v", body)

	return messages
}
