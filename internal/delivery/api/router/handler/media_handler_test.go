package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"sellerhub/internal/domain/service"
	mockService "sellerhub/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newMediaTestServer(t *testing.T) (*echo.Echo, *mockService.MockFileStorage) {
	storage := mockService.NewMockFileStorage(t)
	h := NewMediaHandler(storage, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := newTestEcho()
	e.GET(testMediaBase+"/*", h.Serve)

	return e, storage
}

func TestMediaHandler_Serve(t *testing.T) {
	const ref = "gst/certificate/2024/3/5/AB12CD34EFU-cert.pdf"

	t.Run("streams the stored file", func(t *testing.T) {
		e, storage := newMediaTestServer(t)
		storage.EXPECT().Open(mock.Anything, ref).
			Return(io.NopCloser(strings.NewReader("%PDF-1.4")), "application/pdf", nil).Once()

		rec := serve(e, jsonRequest(http.MethodGet, testMediaBase+"/"+ref, ""))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "%PDF-1.4", rec.Body.String())
	})

	t.Run("escaped path", func(t *testing.T) {
		e, storage := newMediaTestServer(t)
		storage.EXPECT().Open(mock.Anything, "business/pic/2024/3/5/my logo.png").
			Return(io.NopCloser(strings.NewReader("png")), "image/png", nil).Once()

		rec := serve(e, jsonRequest(http.MethodGet, testMediaBase+"/business/pic/2024/3/5/my%20logo.png", ""))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown reference", func(t *testing.T) {
		e, storage := newMediaTestServer(t)
		storage.EXPECT().Open(mock.Anything, ref).Return(nil, "", errors.WithStack(service.ErrFileNotFound)).Once()

		rec := serve(e, jsonRequest(http.MethodGet, testMediaBase+"/"+ref, ""))

		assertEnvelope(t, rec, http.StatusNotFound, http.StatusNotFound, "Not found.")
	})

	t.Run("storage failure", func(t *testing.T) {
		e, storage := newMediaTestServer(t)
		storage.EXPECT().Open(mock.Anything, ref).Return(nil, "", errors.New("bucket offline")).Once()

		rec := serve(e, jsonRequest(http.MethodGet, testMediaBase+"/"+ref, ""))

		assertEnvelope(t, rec, http.StatusInternalServerError, http.StatusInternalServerError,
			"Internal server error, please try again later")
	})
}
