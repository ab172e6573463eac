package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	deliverycontext "sellerhub/internal/delivery/context"
	domainerrors "sellerhub/internal/domain/errors"
	"sellerhub/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MediaHandler streams stored uploads by their storage reference.
type MediaHandler struct {
	storage service.FileStorage
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(storage service.FileStorage, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{storage: storage, logger: logger}
}

// Serve handles GET <media base>/* .
func (h *MediaHandler) Serve(c echo.Context) error {
	ref, err := url.PathUnescape(c.Param("*"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrNotFound, "malformed media path")
	}

	content, contentType, err := h.storage.Open(c.Request().Context(), ref)
	if err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "media")
		}
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Error("Failed to open media", slog.String("ref", ref), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrInternalError, "open media")
	}
	defer content.Close()

	return c.Stream(http.StatusOK, contentType, content)
}
