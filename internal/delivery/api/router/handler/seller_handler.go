package handler

import (
	"sellerhub/config"
	"sellerhub/internal/delivery/api/response"
	"sellerhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const fieldGSTCertificate = "gst-certificate"

// SellerHandler serves the GST onboarding endpoints.
type SellerHandler struct {
	uc        usecase.SellerUsecase
	mediaBase string
}

// NewSellerHandler is the constructor for SellerHandler, injected by Fx.
func NewSellerHandler(uc usecase.SellerUsecase, cfg *config.Config) *SellerHandler {
	return &SellerHandler{uc: uc, mediaBase: cfg.Storage.MediaBasePath}
}

// UploadCertificate handles POST /upload/gst-certificate (multipart).
func (h *SellerHandler) UploadCertificate(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	file, release, err := formFile(c, fieldGSTCertificate)
	if err != nil {
		return err
	}
	defer release()

	gst, err := h.uc.UploadCertificate(c.Request().Context(), &usecase.UploadCertificateInput{
		UserID: userID,
		File:   file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Successfully certificate uploaded.", response.Payload{
		response.KeySellerGST: newSellerGSTView(gst, h.mediaBase),
	})
}

// UpdateGSTDetails handles POST /update/gst-details.
func (h *SellerHandler) UpdateGSTDetails(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req gstDetailsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	gst, err := h.uc.UpdateDetails(c.Request().Context(), &usecase.UpdateGSTDetailsInput{
		UserID:          userID,
		TradeName:       req.TradeName,
		GSTNumber:       req.GSTNumber,
		GSTType:         req.GSTType,
		LegalName:       req.LegalName,
		BusinessAddress: req.BusinessAddress,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Successfully retrieved.", response.Payload{
		response.KeySellerGST: newSellerGSTView(gst, h.mediaBase),
	})
}

// GetSellerDetails handles GET /seller-details.
func (h *SellerHandler) GetSellerDetails(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	gst, err := h.uc.GetSellerDetails(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Successfully retrieved.", response.Payload{
		response.KeySellerGST: newSellerGSTView(gst, h.mediaBase),
	})
}
