package handler

import (
	"sellerhub/config"
	"sellerhub/internal/delivery/api/response"
	"sellerhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const fieldProfilePic = "profile-pic"

// BusinessHandler serves the business profile and bank details endpoints.
type BusinessHandler struct {
	uc        usecase.BusinessUsecase
	mediaBase string
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.BusinessUsecase, cfg *config.Config) *BusinessHandler {
	return &BusinessHandler{uc: uc, mediaBase: cfg.Storage.MediaBasePath}
}

// UpdateProfile handles POST /update/business-profile.
// upload-file "1" stores profile-pic, any other value writes the profile fields.
func (h *BusinessHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req businessProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.Address.isZero() {
		req.Address = nil
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateBusinessProfileInput{
		UserID: userID,
		Action: req.Action,
		Fields: req.fields(),
	}

	if req.Action == usecase.BusinessActionPicture {
		file, release, err := formFile(c, fieldProfilePic)
		if err != nil {
			return err
		}
		defer release()
		input.ProfilePic = file
	}

	business, err := h.uc.UpdateProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Successfully retrieved.", response.Payload{
		response.KeyBusiness: newBusinessView(business, h.mediaBase),
	})
}

// AddBankDetails handles POST /create/bank-details.
func (h *BusinessHandler) AddBankDetails(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req bankDetailsRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	bank, err := h.uc.AddBankDetails(c.Request().Context(), &usecase.AddBankDetailsInput{
		UserID:        userID,
		AccHolderName: req.AccHolderName,
		AccNumber:     req.AccNumber,
		IFSC:          req.IFSC,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Successfully created.", response.Payload{
		response.KeyBank: newBankView(bank),
	})
}

// GetBusinessDetails handles GET /business-details.
func (h *BusinessHandler) GetBusinessDetails(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	business, err := h.uc.GetBusiness(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Successfully retrieved.", response.Payload{
		response.KeyBusiness: newBusinessView(business, h.mediaBase),
	})
}
