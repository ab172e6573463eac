package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	deliverycontext "sellerhub/internal/delivery/context"
	"sellerhub/internal/domain/entity"
	domainerrors "sellerhub/internal/domain/errors"
	"sellerhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type registerRequest struct {
	Name          string `json:"name" form:"name" validate:"required,max=500,personname"`
	Email         string `json:"email" form:"email" validate:"required,email,max=255"`
	ContactNumber string `json:"contact_number" form:"contact_number" validate:"required,contactnumber"`
	Password      string `json:"password" form:"password" validate:"required,max=128"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" form:"refresh"`
}

type verifyOTPRequest struct {
	Of  string `json:"of" form:"of"`
	OTP string `json:"otp" form:"otp"`
}

type gstDetailsRequest struct {
	TradeName       string `json:"trade-name" form:"trade-name" validate:"max=255"`
	GSTNumber       string `json:"gst-no" form:"gst-no" validate:"max=50"`
	GSTType         string `json:"gst-type" form:"gst-type" validate:"max=50"`
	LegalName       string `json:"legal-name" form:"legal-name" validate:"max=255"`
	BusinessAddress string `json:"business_address" form:"business_address"`
}

type businessProfileRequest struct {
	Action         string        `json:"upload-file" form:"upload-file" validate:"required"`
	Name           string        `json:"business-name" form:"business-name" validate:"required_unless=Action 1,max=255"`
	StoreName      string        `json:"business-store_name" form:"business-store_name" validate:"max=255"`
	Address        *addressInput `json:"business-address" form:"business-address" validate:"omitempty"`
	Email          string        `json:"business-email" form:"business-email" validate:"omitempty,email,max=255"`
	ContactNumber  string        `json:"business-contact_number" form:"business-contact_number" validate:"omitempty,contactnumber"`
	ShippingMethod string        `json:"business-shipping_method" form:"business-shipping_method" validate:"max=100"`
}

func (r *businessProfileRequest) fields() entity.BusinessProfileFields {
	fields := entity.BusinessProfileFields{
		Name:           strings.TrimSpace(r.Name),
		StoreName:      strings.TrimSpace(r.StoreName),
		EmailAddress:   strings.TrimSpace(r.Email),
		PhoneNumber:    strings.TrimSpace(r.ContactNumber),
		ShippingMethod: strings.TrimSpace(r.ShippingMethod),
	}
	if r.Address != nil {
		fields.Address = r.Address.toEntity()
	}

	return fields
}

// addressInput is the business address; form posts carry it as a JSON string.
type addressInput struct {
	Line1   string `json:"line1" validate:"required,max=255"`
	Line2   string `json:"line2" validate:"max=255"`
	City    string `json:"city" validate:"required,max=100"`
	State   string `json:"state" validate:"required,max=100"`
	Pincode string `json:"pincode" validate:"required,max=10"`
	Country string `json:"country" validate:"max=100"`
}

type addressFields addressInput

// UnmarshalJSON accepts the address as an object or as a string holding the object.
func (a *addressInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return errors.WithStack(err)
		}

		return a.UnmarshalParam(raw)
	}

	return errors.WithStack(json.Unmarshal(data, (*addressFields)(a)))
}

// UnmarshalParam implements echo.BindUnmarshaler for form values.
func (a *addressInput) UnmarshalParam(param string) error {
	if strings.TrimSpace(param) == "" {
		return nil
	}

	return errors.WithStack(json.Unmarshal([]byte(param), (*addressFields)(a)))
}

func (a *addressInput) isZero() bool {
	return a == nil || *a == addressInput{}
}

func (a *addressInput) toEntity() *entity.BusinessAddress {
	return &entity.BusinessAddress{
		Line1:   strings.TrimSpace(a.Line1),
		Line2:   strings.TrimSpace(a.Line2),
		City:    strings.TrimSpace(a.City),
		State:   strings.TrimSpace(a.State),
		Pincode: strings.TrimSpace(a.Pincode),
		Country: strings.TrimSpace(a.Country),
	}
}

// bankDetailsRequest is checked by the usecase once the business is known to exist.
type bankDetailsRequest struct {
	AccHolderName string `json:"acc-holder-name" form:"acc-holder-name"`
	AccNumber     string `json:"acc-number" form:"acc-number"`
	IFSC          string `json:"ifsc" form:"ifsc"`
}

// bind decodes the JSON or form body into req. Malformed bodies are validation failures.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// bindAndValidate decodes req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := bind(c, req); err != nil {
		return err
	}

	return errors.WithStack(c.Validate(req))
}

// currentUserID returns the caller set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, errors.Wrap(domainerrors.ErrUnauthorized, "no authenticated user on context")
	}

	return userID, nil
}

// formFile opens an optional multipart file. A missing file yields nil and a no-op release.
func formFile(c echo.Context, field string) (*usecase.UploadFile, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}

		return nil, nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open uploaded file %s", field)
	}

	return &usecase.UploadFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Content:     file,
	}, func() { _ = file.Close() }, nil
}
