package handler

import (
	"context"
	"io"
	"net/http"
	"testing"

	"sellerhub/internal/domain/entity"
	domainerrors "sellerhub/internal/domain/errors"
	mockUsecase "sellerhub/internal/mocks/usecase"
	"sellerhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBusinessTestServer(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockUsecase.MockBusinessUsecase) {
	uc := mockUsecase.NewMockBusinessUsecase(t)
	h := &BusinessHandler{uc: uc, mediaBase: testMediaBase}

	e := newTestEcho()
	e.POST("/update/business-profile", h.UpdateProfile, asUser(userID))
	e.POST("/create/bank-details", h.AddBankDetails, asUser(userID))
	e.GET("/business-details", h.GetBusinessDetails, asUser(userID))

	return e, uc
}

func TestBusinessHandler_UpdateProfile(t *testing.T) {
	userID := uuid.New()
	wantAddress := &entity.BusinessAddress{
		Line1:   "12 MG Road",
		City:    "Bengaluru",
		State:   "Karnataka",
		Pincode: "560001",
	}

	t.Run("json fields", func(t *testing.T) {
		e, uc := newBusinessTestServer(t, userID)
		uc.EXPECT().UpdateProfile(mock.Anything, &usecase.UpdateBusinessProfileInput{
			UserID: userID,
			Action: usecase.BusinessActionFields,
			Fields: entity.BusinessProfileFields{
				Name:           "Rao Traders",
				StoreName:      "Rao Store",
				Address:        wantAddress,
				EmailAddress:   "shop@example.com",
				PhoneNumber:    "9876543210",
				ShippingMethod: "courier",
			},
		}).Return(&entity.Business{UserID: userID, Name: "Rao Traders", Address: wantAddress}, nil).Once()

		rec := serve(e, jsonRequest(http.MethodPost, "/update/business-profile", `{
			"upload-file": "0",
			"business-name": " Rao Traders ",
			"business-store_name": "Rao Store",
			"business-address": {"line1": "12 MG Road", "city": "Bengaluru", "state": "Karnataka", "pincode": "560001"},
			"business-email": "shop@example.com",
			"business-contact_number": "9876543210",
			"business-shipping_method": "courier"
		}`))

		body := assertEnvelope(t, rec, http.StatusOK, http.StatusOK, "Successfully retrieved.")
		view := body["business"].(map[string]any)
		assert.Equal(t, "Rao Traders", view["name"])
		assert.Nil(t, view["profile_pic"])
		assert.Equal(t, []any{}, view["bank_details"])
		assert.Equal(t, "Bengaluru", view["address"].(map[string]any)["city"])
	})

	t.Run("form address as json string", func(t *testing.T) {
		e, uc := newBusinessTestServer(t, userID)
		uc.EXPECT().UpdateProfile(mock.Anything, mock.MatchedBy(func(in *usecase.UpdateBusinessProfileInput) bool {
			return in.Fields.Name == "Rao Traders" && assert.ObjectsAreEqual(wantAddress, in.Fields.Address)
		})).Return(&entity.Business{UserID: userID}, nil).Once()

		rec := serve(e, multipartRequest(t, "/update/business-profile", map[string]string{
			"upload-file":      "0",
			"business-name":    "Rao Traders",
			"business-address": `{"line1":"12 MG Road","city":"Bengaluru","state":"Karnataka","pincode":"560001"}`,
		}))

		assertEnvelope(t, rec, http.StatusOK, http.StatusOK, "Successfully retrieved.")
	})

	t.Run("profile picture", func(t *testing.T) {
		e, uc := newBusinessTestServer(t, userID)
		uc.EXPECT().UpdateProfile(mock.Anything, mock.Anything).RunAndReturn(
			func(_ context.Context, in *usecase.UpdateBusinessProfileInput) (*entity.Business, error) {
				assert.Equal(t, usecase.BusinessActionPicture, in.Action)
				require.NotNil(t, in.ProfilePic)
				assert.Equal(t, "logo.png", in.ProfilePic.Filename)
				content, err := io.ReadAll(in.ProfilePic.Content)
				require.NoError(t, err)
				assert.Equal(t, "png-bytes", string(content))

				return &entity.Business{UserID: userID, ProfilePic: "business/pic/2024/3/5/logo.png"}, nil
			}).Once()

		rec := serve(e, multipartRequest(t, "/update/business-profile",
			map[string]string{"upload-file": "1"},
			multipartFile{field: "profile-pic", filename: "logo.png", content: "png-bytes"}))

		body := assertEnvelope(t, rec, http.StatusOK, http.StatusOK, "Successfully retrieved.")
		assert.Equal(t, "/media/business/pic/2024/3/5/logo.png", body["business"].(map[string]any)["profile_pic"])
	})

	tests := []struct {
		name       string
		body       string
		wantFields map[string]any
	}{
		{
			name:       "name required when writing fields",
			body:       `{"upload-file":"0"}`,
			wantFields: map[string]any{"business-name": "This field is required."},
		},
		{
			name:       "any action other than picture writes fields",
			body:       `{"upload-file":"2"}`,
			wantFields: map[string]any{"business-name": "This field is required."},
		},
		{
			name:       "missing action",
			body:       `{"business-name":"Rao"}`,
			wantFields: map[string]any{"upload-file": "This field is required."},
		},
		{
			name: "incomplete address",
			body: `{"upload-file":"0","business-name":"Rao","business-address":{"line1":"12 MG Road","state":"KA","pincode":"560001"}}`,
			wantFields: map[string]any{"business-address.city": "This field is required."},
		},
		{
			name:       "invalid contact",
			body:       `{"upload-file":"0","business-name":"Rao","business-email":"nope","business-contact_number":"12ab"}`,
			wantFields: map[string]any{"business-email": "Enter a valid email address.", "business-contact_number": "Enter a valid contact number."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newBusinessTestServer(t, userID)

			rec := serve(e, jsonRequest(http.MethodPost, "/update/business-profile", tt.body))

			body := assertEnvelope(t, rec, http.StatusOK, domainerrors.StatusValidationFailed, "Invalid input.")
			assert.Equal(t, tt.wantFields, fieldMessages(t, body))
		})
	}
}

func TestBusinessHandler_AddBankDetails(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		e, uc := newBusinessTestServer(t, userID)
		uc.EXPECT().AddBankDetails(mock.Anything, &usecase.AddBankDetailsInput{
			UserID:        userID,
			AccHolderName: "Asha Rao",
			AccNumber:     "001234567890",
			IFSC:          "hdfc0001234",
		}).Return(&entity.BankDetails{AccHolderName: "Asha Rao", AccNumber: "001234567890", IFSC: "HDFC0001234"}, nil).Once()

		rec := serve(e, jsonRequest(http.MethodPost, "/create/bank-details",
			`{"acc-holder-name":"Asha Rao","acc-number":"001234567890","ifsc":"hdfc0001234"}`))

		body := assertEnvelope(t, rec, http.StatusOK, http.StatusOK, "Successfully created.")
		assert.Equal(t, map[string]any{
			"acc_holder_name": "Asha Rao",
			"acc_number":      "001234567890",
			"ifsc":            "HDFC0001234",
		}, body["bank"])
	})

	t.Run("business check runs before field checks", func(t *testing.T) {
		e, uc := newBusinessTestServer(t, userID)
		uc.EXPECT().AddBankDetails(mock.Anything, &usecase.AddBankDetailsInput{UserID: userID}).
			Return(nil, errors.WithStack(domainerrors.ErrBusinessProfileRequired)).Once()

		rec := serve(e, jsonRequest(http.MethodPost, "/create/bank-details", `{}`))

		body := assertEnvelope(t, rec, http.StatusOK, domainerrors.StatusPreconditionFailed, "First create your business profile.")
		assert.NotContains(t, body, "messages")
	})

	t.Run("field errors from the usecase", func(t *testing.T) {
		e, uc := newBusinessTestServer(t, userID)
		uc.EXPECT().AddBankDetails(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewValidationError("Enter all details.", map[string]string{"ifsc": "This field is required."})).Once()

		rec := serve(e, jsonRequest(http.MethodPost, "/create/bank-details",
			`{"acc-holder-name":"Asha Rao","acc-number":"001234567890"}`))

		body := assertEnvelope(t, rec, http.StatusOK, domainerrors.StatusValidationFailed, "Enter all details.")
		assert.Equal(t, map[string]any{"ifsc": "This field is required."}, fieldMessages(t, body))
	})
}

func TestBusinessHandler_GetBusinessDetails(t *testing.T) {
	userID := uuid.New()

	t.Run("lists bank accounts", func(t *testing.T) {
		e, uc := newBusinessTestServer(t, userID)
		uc.EXPECT().GetBusiness(mock.Anything, userID).Return(&entity.Business{
			UserID: userID,
			Name:   "Rao Traders",
			BankDetails: []*entity.BankDetails{
				{AccHolderName: "Asha Rao", AccNumber: "1", IFSC: "HDFC0001234"},
				{AccHolderName: "Asha Rao", AccNumber: "2", IFSC: "SBIN0005678"},
			},
		}, nil).Once()

		rec := serve(e, jsonRequest(http.MethodGet, "/business-details", ""))

		body := assertEnvelope(t, rec, http.StatusOK, http.StatusOK, "Successfully retrieved.")
		banks := body["business"].(map[string]any)["bank_details"].([]any)
		assert.Len(t, banks, 2)
	})

	t.Run("not found", func(t *testing.T) {
		e, uc := newBusinessTestServer(t, userID)
		uc.EXPECT().GetBusiness(mock.Anything, userID).
			Return(nil, errors.WithStack(domainerrors.ErrBusinessNotFound)).Once()

		rec := serve(e, jsonRequest(http.MethodGet, "/business-details", ""))

		assertEnvelope(t, rec, http.StatusNotFound, http.StatusNotFound, "Not found.")
	})
}
