package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"sellerhub/internal/domain/entity"
	domainerrors "sellerhub/internal/domain/errors"
	"sellerhub/internal/domain/repository"
	mockRepo "sellerhub/internal/mocks/repository"
	mockSvc "sellerhub/internal/mocks/service"
	"sellerhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// businessServiceFixtures holds all test dependencies for business service tests.
type businessServiceFixtures struct {
	service      usecase.BusinessUsecase
	businessRepo *mockRepo.MockBusinessRepository
	storage      *mockSvc.MockFileStorage
}

func createTestBusinessService(t *testing.T) businessServiceFixtures {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	storage := mockSvc.NewMockFileStorage(t)

	svc := NewBusinessService(BusinessServiceParams{
		BusinessRepo: businessRepo,
		Storage:      storage,
		Logger:       newDiscardLogger(),
	})
	svc.(*businessService).now = func() time.Time { return fixedNow }

	return businessServiceFixtures{
		service:      svc,
		businessRepo: businessRepo,
		storage:      storage,
	}
}

func TestBusinessService_UpdateProfile_Fields(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	userID := uuid.New()
	fields := entity.BusinessProfileFields{
		Name:           "Rao Traders",
		StoreName:      "Rao Store",
		Address:        &entity.BusinessAddress{Line1: "12 MG Road", City: "Pune", State: "MH", Pincode: "411001"},
		EmailAddress:   "store@example.com",
		PhoneNumber:    "9876543210",
		ShippingMethod: "courier",
	}
	want := &entity.Business{ID: uuid.New(), UserID: userID, Name: fields.Name, Address: fields.Address}

	fx.businessRepo.EXPECT().UpsertProfile(ctx, userID, fields).Return(want, nil)

	got, err := fx.service.UpdateProfile(ctx, &usecase.UpdateBusinessProfileInput{
		UserID: userID,
		Action: usecase.BusinessActionFields,
		Fields: fields,
	})

	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestBusinessService_UpdateProfile_OtherActionWritesFields(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	userID := uuid.New()
	fields := entity.BusinessProfileFields{Name: "Rao Traders"}
	want := &entity.Business{UserID: userID, Name: fields.Name}

	fx.businessRepo.EXPECT().UpsertProfile(ctx, userID, fields).Return(want, nil).Once()

	got, err := fx.service.UpdateProfile(ctx, &usecase.UpdateBusinessProfileInput{
		UserID: userID,
		Action: "2",
		Fields: fields,
	})

	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestBusinessService_UpdateProfile_Picture(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	userID := uuid.New()
	wantKey := "business/pic/2024/3/5/" + userID.String() + "-logo.png"
	want := &entity.Business{UserID: userID, ProfilePic: wantKey}

	fx.storage.EXPECT().Save(ctx, wantKey, "image/png", mock.Anything).Return(wantKey, nil)
	fx.businessRepo.EXPECT().UpsertProfilePic(ctx, userID, wantKey).Return(want, nil)

	got, err := fx.service.UpdateProfile(ctx, &usecase.UpdateBusinessProfileInput{
		UserID: userID,
		Action: usecase.BusinessActionPicture,
		ProfilePic: &usecase.UploadFile{
			Filename:    "../logo.png",
			ContentType: "image/png",
			Content:     strings.NewReader("png"),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, wantKey, got.ProfilePic)
}

func TestBusinessService_UpdateProfile_Rejected(t *testing.T) {
	tests := []struct {
		name      string
		input     usecase.UpdateBusinessProfileInput
		wantField string
	}{
		{
			name:      "missing action",
			input:     usecase.UpdateBusinessProfileInput{},
			wantField: "upload-file",
		},
		{
			name:      "picture action without file",
			input:     usecase.UpdateBusinessProfileInput{Action: usecase.BusinessActionPicture},
			wantField: "profile-pic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBusinessService(t)
			tt.input.UserID = uuid.New()

			got, err := fx.service.UpdateProfile(context.Background(), &tt.input)

			assert.Nil(t, got)
			appErr := requireAppError(t, err)
			assert.Equal(t, domainerrors.StatusValidationFailed, appErr.StatusCode())
			assert.Contains(t, appErr.FieldErrors(), tt.wantField)
		})
	}
}

func TestBusinessService_AddBankDetails_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	userID := uuid.New()
	business := &entity.Business{ID: uuid.New(), UserID: userID}

	fx.businessRepo.EXPECT().FindByUserID(ctx, userID).Return(business, nil)
	fx.businessRepo.EXPECT().
		CreateBankDetails(ctx, mock.MatchedBy(func(bank *entity.BankDetails) bool {
			return bank.BusinessID == business.ID && bank.IFSC == "HDFC0001234" && bank.AccNumber == "50100012345678"
		})).
		Return(nil)

	bank, err := fx.service.AddBankDetails(ctx, &usecase.AddBankDetailsInput{
		UserID:        userID,
		AccHolderName: "Asha Rao",
		AccNumber:     " 50100012345678 ",
		IFSC:          "hdfc0001234",
	})

	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", bank.AccHolderName)
	assert.Equal(t, "HDFC0001234", bank.IFSC)
}

func TestBusinessService_AddBankDetails_RequiresBusiness(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.businessRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrBusinessNotFound)

	bank, err := fx.service.AddBankDetails(ctx, &usecase.AddBankDetailsInput{
		UserID:        userID,
		AccHolderName: "Asha Rao",
		AccNumber:     "50100012345678",
		IFSC:          "HDFC0001234",
	})

	assert.Nil(t, bank)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessProfileRequired))
	appErr := requireAppError(t, err)
	assert.Equal(t, domainerrors.StatusPreconditionFailed, appErr.StatusCode())
	assert.Equal(t, "First create your business profile.", appErr.Message())
}

func TestBusinessService_AddBankDetails_InvalidFields(t *testing.T) {
	tests := []struct {
		name       string
		input      usecase.AddBankDetailsInput
		wantFields map[string]string
	}{
		{
			name:       "missing account number",
			input:      usecase.AddBankDetailsInput{AccHolderName: "Asha Rao", IFSC: "HDFC0001234"},
			wantFields: map[string]string{"acc-number": "This field is required."},
		},
		{
			name:  "blank fields",
			input: usecase.AddBankDetailsInput{AccHolderName: "  ", AccNumber: " "},
			wantFields: map[string]string{
				"acc-holder-name": "This field is required.",
				"acc-number":      "This field is required.",
				"ifsc":            "This field is required.",
			},
		},
		{
			name:       "ifsc longer than the column",
			input:      usecase.AddBankDetailsInput{AccHolderName: "Asha Rao", AccNumber: "1", IFSC: "HDFC00012345"},
			wantFields: map[string]string{"ifsc": "Ensure this field has no more than 11 characters."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBusinessService(t)

			ctx := context.Background()
			tt.input.UserID = uuid.New()
			fx.businessRepo.EXPECT().FindByUserID(ctx, tt.input.UserID).Return(&entity.Business{ID: uuid.New()}, nil).Once()

			bank, err := fx.service.AddBankDetails(ctx, &tt.input)

			assert.Nil(t, bank)
			appErr := requireAppError(t, err)
			assert.Equal(t, domainerrors.StatusValidationFailed, appErr.StatusCode())
			assert.Equal(t, "Enter all details.", appErr.Message())
			assert.Equal(t, tt.wantFields, appErr.FieldErrors())
		})
	}
}

// A missing business wins over missing fields.
func TestBusinessService_AddBankDetails_BusinessCheckedFirst(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.businessRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrBusinessNotFound).Once()

	bank, err := fx.service.AddBankDetails(ctx, &usecase.AddBankDetailsInput{UserID: userID})

	assert.Nil(t, bank)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessProfileRequired))
}

func TestBusinessService_GetBusiness(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := createTestBusinessService(t)
		ctx := context.Background()
		userID := uuid.New()
		want := &entity.Business{UserID: userID, BankDetails: []*entity.BankDetails{{IFSC: "HDFC0001234"}}}

		fx.businessRepo.EXPECT().FindByUserID(ctx, userID).Return(want, nil)

		got, err := fx.service.GetBusiness(ctx, userID)

		require.NoError(t, err)
		assert.Len(t, got.BankDetails, 1)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestBusinessService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.businessRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrBusinessNotFound)

		got, err := fx.service.GetBusiness(ctx, userID)

		assert.Nil(t, got)
		assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
	})
}
