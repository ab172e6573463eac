package impl

import (
	"context"
	"io"
	"regexp"
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

var sellerIDPattern = regexp.MustCompile(`^[A-Z0-9]{10}U[0-9a-f-]{36}$`)

// sellerServiceFixtures holds all test dependencies for seller service tests.
type sellerServiceFixtures struct {
	service  usecase.SellerUsecase
	gstRepo  *mockRepo.MockSellerGSTRepository
	userRepo *mockRepo.MockUserRepository
	storage  *mockSvc.MockFileStorage
	mailer   *mockSvc.MockOTPMailer
}

func createTestSellerService(t *testing.T) sellerServiceFixtures {
	gstRepo := mockRepo.NewMockSellerGSTRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	storage := mockSvc.NewMockFileStorage(t)
	mailer := mockSvc.NewMockOTPMailer(t)

	svc := NewSellerService(SellerServiceParams{
		SellerGSTRepo: gstRepo,
		UserRepo:      userRepo,
		Storage:       storage,
		Mailer:        mailer,
		Logger:        newDiscardLogger(),
	})
	svc.(*sellerService).now = func() time.Time { return fixedNow }

	return sellerServiceFixtures{
		service:  svc,
		gstRepo:  gstRepo,
		userRepo: userRepo,
		storage:  storage,
		mailer:   mailer,
	}
}

func certificateUpload() *usecase.UploadFile {
	return &usecase.UploadFile{
		Filename:    "gst cert.pdf",
		ContentType: "application/pdf",
		Size:        8,
		Content:     strings.NewReader("%PDF-1.7"),
	}
}

func TestSellerService_UploadCertificate_FirstUpload(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	userID := uuid.New()
	var savedKey string

	fx.gstRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrSellerGSTNotFound)
	fx.storage.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "application/pdf", mock.Anything).
		RunAndReturn(func(_ context.Context, key, _ string, _ io.Reader) (string, error) {
			savedKey = key

			return key, nil
		})
	fx.gstRepo.EXPECT().
		UpsertCertificate(ctx, mock.AnythingOfType("*entity.SellerGST")).
		RunAndReturn(func(_ context.Context, gst *entity.SellerGST) (*entity.SellerGST, error) {
			return &entity.SellerGST{ID: uuid.New(), UserID: gst.UserID, SellerID: gst.SellerID, Certificate: gst.Certificate}, nil
		})

	gst, err := fx.service.UploadCertificate(ctx, &usecase.UploadCertificateInput{UserID: userID, File: certificateUpload()})

	require.NoError(t, err)
	assert.Regexp(t, sellerIDPattern, gst.SellerID)
	assert.True(t, strings.HasSuffix(gst.SellerID, "U"+userID.String()))
	assert.Equal(t, "gst/certificate/2024/3/5/"+gst.SellerID+"-gst_cert.pdf", savedKey)
	assert.Equal(t, savedKey, gst.Certificate)
}

func TestSellerService_UploadCertificate_ReuploadKeepsSellerID(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.SellerGST{UserID: userID, SellerID: "ABCDEFGHIJU" + userID.String(), Certificate: "old-ref", GSTVerified: true}
	wantKey := "gst/certificate/2024/3/5/" + existing.SellerID + "-gst_cert.pdf"

	fx.gstRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)
	fx.storage.EXPECT().Save(ctx, wantKey, "application/pdf", mock.Anything).Return(wantKey, nil)
	fx.gstRepo.EXPECT().
		UpsertCertificate(ctx, mock.MatchedBy(func(gst *entity.SellerGST) bool {
			return gst.SellerID == existing.SellerID && gst.Certificate == wantKey
		})).
		Return(&entity.SellerGST{UserID: userID, SellerID: existing.SellerID, Certificate: wantKey, GSTVerified: true}, nil)

	gst, err := fx.service.UploadCertificate(ctx, &usecase.UploadCertificateInput{UserID: userID, File: certificateUpload()})

	require.NoError(t, err)
	assert.Equal(t, existing.SellerID, gst.SellerID)
	assert.Equal(t, wantKey, gst.Certificate)
	assert.True(t, gst.GSTVerified)
}

func TestSellerService_UploadCertificate_MissingFile(t *testing.T) {
	fx := createTestSellerService(t)

	gst, err := fx.service.UploadCertificate(context.Background(), &usecase.UploadCertificateInput{UserID: uuid.New()})

	assert.Nil(t, gst)
	appErr := requireAppError(t, err)
	assert.Equal(t, domainerrors.StatusValidationFailed, appErr.StatusCode())
	assert.Contains(t, appErr.FieldErrors(), "gst-certificate")
}

func TestSellerService_UploadCertificate_StorageFailure(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.gstRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrSellerGSTNotFound)
	fx.storage.EXPECT().Save(ctx, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("disk full"))

	gst, err := fx.service.UploadCertificate(ctx, &usecase.UploadCertificateInput{UserID: userID, File: certificateUpload()})

	assert.Nil(t, gst)
	assert.True(t, errors.Is(err, domainerrors.ErrStorageFailed))
}

func gstDetailsInput(userID uuid.UUID) *usecase.UpdateGSTDetailsInput {
	return &usecase.UpdateGSTDetailsInput{
		UserID:          userID,
		TradeName:       "Rao Traders",
		GSTNumber:       "27AAPFU0939F1ZV",
		GSTType:         "Regular",
		LegalName:       "Rao Traders Pvt Ltd",
		BusinessAddress: "12 MG Road, Pune",
	}
}

func TestSellerService_UpdateDetails_PersistsOTPBeforeMailing(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "asha@example.com"}
	stored := &entity.SellerGST{UserID: userID, SellerID: "ABCDEFGHIJU" + userID.String(), OTP: "111111", IsOTPUsed: true}

	fx.gstRepo.EXPECT().FindByUserID(ctx, userID).Return(stored, nil)
	fx.mailer.EXPECT().GenerateOTP().Return("482913", nil)
	update := fx.gstRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(gst *entity.SellerGST) bool {
			return gst.OTP == "482913" && !gst.IsOTPUsed && gst.GSTNumber == "27AAPFU0939F1ZV"
		})).
		Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.mailer.EXPECT().SendOTP(ctx, user, "482913", entity.OTPPurposeGST).Return(nil).NotBefore(update.Call)

	gst, err := fx.service.UpdateDetails(ctx, gstDetailsInput(userID))

	require.NoError(t, err)
	assert.Equal(t, "Rao Traders", gst.TradeName)
	assert.Equal(t, "Regular", gst.GSTType)
	assert.Equal(t, "482913", gst.OTP)
}

func TestSellerService_UpdateDetails_MailFailureIsIgnored(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID}

	fx.gstRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.SellerGST{UserID: userID}, nil)
	fx.mailer.EXPECT().GenerateOTP().Return("482913", nil)
	fx.gstRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.mailer.EXPECT().SendOTP(ctx, user, "482913", entity.OTPPurposeGST).Return(errors.New("sendgrid: 401"))

	gst, err := fx.service.UpdateDetails(ctx, gstDetailsInput(userID))

	require.NoError(t, err)
	assert.Equal(t, "482913", gst.OTP)
}

func TestSellerService_UpdateDetails_MissingField(t *testing.T) {
	fx := createTestSellerService(t)

	input := gstDetailsInput(uuid.New())
	input.LegalName = "   "

	gst, err := fx.service.UpdateDetails(context.Background(), input)

	assert.Nil(t, gst)
	appErr := requireAppError(t, err)
	assert.Equal(t, domainerrors.StatusValidationFailed, appErr.StatusCode())
	assert.Equal(t, "Enter all details.", appErr.Message())
}

func TestSellerService_UpdateDetails_WithoutCertificate(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.gstRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrSellerGSTNotFound)

	gst, err := fx.service.UpdateDetails(ctx, gstDetailsInput(userID))

	assert.Nil(t, gst)
	assert.True(t, errors.Is(err, domainerrors.ErrSellerGSTNotFound))
}

func TestSellerService_GetSellerDetails(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := createTestSellerService(t)
		ctx := context.Background()
		userID := uuid.New()
		want := &entity.SellerGST{UserID: userID, SellerID: "X"}

		fx.gstRepo.EXPECT().FindByUserID(ctx, userID).Return(want, nil)

		got, err := fx.service.GetSellerDetails(ctx, userID)

		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestSellerService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.gstRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrSellerGSTNotFound)

		got, err := fx.service.GetSellerDetails(ctx, userID)

		assert.Nil(t, got)
		appErr := requireAppError(t, err)
		assert.Equal(t, 404, appErr.HTTPCode())
	})
}
