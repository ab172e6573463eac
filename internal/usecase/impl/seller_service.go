package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "sellerhub/internal/delivery/context"
	"sellerhub/internal/domain/entity"
	domainerrors "sellerhub/internal/domain/errors"
	"sellerhub/internal/domain/repository"
	"sellerhub/internal/domain/service"
	"sellerhub/internal/usecase"
	"sellerhub/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	certificateKeyPrefix = "gst/certificate"

	msgSelectCertificate = "Select GST certificate to upload."
	msgEnterAllDetails   = "Enter all details."
)

// sellerService implements the SellerUsecase interface.
type sellerService struct {
	gstRepo  repository.SellerGSTRepository
	userRepo repository.UserRepository
	storage  service.FileStorage
	mailer   service.OTPMailer
	logger   *slog.Logger
	now      func() time.Time
}

// SellerServiceParams holds dependencies for SellerService, injected by Fx.
type SellerServiceParams struct {
	fx.In

	SellerGSTRepo repository.SellerGSTRepository
	UserRepo      repository.UserRepository
	Storage       service.FileStorage
	Mailer        service.OTPMailer
	Logger        *slog.Logger
}

// NewSellerService is the constructor for sellerService.
func NewSellerService(params SellerServiceParams) usecase.SellerUsecase {
	return &sellerService{
		gstRepo:  params.SellerGSTRepo,
		userRepo: params.UserRepo,
		storage:  params.Storage,
		mailer:   params.Mailer,
		logger:   params.Logger,
		now:      time.Now,
	}
}

func (srv *sellerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadCertificate stores the certificate and upserts the GST record of the caller.
// A first upload assigns the seller id; later uploads keep it and replace the certificate.
func (srv *sellerService) UploadCertificate(ctx context.Context, input *usecase.UploadCertificateInput) (*entity.SellerGST, error) {
	if input.File == nil || input.File.Content == nil {
		return nil, domainerrors.NewValidationError(msgSelectCertificate, map[string]string{"gst-certificate": msgSelectCertificate})
	}

	sellerID, err := srv.sellerIDFor(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	key := datedKey(certificateKeyPrefix, srv.now(), sellerID, input.File.Filename)
	ref, err := srv.storage.Save(ctx, key, input.File.ContentType, input.File.Content)
	if err != nil {
		srv.log(ctx).Error("Failed to store gst certificate", slog.String("key", key), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	gst, err := srv.gstRepo.UpsertCertificate(ctx, &entity.SellerGST{
		UserID:      input.UserID,
		SellerID:    sellerID,
		Certificate: ref,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert seller gst")
	}
	srv.log(ctx).Info("GST certificate uploaded",
		slog.Any("userID", input.UserID),
		slog.String("sellerID", gst.SellerID),
		slog.String("size", util.FormatBytes(input.File.Size)),
	)

	return gst, nil
}

// sellerIDFor returns the existing seller id of the user or a fresh <10 chars>U<user id>.
func (srv *sellerService) sellerIDFor(ctx context.Context, userID uuid.UUID) (string, error) {
	existing, err := srv.gstRepo.FindByUserID(ctx, userID)
	if err == nil {
		return existing.SellerID, nil
	}
	if !errors.Is(err, repository.ErrSellerGSTNotFound) {
		return "", errors.Wrap(err, "failed to find seller gst")
	}

	prefix, err := randomSellerPrefix(sellerIDPrefixLength)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate seller id")
	}

	return prefix + "U" + userID.String(), nil
}

// UpdateDetails overwrites the GST details, arms a fresh OTP and mails it.
func (srv *sellerService) UpdateDetails(ctx context.Context, input *usecase.UpdateGSTDetailsInput) (*entity.SellerGST, error) {
	details := entity.GSTDetails{
		TradeName:       strings.TrimSpace(input.TradeName),
		GSTNumber:       strings.TrimSpace(input.GSTNumber),
		GSTType:         strings.TrimSpace(input.GSTType),
		LegalName:       strings.TrimSpace(input.LegalName),
		BusinessAddress: strings.TrimSpace(input.BusinessAddress),
	}
	if details.TradeName == "" || details.GSTNumber == "" || details.GSTType == "" ||
		details.LegalName == "" || details.BusinessAddress == "" {
		return nil, domainerrors.NewValidationError(msgEnterAllDetails, nil)
	}

	gst, err := srv.gstRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrSellerGSTNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSellerGSTNotFound, "upload a certificate first")
		}

		return nil, errors.Wrap(err, "failed to find seller gst")
	}

	code, err := srv.mailer.GenerateOTP()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate gst otp")
	}

	// The code is saved with the details so a following verification can match it.
	gst.ApplyDetails(details, code)
	if err := srv.gstRepo.Update(ctx, gst); err != nil {
		return nil, errors.Wrap(err, "failed to update seller gst")
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		srv.log(ctx).Error("Failed to load user for gst otp", slog.Any("userID", input.UserID), slog.Any("error", err))

		return gst, nil
	}
	if err := srv.mailer.SendOTP(ctx, user, code, entity.OTPPurposeGST); err != nil {
		srv.log(ctx).Error("Failed to deliver otp", slog.Any("userID", input.UserID), slog.String("purpose", string(entity.OTPPurposeGST)), slog.Any("error", err))
	}

	return gst, nil
}

// GetSellerDetails returns the GST record of the caller.
func (srv *sellerService) GetSellerDetails(ctx context.Context, userID uuid.UUID) (*entity.SellerGST, error) {
	gst, err := srv.gstRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSellerGSTNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSellerGSTNotFound, "seller details")
		}

		return nil, errors.Wrap(err, "failed to find seller gst")
	}

	return gst, nil
}
