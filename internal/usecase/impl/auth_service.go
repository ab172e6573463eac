// Package impl contains the implementation of the application's business logic.
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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Field level messages shared by registration and the unique-violation fallback.
const (
	msgEmailTaken         = "This email is already in use."
	msgContactNumberTaken = "This contact number is already in use."
	msgEnterOTP           = "Enter otp."
	msgSubmitOTPTarget    = "Submit which otp should verify."
	msgRefreshRequired    = "Submit refresh token."
	msgRefreshUnknown     = "Token is invalid or expired"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	mailer           service.OTPMailer
	logger           *slog.Logger
	now              func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Mailer           service.OTPMailer
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		mailer:           params.Mailer,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the user, its verification flags and its OTP record in one transaction,
// then mails the OTP and opens the first session.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := srv.checkAvailability(ctx, email, input.ContactNumber); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	code, err := srv.mailer.GenerateOTP()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate registration otp")
	}

	newUser := &entity.User{
		Name:          strings.TrimSpace(input.Name),
		Email:         email,
		ContactNumber: input.ContactNumber,
		PasswordHash:  hashedPassword,
		IsActive:      true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		details := &entity.UserDetails{UserID: newUser.ID}
		if err := userRepo.CreateDetails(ctx, details); err != nil {
			return errors.Wrap(err, "failed to create user details during registration")
		}
		newUser.Details = details

		otp := &entity.OTPVerification{
			UserID:      newUser.ID,
			EmailID:     newUser.Email,
			PhoneNumber: newUser.ContactNumber,
			OTP:         code,
		}
		if err := repoFactory.OTPRepo().Create(ctx, otp); err != nil {
			return errors.Wrap(err, "failed to create otp during registration")
		}

		return nil
	})
	if err != nil {
		if fieldErr := uniqueViolationError(err); fieldErr != nil {
			return nil, fieldErr
		}
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.sendOTP(ctx, newUser, code, entity.OTPPurposeEmail)

	tokens, err := srv.openSession(ctx, newUser)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{UserID: newUser.ID, Tokens: *tokens}, nil
}

// checkAvailability reports every taken unique field at once.
func (srv *authService) checkAvailability(ctx context.Context, email, contactNumber string) error {
	fields := make(map[string]string)

	emailTaken, err := srv.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return errors.Wrap(err, "failed to check email availability")
	}
	if emailTaken {
		fields["email"] = msgEmailTaken
	}

	contactTaken, err := srv.userRepo.ExistsByContactNumber(ctx, contactNumber)
	if err != nil {
		return errors.Wrap(err, "failed to check contact number availability")
	}
	if contactTaken {
		fields["contact_number"] = msgContactNumberTaken
	}

	if len(fields) == 0 {
		return nil
	}
	srv.log(ctx).Info("Registration rejected, duplicate fields", slog.Any("fields", fields))

	message := msgEmailTaken
	if !emailTaken {
		message = msgContactNumberTaken
	}

	return domainerrors.NewValidationError(message, fields)
}

// uniqueViolationError maps a uniqueness race at insert time to the same field errors as the pre-check.
func uniqueViolationError(err error) error {
	switch {
	case errors.Is(err, repository.ErrEmailTaken):
		return domainerrors.NewValidationError(msgEmailTaken, map[string]string{"email": msgEmailTaken})
	case errors.Is(err, repository.ErrContactNumberTaken):
		return domainerrors.NewValidationError(msgContactNumberTaken, map[string]string{"contact_number": msgContactNumberTaken})
	default:
		return nil
	}
}

// Login checks the credentials and opens a session.
// Unknown email, wrong password and inactive accounts are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown email", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// bcrypt is CPU-bound, so no transaction is held while checking.
	if !srv.hasher.Check(input.Password, user.PasswordHash) || !user.IsActive {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	tokens, err := srv.openSession(ctx, user)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{UserID: user.ID, Tokens: *tokens}, nil
}

// openSession issues a token pair and stores the hash of its refresh token.
func (srv *authService) openSession(ctx context.Context, user *entity.User) (*usecase.TokenPair, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	record := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, record); err != nil {
		srv.log(ctx).Error("Failed to store refresh token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create refresh token")
	}

	return &usecase.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// RefreshToken issues a new access token using a stored, unexpired refresh token.
// The refresh token itself is not rotated.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	if strings.TrimSpace(input.RefreshToken) == "" {
		return nil, domainerrors.NewValidationError(msgRefreshRequired, map[string]string{"refresh": msgFieldRequired})
	}

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh with invalid token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token revoked or expired")
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if stored.UserID != claims.UserID {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token owner mismatch")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout revokes one refresh token of the caller by deleting its record.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out", slog.Any("userID", input.UserID))

	if strings.TrimSpace(input.RefreshToken) == "" {
		return domainerrors.NewValidationError(msgRefreshRequired, map[string]string{"refresh": msgFieldRequired})
	}

	unknown := domainerrors.NewValidationError(msgRefreshUnknown, map[string]string{"refresh": msgRefreshUnknown})
	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
			return unknown
		}

		return errors.Wrap(err, "failed to find refresh token")
	}
	if stored.UserID != input.UserID {
		srv.log(ctx).Warn("Logout with a token of another user", slog.Any("userID", input.UserID))

		return unknown
	}

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return unknown
		}
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out", slog.Any("userID", input.UserID))

	return nil
}

// VerifyOTP checks a code against the record selected by the target.
// A "gst" target only touches the seller GST record; any other target only the email flag.
func (srv *authService) VerifyOTP(ctx context.Context, input *usecase.VerifyOTPInput) error {
	if strings.TrimSpace(input.Code) == "" {
		return domainerrors.NewValidationError(msgEnterOTP, map[string]string{"otp": msgEnterOTP})
	}
	if strings.TrimSpace(input.Target) == "" {
		return domainerrors.NewValidationError(msgSubmitOTPTarget, map[string]string{"of": msgSubmitOTPTarget})
	}

	purpose := entity.OTPPurposeFromTarget(input.Target)
	srv.log(ctx).Info("Verifying otp", slog.Any("userID", input.UserID), slog.String("purpose", string(purpose)))

	var err error
	if purpose == entity.OTPPurposeGST {
		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return verifyGSTOTP(ctx, repoFactory, input.UserID, input.Code)
		})
	} else {
		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return verifyEmailOTP(ctx, repoFactory, input.UserID, input.Code)
		})
	}
	if err != nil {
		srv.log(ctx).Warn("OTP verification failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to verify otp")
	}

	return nil
}

func verifyGSTOTP(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, code string) error {
	gstRepo := repoFactory.SellerGSTRepo()

	gst, err := gstRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSellerGSTNotFound) {
			return errors.Wrap(domainerrors.ErrSellerGSTNotFound, "no gst record to verify")
		}

		return errors.Wrap(err, "failed to find seller gst")
	}

	if !gst.MatchesOTP(code) {
		return domainerrors.ErrOTPMismatch
	}

	gst.IsOTPUsed = true
	gst.GSTVerified = true
	if err := gstRepo.Update(ctx, gst); err != nil {
		return errors.Wrap(err, "failed to mark gst verified")
	}

	return nil
}

func verifyEmailOTP(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, code string) error {
	otpRepo := repoFactory.OTPRepo()
	userRepo := repoFactory.UserRepo()

	otp, err := otpRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOTPVerificationNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "no otp record to verify")
		}

		return errors.Wrap(err, "failed to find otp verification")
	}

	if !otp.Matches(code) {
		return domainerrors.ErrOTPMismatch
	}

	otp.IsOTPUsed = true
	if err := otpRepo.Update(ctx, otp); err != nil {
		return errors.Wrap(err, "failed to mark otp used")
	}

	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to load user for email verification")
	}
	if user.Details == nil {
		return errors.Wrap(domainerrors.ErrNotFound, "user details missing")
	}

	user.Details.EmailVerified = true
	if err := userRepo.UpdateDetails(ctx, user.Details); err != nil {
		return errors.Wrap(err, "failed to mark email verified")
	}

	return nil
}

// sendOTP delivers a code. Delivery failures are logged and never fail the request.
func (srv *authService) sendOTP(ctx context.Context, user *entity.User, code string, purpose entity.OTPPurpose) {
	if err := srv.mailer.SendOTP(ctx, user, code, purpose); err != nil {
		srv.log(ctx).Error("Failed to deliver otp", slog.Any("userID", user.ID), slog.String("purpose", string(purpose)), slog.Any("error", err))
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
