// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo repository.UserRepository
	verifier service.CredentialVerifier
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	userRepo repository.UserRepository,
	verifier service.CredentialVerifier,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		userRepo: userRepo,
		verifier: verifier,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new customer account. Role is always customer; manager
// and admin accounts are provisioned out of band.
func (srv *sessionService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name must not be blank")
	}
	if input.Secret == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("secret must not be blank")
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("latitude and longitude must be supplied together")
	}

	encoded, err := srv.verifier.Encode(input.Secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode credential")
	}

	user := &entity.User{
		Name:   name,
		Secret: encoded,
		Role:   entity.RoleCustomer,
	}
	if input.Latitude != nil && input.Longitude != nil {
		user.Location = &orb.Point{*input.Longitude, *input.Latitude}
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("name", name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID), slog.String("name", name))

	return user, nil
}

// Login verifies credentials and issues a session token carrying the
// principal. Any prior session token simply stops being presented; the newest
// login wins.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByName(ctx, input.Name)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrAuthFailed.WrapMessage("unknown user name")
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.verifier.Verify(input.Secret, user.Secret) {
		srv.log(ctx).Warn("Credential mismatch", slog.String("name", input.Name))

		return nil, domainerrors.ErrAuthFailed.WrapMessage("credential mismatch")
	}

	principal := &entity.Principal{
		UserID:   user.ID,
		Name:     user.Name,
		Role:     user.Role,
		Location: user.Location,
	}

	token, err := srv.tokenSvc.IssueToken(principal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("Login", slog.Int64("userID", user.ID), slog.String("role", user.Role.String()))

	return &usecase.LoginOutput{Token: token, Principal: principal}, nil
}
