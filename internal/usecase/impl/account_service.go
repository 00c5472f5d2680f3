package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/access"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo repository.UserRepository
	verifier service.CredentialVerifier
	logger   *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	userRepo repository.UserRepository,
	verifier service.CredentialVerifier,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		userRepo: userRepo,
		verifier: verifier,
		logger:   logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetUser retrieves any user record by ID. Admins only.
func (srv *accountService) GetUser(ctx context.Context, principal *entity.Principal, userID int64) (*entity.User, error) {
	if err := access.Authorize(principal.Role, access.OpManageUsers); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// ListUsers retrieves all user records. Admins only.
func (srv *accountService) ListUsers(ctx context.Context, principal *entity.Principal) ([]*entity.User, error) {
	if err := access.Authorize(principal.Role, access.OpManageUsers); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateUser applies a partial edit to any user record. Absent fields keep
// their prior value; role is immutable and cannot be edited here.
func (srv *accountService) UpdateUser(ctx context.Context, principal *entity.Principal, userID int64, input *usecase.UpdateUserInput) error {
	if err := access.Authorize(principal.Role, access.OpManageUsers); err != nil {
		return err
	}

	update := repository.UserUpdate{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return domainerrors.ErrValidationFailed.WrapMessage("name must not be blank")
		}
		update.Name = &name
	}

	if input.Secret != nil {
		if *input.Secret == "" {
			return domainerrors.ErrValidationFailed.WrapMessage("secret must not be blank")
		}

		encoded, err := srv.verifier.Encode(*input.Secret)
		if err != nil {
			return errors.Wrap(err, "failed to encode credential")
		}
		update.Secret = &encoded
	}

	if update.IsEmpty() {
		return domainerrors.ErrValidationFailed.WrapMessage("update carries no fields")
	}

	if err := srv.userRepo.ApplyUpdate(ctx, userID, update); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Info("User updated",
		slog.Int64("adminID", principal.UserID),
		slog.Int64("userID", userID),
	)

	return nil
}
