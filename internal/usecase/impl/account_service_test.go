package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	repomocks "storefront/internal/mocks/repository"
	servicemocks "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountFixture struct {
	userRepo *repomocks.MockUserRepository
	verifier *servicemocks.MockCredentialVerifier
	service  usecase.AccountUsecase
}

func createTestAccountService(t *testing.T) *accountFixture {
	userRepo := repomocks.NewMockUserRepository(t)
	verifier := servicemocks.NewMockCredentialVerifier(t)

	return &accountFixture{
		userRepo: userRepo,
		verifier: verifier,
		service:  NewAccountService(userRepo, verifier, newDiscardLogger()),
	}
}

func strPtr(v string) *string { return &v }

func TestAccountService_GetUser_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	stored := &entity.User{ID: 7, Name: "alice", Role: entity.RoleCustomer}
	fx.userRepo.On("FindByID", ctx, int64(7)).Return(stored, nil)

	user, err := fx.service.GetUser(ctx, adminPrincipal(2), 7)

	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestAccountService_GetUser_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByID", ctx, int64(404)).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetUser(ctx, adminPrincipal(2), 404)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAccountService_GetUser_ManagerForbidden(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.GetUser(context.Background(), managerPrincipal(5), 7)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAccountService_ListUsers_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	users := []*entity.User{
		{ID: 1, Name: "alice", Role: entity.RoleCustomer},
		{ID: 2, Name: "bob", Role: entity.RoleManager},
	}
	fx.userRepo.On("List", ctx).Return(users, nil)

	got, err := fx.service.ListUsers(ctx, adminPrincipal(2))

	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestAccountService_ListUsers_CustomerForbidden(t *testing.T) {
	fx := createTestAccountService(t)
	principal := customerPrincipal(1, orb.Point{0, 0})

	_, err := fx.service.ListUsers(context.Background(), principal)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAccountService_UpdateUser_EncodesSecret(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.verifier.On("Encode", "newsecret").Return("encoded-newsecret", nil)
	fx.userRepo.On("ApplyUpdate", ctx, int64(7), mock.MatchedBy(func(u repository.UserUpdate) bool {
		return u.Secret != nil && *u.Secret == "encoded-newsecret" && u.Name == nil
	})).Return(nil)

	err := fx.service.UpdateUser(ctx, adminPrincipal(2), 7, &usecase.UpdateUserInput{
		Secret: strPtr("newsecret"),
	})

	assert.NoError(t, err)
}

func TestAccountService_UpdateUser_TrimsName(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.On("ApplyUpdate", ctx, int64(7), mock.MatchedBy(func(u repository.UserUpdate) bool {
		return u.Name != nil && *u.Name == "carol"
	})).Return(nil)

	err := fx.service.UpdateUser(ctx, adminPrincipal(2), 7, &usecase.UpdateUserInput{
		Name: strPtr("  carol  "),
	})

	assert.NoError(t, err)
}

func TestAccountService_UpdateUser_BlankName(t *testing.T) {
	fx := createTestAccountService(t)

	err := fx.service.UpdateUser(context.Background(), adminPrincipal(2), 7, &usecase.UpdateUserInput{
		Name: strPtr("   "),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_UpdateUser_EmptyUpdate(t *testing.T) {
	fx := createTestAccountService(t)

	err := fx.service.UpdateUser(context.Background(), adminPrincipal(2), 7, &usecase.UpdateUserInput{})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_UpdateUser_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.On("ApplyUpdate", ctx, int64(404), mock.Anything).
		Return(repository.ErrUserNotFound)

	err := fx.service.UpdateUser(ctx, adminPrincipal(2), 404, &usecase.UpdateUserInput{
		Name: strPtr("carol"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAccountService_UpdateUser_ManagerForbidden(t *testing.T) {
	fx := createTestAccountService(t)

	err := fx.service.UpdateUser(context.Background(), managerPrincipal(5), 7, &usecase.UpdateUserInput{
		Name: strPtr("carol"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
