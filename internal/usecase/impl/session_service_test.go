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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	userRepo *repomocks.MockUserRepository
	verifier *servicemocks.MockCredentialVerifier
	tokenSvc *servicemocks.MockTokenService
	service  usecase.SessionUsecase
}

func createTestSessionService(t *testing.T) *sessionFixture {
	userRepo := repomocks.NewMockUserRepository(t)
	verifier := servicemocks.NewMockCredentialVerifier(t)
	tokenSvc := servicemocks.NewMockTokenService(t)

	return &sessionFixture{
		userRepo: userRepo,
		verifier: verifier,
		tokenSvc: tokenSvc,
		service:  NewSessionService(userRepo, verifier, tokenSvc, newDiscardLogger()),
	}
}

func TestSessionService_Register_Success(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.verifier.On("Encode", "hunter2").Return("hunter2", nil)
	fx.userRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Name == "alice" &&
			u.Secret == "hunter2" &&
			u.Role == entity.RoleCustomer &&
			u.HasLocation() &&
			u.Location.Lat() == 10 && u.Location.Lon() == 20
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = 42
	}).Return(nil)

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:      "  alice  ",
		Secret:    "hunter2",
		Latitude:  float64Ptr(10),
		Longitude: float64Ptr(20),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, entity.RoleCustomer, user.Role)
}

func TestSessionService_Register_NoCoordinates(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.verifier.On("Encode", "hunter2").Return("hunter2", nil)
	fx.userRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Name == "nomad" && !u.HasLocation()
	})).Return(nil)

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:   "nomad",
		Secret: "hunter2",
	})

	require.NoError(t, err)
	assert.Nil(t, user.Location)
}

func TestSessionService_Register_LoneCoordinate(t *testing.T) {
	fx := createTestSessionService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "alice",
		Secret:   "hunter2",
		Latitude: float64Ptr(10),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSessionService_Register_BlankName(t *testing.T) {
	fx := createTestSessionService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:   "   ",
		Secret: "hunter2",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSessionService_Register_BlankSecret(t *testing.T) {
	fx := createTestSessionService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:   "alice",
		Secret: "",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSessionService_Register_DuplicateName(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.verifier.On("Encode", "hunter2").Return("hunter2", nil)
	fx.userRepo.On("Create", ctx, mock.Anything).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("alice"))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "alice", Secret: "hunter2"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestSessionService_Login_Success(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	stored := &entity.User{
		ID:       7,
		Name:     "alice",
		Secret:   "hunter2",
		Role:     entity.RoleCustomer,
		Location: &orb.Point{20, 10},
	}

	fx.userRepo.On("FindByName", ctx, "alice").Return(stored, nil)
	fx.verifier.On("Verify", "hunter2", "hunter2").Return(true)
	fx.tokenSvc.On("IssueToken", mock.MatchedBy(func(p *entity.Principal) bool {
		return p.UserID == 7 && p.Name == "alice" && p.Role == entity.RoleCustomer && p.HasLocation()
	})).Return("signed-token", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Name: "alice", Secret: "hunter2"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, int64(7), out.Principal.UserID)
	assert.Equal(t, entity.RoleCustomer, out.Principal.Role)
}

func TestSessionService_Login_UnknownName(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByName", ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Name: "ghost", Secret: "whatever"})

	assert.ErrorIs(t, err, domainerrors.ErrAuthFailed)
}

func TestSessionService_Login_CredentialMismatch(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	stored := &entity.User{ID: 7, Name: "alice", Secret: "hunter2", Role: entity.RoleCustomer}

	fx.userRepo.On("FindByName", ctx, "alice").Return(stored, nil)
	fx.verifier.On("Verify", "wrong", "hunter2").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Name: "alice", Secret: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrAuthFailed)
}

func TestSessionService_Login_RepositoryFailure(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByName", ctx, "alice").Return(nil, errors.New("connection reset"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Name: "alice", Secret: "hunter2"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrAuthFailed)
	assert.Contains(t, err.Error(), "failed to find user for login")
}
