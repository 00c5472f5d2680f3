package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSessionUsecase scripts the session flows for handler tests.
type stubSessionUsecase struct {
	registerOut *entity.User
	registerErr error
	loginOut    *usecase.LoginOutput
	loginErr    error
}

func (s *stubSessionUsecase) Register(context.Context, *usecase.RegisterInput) (*entity.User, error) {
	return s.registerOut, s.registerErr
}

func (s *stubSessionUsecase) Login(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginOut, s.loginErr
}

func newAuthTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubSessionUsecase{
		registerOut: &entity.User{
			ID:       42,
			Name:     "alice",
			Role:     entity.RoleCustomer,
			Location: &orb.Point{20, 10},
		},
	}
	h := &AuthHandler{
		sessionUC: stub,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, rec := newAuthTestContext(t, `{"name":"alice","secret":"hunter2","latitude":10,"longitude":20}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"name":"alice"`)
	assert.Contains(t, body, `"role":"customer"`)
	assert.NotContains(t, body, "hunter2")
}

func TestAuthHandler_Register_NoCoordinates(t *testing.T) {
	stub := &stubSessionUsecase{
		registerOut: &entity.User{
			ID:   43,
			Name: "nomad",
			Role: entity.RoleCustomer,
		},
	}
	h := &AuthHandler{
		sessionUC: stub,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, rec := newAuthTestContext(t, `{"name":"nomad","secret":"hunter2"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "latitude")
	assert.NotContains(t, rec.Body.String(), "longitude")
}

func TestAuthHandler_Register_LoneCoordinate(t *testing.T) {
	h := &AuthHandler{
		sessionUC: &stubSessionUsecase{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, rec := newAuthTestContext(t, `{"name":"alice","secret":"hunter2","longitude":20}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAuthHandler_Register_MissingName(t *testing.T) {
	h := &AuthHandler{
		sessionUC: &stubSessionUsecase{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, rec := newAuthTestContext(t, `{"secret":"hunter2"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAuthHandler_Register_OutOfRangeLatitude(t *testing.T) {
	h := &AuthHandler{
		sessionUC: &stubSessionUsecase{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, rec := newAuthTestContext(t, `{"name":"alice","secret":"hunter2","latitude":95,"longitude":0}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubSessionUsecase{
		loginOut: &usecase.LoginOutput{
			Token: "signed-token",
			Principal: &entity.Principal{
				UserID: 42,
				Name:   "alice",
				Role:   entity.RoleCustomer,
			},
		},
	}
	h := &AuthHandler{
		sessionUC: stub,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, rec := newAuthTestContext(t, `{"name":"alice","secret":"hunter2"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed-token"`)
	assert.Contains(t, rec.Body.String(), `"role":"customer"`)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	h := &AuthHandler{
		sessionUC: &stubSessionUsecase{loginErr: domainerrors.ErrAuthFailed},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	c, rec := newAuthTestContext(t, `{"name":"alice","secret":"wrong"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTH_FAILED")
}
