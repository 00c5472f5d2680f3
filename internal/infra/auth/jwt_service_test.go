package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{AccessTTL: time.Minute}

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestJWTConfig(""))
	assert.Error(t, err)
}

func TestJWTService_IssueAndParse_RoundTrip(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret"))
	require.NoError(t, err)

	principal := &entity.Principal{
		UserID:   42,
		Name:     "alice",
		Role:     entity.RoleCustomer,
		Location: &orb.Point{20.5, 10.25},
	}

	token, err := svc.IssueToken(principal)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := svc.ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "alice", parsed.Name)
	assert.Equal(t, entity.RoleCustomer, parsed.Role)
	require.True(t, parsed.HasLocation())
	assert.InDelta(t, 10.25, parsed.Location.Lat(), 1e-9)
	assert.InDelta(t, 20.5, parsed.Location.Lon(), 1e-9)
}

func TestJWTService_IssueAndParse_NoLocation(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret"))
	require.NoError(t, err)

	principal := &entity.Principal{UserID: 7, Name: "root", Role: entity.RoleAdmin}

	token, err := svc.IssueToken(principal)
	require.NoError(t, err)

	parsed, err := svc.ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, parsed.Role)
	assert.False(t, parsed.HasLocation())
	assert.Nil(t, parsed.Location)
}

func TestJWTService_ParseToken_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("issuer-secret"))
	require.NoError(t, err)
	parser, err := NewJWTService(newTestJWTConfig("other-secret"))
	require.NoError(t, err)

	token, err := issuer.IssueToken(&entity.Principal{UserID: 1, Name: "alice", Role: entity.RoleCustomer})
	require.NoError(t, err)

	_, err = parser.ParseToken(token)
	assert.Error(t, err)
}

func TestJWTService_ParseToken_Garbage(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret"))
	require.NoError(t, err)

	_, err = svc.ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_ParseToken_Expired(t *testing.T) {
	// Issued already expired; the constructor refuses non-positive TTLs so
	// the service is built directly.
	svc := &jwtService{secret: "test-secret", accessTTL: -time.Minute}

	token, err := svc.IssueToken(&entity.Principal{UserID: 1, Name: "alice", Role: entity.RoleCustomer})
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.Error(t, err)
}

func TestJWTService_ParseToken_UnknownRole(t *testing.T) {
	svc := &jwtService{secret: "test-secret", accessTTL: time.Minute}

	token, err := svc.IssueToken(&entity.Principal{UserID: 1, Name: "alice", Role: entity.Role("superuser")})
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role claim")
}
