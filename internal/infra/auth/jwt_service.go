package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

const defaultAccessTTL = 15 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The session token carries the full principal so request handling never has
// to re-read the user row.
type jwtService struct {
	secret    string
	accessTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultAccessTTL
	if cfg.Auth != nil && cfg.Auth.AccessTTL > 0 {
		ttl = cfg.Auth.AccessTTL
	}

	return &jwtService{
		secret:    cfg.SecretKey.Access,
		accessTTL: ttl,
	}, nil
}

// IssueToken signs a session token for the principal. Location only appears
// in the claims when the user has one recorded.
func (s *jwtService) IssueToken(principal *entity.Principal) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(principal.UserID, 10),
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.accessTTL).Unix(),
		"name": principal.Name,
		"role": principal.Role.String(),
	}
	if principal.HasLocation() {
		claims["lat"] = principal.Location.Lat()
		claims["lng"] = principal.Location.Lon()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ParseToken validates a session token and rebuilds the principal it carries.
func (s *jwtService) ParseToken(tokenString string) (*entity.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "missing subject claim")
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "malformed subject claim")
	}

	name, _ := claims["name"].(string)
	roleClaim, _ := claims["role"].(string)
	role := entity.Role(roleClaim)
	if !role.IsValid() {
		return nil, errors.Errorf("unknown role claim: %s", roleClaim)
	}

	principal := &entity.Principal{
		UserID: userID,
		Name:   name,
		Role:   role,
	}

	lat, latOK := claims["lat"].(float64)
	lng, lngOK := claims["lng"].(float64)
	if latOK && lngOK {
		principal.Location = &orb.Point{lng, lat}
	}

	return principal, nil
}
