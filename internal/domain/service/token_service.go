package service

import (
	"storefront/internal/domain/entity"
)

// TokenService issues and validates the signed session tokens that carry a
// Principal between requests.
type TokenService interface {
	// IssueToken signs an access token embedding the principal's identity,
	// role, and location.
	IssueToken(principal *entity.Principal) (string, error)

	// ParseToken validates a token string and reconstructs the Principal it
	// carries.
	ParseToken(token string) (*entity.Principal, error)
}
