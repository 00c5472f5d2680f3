package auth

import (
	"github.com/pkg/errors"

	"storefront/config"
	"storefront/internal/domain/service"
)

// NewCredentialVerifier selects the credential scheme from configuration.
// Plain comparison is the default; bcrypt is opt-in. A config with no auth
// section gets the default.
func NewCredentialVerifier(cfg *config.Config) (service.CredentialVerifier, error) {
	if cfg.Auth == nil {
		return NewPlainVerifier(), nil
	}

	switch cfg.Auth.Verifier {
	case "", "plain":
		return NewPlainVerifier(), nil
	case "bcrypt":
		return NewBcryptVerifier(cfg.Auth.BcryptCost), nil
	default:
		return nil, errors.Errorf("unknown credential verifier: %s", cfg.Auth.Verifier)
	}
}
