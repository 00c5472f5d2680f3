// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/subtle"

	"storefront/internal/domain/service"
)

// plainVerifier compares the presented secret with the stored one byte for
// byte. The stored value is the secret itself; Encode is the identity.
type plainVerifier struct{}

// NewPlainVerifier is the constructor for plainVerifier.
func NewPlainVerifier() service.CredentialVerifier {
	return &plainVerifier{}
}

// Encode returns the secret unchanged.
func (v *plainVerifier) Encode(secret string) (string, error) {
	return secret, nil
}

// Verify compares in constant time to keep timing uniform.
func (v *plainVerifier) Verify(presented, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(presented), []byte(stored)) == 1
}
