package auth

import (
	"golang.org/x/crypto/bcrypt"

	"storefront/internal/domain/service"
)

// bcryptVerifier is a CredentialVerifier backed by bcrypt hashes.
type bcryptVerifier struct {
	cost int
}

// NewBcryptVerifier is the constructor for bcryptVerifier. A cost of zero
// falls back to the bcrypt default.
func NewBcryptVerifier(cost int) service.CredentialVerifier {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &bcryptVerifier{cost: cost}
}

// Encode generates a salted hash from a plaintext secret.
// bcrypt automatically handles salt generation.
func (v *bcryptVerifier) Encode(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), v.cost)

	return string(bytes), err
}

// Verify compares a plaintext secret with a bcrypt hash.
func (v *bcryptVerifier) Verify(presented, stored string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented))

	return err == nil
}
