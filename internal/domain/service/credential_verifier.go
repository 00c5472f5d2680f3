// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// CredentialVerifier abstracts how a presented secret is checked against the
// stored one and how new secrets are encoded at rest. The default is exact
// match, a recorded domain decision; a bcrypt implementation is available for
// deployments that want hashed credentials.
type CredentialVerifier interface {
	// Encode prepares a plaintext secret for storage.
	Encode(secret string) (string, error)

	// Verify compares a presented plaintext secret with the stored value.
	Verify(presented, stored string) bool
}
