package auth

import (
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainVerifier(t *testing.T) {
	v := NewPlainVerifier()

	encoded, err := v.Encode("hunter2")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", encoded)

	assert.True(t, v.Verify("hunter2", "hunter2"))
	assert.False(t, v.Verify("hunter3", "hunter2"))
	assert.False(t, v.Verify("", "hunter2"))
	assert.True(t, v.Verify("", ""))
}

func TestBcryptVerifier_RoundTrip(t *testing.T) {
	v := NewBcryptVerifier(4) // minimum cost keeps the test fast

	encoded, err := v.Encode("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", encoded)

	assert.True(t, v.Verify("hunter2", encoded))
	assert.False(t, v.Verify("hunter3", encoded))
}

func TestNewCredentialVerifier_NilAuthSection(t *testing.T) {
	v, err := NewCredentialVerifier(&config.Config{})

	require.NoError(t, err)
	require.NotNil(t, v)
	assert.True(t, v.Verify("hunter2", "hunter2"))
	assert.False(t, v.Verify("hunter2", "$2a$04$notaplainmatch"))
}

func TestNewCredentialVerifier_Selection(t *testing.T) {
	tests := []struct {
		name     string
		verifier string
		wantErr  bool
	}{
		{name: "default is plain", verifier: ""},
		{name: "plain", verifier: "plain"},
		{name: "bcrypt", verifier: "bcrypt"},
		{name: "unknown scheme", verifier: "md5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Auth: &config.AuthConfig{Verifier: tt.verifier, BcryptCost: 4}}

			v, err := NewCredentialVerifier(cfg)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, v)
		})
	}
}
