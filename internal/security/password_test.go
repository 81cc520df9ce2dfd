package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaintextCredentials(t *testing.T) {
	creds := PlaintextCredentials{}

	stored, err := creds.Store("secret")
	require.NoError(t, err)
	assert.Equal(t, "secret", stored)

	ok, err := creds.Verify("secret", stored)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = creds.Verify("other", stored)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2CredentialsRoundTrip(t *testing.T) {
	creds := NewArgon2Credentials()

	stored, err := creds.Store("secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored, "$argon2id$"))
	assert.NotContains(t, stored, "secret")

	ok, err := creds.Verify("secret", stored)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = creds.Verify("wrong", stored)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2CredentialsSaltsDiffer(t *testing.T) {
	creds := NewArgon2Credentials()

	first, err := creds.Store("secret")
	require.NoError(t, err)
	second, err := creds.Store("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestArgon2CredentialsRejectsMalformedHash(t *testing.T) {
	creds := NewArgon2Credentials()

	_, err := creds.Verify("secret", "plaintext")
	assert.Error(t, err)

	_, err = creds.Verify("secret", "$bcrypt$nope")
	assert.Error(t, err)
}
