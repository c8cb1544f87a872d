package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashVerifyRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher()

	digest, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, digest)

	ok, err := hasher.Verify("correct horse battery staple", digest)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("wrong password", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err := hasher.Hash("alice_pass")
	require.NoError(t, err)
	second, err := hasher.Hash("alice_pass")
	require.NoError(t, err)

	// Embedded salts make every digest unique
	assert.NotEqual(t, first, second)

	ok, err := hasher.Verify("alice_pass", first)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = hasher.Verify("alice_pass", second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_VerifyMalformedDigest(t *testing.T) {
	hasher := NewBcryptHasher()

	tests := []struct {
		name   string
		digest string
	}{
		{"empty", ""},
		{"not a digest", "plaintext-left-in-the-column"},
		{"unknown prefix", "$argon2id$v=19$m=65536..."},
		{"truncated bcrypt", "$2a$10$tooshort"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := hasher.Verify("whatever", tt.digest)
			assert.False(t, ok)
			assert.ErrorIs(t, err, ErrMalformedDigest)
		})
	}
}

func TestBcryptHasher_LongPassword(t *testing.T) {
	hasher := NewBcryptHasher()
	long := strings.Repeat("長いパスワード", 30)

	digest, err := hasher.Hash(long)
	require.NoError(t, err)

	ok, err := hasher.Verify(long, digest)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidatePassword(t *testing.T) {
	assert.ErrorIs(t, ValidatePassword("short"), ErrWeakPassword)
	assert.ErrorIs(t, ValidatePassword(""), ErrWeakPassword)
	assert.NoError(t, ValidatePassword("long enough"))
}
