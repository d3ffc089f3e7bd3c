package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_EncodedForm(t *testing.T) {
	encoded, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))
	assert.Len(t, strings.Split(encoded, "$"), 6)
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	a, err := HashPassword("same-password")
	require.NoError(t, err)
	b, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestCheckPasswordHash(t *testing.T) {
	encoded, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.NoError(t, CheckPasswordHash(encoded, "correct horse battery staple"))
	assert.ErrorIs(t, CheckPasswordHash(encoded, "wrong password"), ErrPasswordMismatch)
}

func TestCheckPasswordHash_Malformed(t *testing.T) {
	assert.Error(t, CheckPasswordHash("", "anything"))
	assert.Error(t, CheckPasswordHash("$bcrypt$not$argon", "anything"))
	assert.Error(t, CheckPasswordHash("$argon2id$v=19$m=65536,t=3,p=2$!!!$AAAA", "anything"))
}
