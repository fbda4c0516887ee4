package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, CheckPassword(hash, "hunter22"))
	assert.False(t, CheckPassword(hash, "hunter23"))
	assert.False(t, CheckPassword(hash, ""))

	// The stored hash itself must not verify as a password.
	assert.False(t, CheckPassword(hash, hash))
}

func TestHashPasswordRejectsShort(t *testing.T) {
	_, err := HashPassword("12345", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = HashPassword("", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = HashPassword("123456", bcrypt.MinCost)
	assert.NoError(t, err)
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("hunter22", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("hunter22", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleVisitor))
	assert.True(t, ValidRole(RoleArtist))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("superuser"))
	assert.False(t, ValidRole(""))
}
