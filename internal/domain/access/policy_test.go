package access

import (
	"testing"

	"gallery-app/internal/domain/users"

	"github.com/stretchr/testify/assert"
)

func TestOwnerOrAdmin(t *testing.T) {
	// Owner may touch their own resource.
	assert.True(t, OwnerOrAdmin(5, 5, users.RoleArtist))
	assert.True(t, OwnerOrAdmin(5, 5, users.RoleVisitor))

	// Any admin may touch anything.
	assert.True(t, OwnerOrAdmin(5, 99, users.RoleAdmin))

	// Everyone else is denied.
	assert.False(t, OwnerOrAdmin(5, 6, users.RoleArtist))
	assert.False(t, OwnerOrAdmin(5, 6, users.RoleVisitor))
	assert.False(t, OwnerOrAdmin(5, 0, ""))
}

func TestCanCreateArtwork(t *testing.T) {
	assert.True(t, CanCreateArtwork(users.RoleArtist))
	assert.True(t, CanCreateArtwork(users.RoleAdmin))
	assert.False(t, CanCreateArtwork(users.RoleVisitor))
	assert.False(t, CanCreateArtwork(""))
}
