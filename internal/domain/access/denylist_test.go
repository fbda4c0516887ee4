package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDenylistRevoke(t *testing.T) {
	d := NewDenylist()

	assert.False(t, d.Revoked("jti-1"))

	d.Revoke("jti-1", time.Now().Add(time.Hour))
	assert.True(t, d.Revoked("jti-1"))
	assert.False(t, d.Revoked("jti-2"))
}

func TestDenylistExpiry(t *testing.T) {
	d := NewDenylist()

	d.Revoke("jti-old", time.Now().Add(-time.Second))
	assert.False(t, d.Revoked("jti-old"))

	// Expired entries get pruned on the next write.
	d.Revoke("jti-new", time.Now().Add(time.Hour))
	d.mu.Lock()
	_, stillThere := d.revoked["jti-old"]
	d.mu.Unlock()
	assert.False(t, stillThere)
}

func TestDenylistEmptyID(t *testing.T) {
	d := NewDenylist()
	d.Revoke("", time.Now().Add(time.Hour))
	assert.False(t, d.Revoked(""))
}
