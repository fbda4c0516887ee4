package access

import (
	"sync"
	"time"
)

// Denylist holds revoked token ids until their natural expiry. Tokens are
// stateless, so explicit logout only needs the jti remembered for at most
// TokenLifetime; after that the token is dead on its own.
type Denylist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewDenylist() *Denylist {
	return &Denylist{revoked: make(map[string]time.Time)}
}

// Revoke marks a token id as unusable until the given expiry.
func (d *Denylist) Revoke(jti string, expiresAt time.Time) {
	if jti == "" {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.prune(time.Now())
	d.revoked[jti] = expiresAt
}

// Revoked reports whether the token id is currently denylisted.
func (d *Denylist) Revoked(jti string) bool {
	if jti == "" {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	now := time.Now()
	d.prune(now)
	until, ok := d.revoked[jti]
	return ok && now.Before(until)
}

func (d *Denylist) prune(now time.Time) {
	for jti, until := range d.revoked {
		if !now.Before(until) {
			delete(d.revoked, jti)
		}
	}
}
