package session

import (
	"sync"
	"time"
)

// RevocationList remembers logged-out token IDs until their natural
// expiry, so a revoked bearer token cannot be replayed.
type RevocationList struct {
	mu sync.RWMutex
	m  map[string]time.Time
}

func NewRevocationList() *RevocationList {
	return &RevocationList{m: make(map[string]time.Time)}
}

// Revoke marks the token id as dead until exp. Entries are dropped
// lazily once their expiry passes.
func (l *RevocationList) Revoke(jti string, exp time.Time) {
	if jti == "" {
		return
	}
	l.mu.Lock()
	l.m[jti] = exp
	l.mu.Unlock()
}

func (l *RevocationList) IsRevoked(jti string) bool {
	now := time.Now()

	l.mu.RLock()
	exp, ok := l.m[jti]
	l.mu.RUnlock()
	if !ok {
		return false
	}

	if now.After(exp) {
		l.mu.Lock()
		delete(l.m, jti)
		l.mu.Unlock()
		return false
	}

	return true
}

func (l *RevocationList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.m)
}
