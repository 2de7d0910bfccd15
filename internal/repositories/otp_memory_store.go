package repositories

import (
	"context"
	"sync"
	"time"
)

type otpEntry struct {
	code      string
	expiresAt time.Time
}

// MemoryOTPStore is an in-process OTPStore whose codes expire after a fixed TTL.
type MemoryOTPStore struct {
	codes map[string]otpEntry
	ttl   time.Duration
	mu    sync.RWMutex
}

// NewMemoryOTPStore creates a MemoryOTPStore with the given code lifetime.
func NewMemoryOTPStore(ttl time.Duration) *MemoryOTPStore {
	return &MemoryOTPStore{
		codes: make(map[string]otpEntry),
		ttl:   ttl,
	}
}

// Save stores code for email, dropping expired codes of other emails on the way.
func (s *MemoryOTPStore) Save(_ context.Context, email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for k, e := range s.codes {
		if !now.Before(e.expiresAt) {
			delete(s.codes, k)
		}
	}
	s.codes[email] = otpEntry{code: code, expiresAt: now.Add(s.ttl)}
	return nil
}

// Get returns the code held for email unless it has expired.
func (s *MemoryOTPStore) Get(_ context.Context, email string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.codes[email]
	if !ok || !time.Now().Before(e.expiresAt) {
		return "", false, nil
	}
	return e.code, true, nil
}
