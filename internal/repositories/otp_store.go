package repositories

import "context"

// OTPStore keeps at most one active one-time code per email.
type OTPStore interface {
	// Save replaces any code already held for email and restarts its lifetime.
	Save(ctx context.Context, email, code string) error
	// Get returns the unexpired code for email, if any.
	Get(ctx context.Context, email string) (string, bool, error)
}
