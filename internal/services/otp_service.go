package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"

	"kbbq/internal/repositories"
)

const otpLength = 6

// Mailer delivers plain-text mail.
type Mailer interface {
	Send(to, subject, body string) error
}

// OTPService generates, stores, checks and delivers one-time codes.
type OTPService struct {
	store  repositories.OTPStore
	mailer Mailer
}

// NewOTPService creates a new OTPService.
func NewOTPService(store repositories.OTPStore, mailer Mailer) *OTPService {
	return &OTPService{
		store:  store,
		mailer: mailer,
	}
}

// Generate returns a fresh 6-digit numeric code.
func (s *OTPService) Generate() (string, error) {
	digits := make([]byte, otpLength)
	ten := big.NewInt(10)
	for i := range digits {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("failed to generate otp: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

// Issue generates a code for email and stores it, replacing any earlier one.
func (s *OTPService) Issue(ctx context.Context, email string) (string, error) {
	code, err := s.Generate()
	if err != nil {
		return "", err
	}
	if err := s.store.Save(ctx, email, code); err != nil {
		return "", fmt.Errorf("failed to store otp for %s: %w", email, err)
	}
	return code, nil
}

// Verify reports whether code equals the active code for email. The code
// stays valid after a successful check.
func (s *OTPService) Verify(ctx context.Context, email, code string) (bool, error) {
	stored, ok, err := s.store.Get(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to read otp for %s: %w", email, err)
	}
	if !ok {
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(code)) == 1, nil
}

// Send mails body to email.
func (s *OTPService) Send(email, subject, body string) error {
	if s.mailer == nil {
		return fmt.Errorf("no mailer configured")
	}
	if err := s.mailer.Send(email, subject, body); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", email, err)
	}
	return nil
}
