package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"kbbq/internal/models"
	"kbbq/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOTP         = errors.New("invalid otp")
	ErrInvalidRole        = errors.New("invalid role")
)

const (
	otpSubject  = "Your OTP Code"
	otpBodyTmpl = "Your verification code is: %s"
)

// ForgotPasswordResult tells the caller whether the code went out by mail.
// When it did not, the code itself is returned so local setups without SMTP
// can still finish the flow.
type ForgotPasswordResult struct {
	Sent bool   `json:"sent"`
	OTP  string `json:"otp,omitempty"`
}

// AuthService handles business logic for authentication and password resets.
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *TokenService
	otp      *OTPService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokens *TokenService, otp *OTPService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		otp:      otp,
	}
}

// SeedAccount stores a configured account with a bcrypt hash of its password.
// Accounts whose username already exists are left as they are.
func (s *AuthService) SeedAccount(username, password, email, role string) error {
	if !models.ValidRole(role) {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	if _, err := s.userRepo.GetByUsername(username); err == nil {
		log.Printf("[auth] account %s already present, not reseeding", username)
		return nil
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
		Role:     role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to seed account %s: %w", username, err)
	}
	log.Printf("[auth] seeded %s account %s", role, username)
	return nil
}

// Login checks the credentials and returns a signed token carrying the
// account's role.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.Role)
	if err != nil {
		return "", err
	}
	return token, nil
}

// ForgotPassword issues a reset code for email and tries to mail it.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (ForgotPasswordResult, error) {
	code, err := s.otp.Issue(ctx, email)
	if err != nil {
		return ForgotPasswordResult{}, err
	}
	if err := s.otp.Send(email, otpSubject, fmt.Sprintf(otpBodyTmpl, code)); err != nil {
		log.Printf("[auth] otp delivery failed, returning code in response: %v", err)
		return ForgotPasswordResult{Sent: false, OTP: code}, nil
	}
	return ForgotPasswordResult{Sent: true}, nil
}

// VerifyOTP returns ErrInvalidOTP unless code is the active code for email.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) error {
	ok, err := s.otp.Verify(ctx, email, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidOTP
	}
	return nil
}

// ResetPassword re-checks the code before accepting a new password. The new
// password is not stored and the code is not consumed.
func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if err := s.VerifyOTP(ctx, email, code); err != nil {
		return err
	}
	log.Printf("[auth] password reset accepted for %s", email)
	return nil
}
