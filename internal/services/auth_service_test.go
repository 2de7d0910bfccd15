package services_test

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"kbbq/internal/models"
	"kbbq/internal/repositories"
	"kbbq/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func newAuthService(repo *MockUserRepository, store *MockOTPStore, mailer *MockMailer) (*services.AuthService, *services.TokenService) {
	tokens := services.NewTokenService(testJWTSecret, 2*time.Hour)
	otp := services.NewOTPService(store, mailer)
	return services.NewAuthService(repo, tokens, otp), tokens
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_SeedAccount(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService, _ := newAuthService(mockRepo, nil, nil)

	// New account: password is stored hashed
	mockRepo.On("GetByUsername", "admin").Return(nil, fmt.Errorf("user with username admin: %w", repositories.ErrNotFound)).Once()
	mockRepo.On("Create", mock.MatchedBy(func(u *models.User) bool {
		return u.Username == "admin" && u.Role == models.RoleAdmin &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret")) == nil
	})).Return(nil).Once()

	err := authService.SeedAccount("admin", "s3cret", "admin@example.com", models.RoleAdmin)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Existing account is left alone
	mockRepo.On("GetByUsername", "admin").Return(&models.User{ID: "1", Username: "admin"}, nil).Once()
	err = authService.SeedAccount("admin", "other", "", models.RoleAdmin)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Unknown role
	err = authService.SeedAccount("root", "x", "", "root")
	assert.ErrorIs(t, err, services.ErrInvalidRole)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService, tokens := newAuthService(mockRepo, nil, nil)

	admin := &models.User{ID: "1", Username: "admin", Password: hashed(t, "1234"), Role: models.RoleAdmin}
	gary := &models.User{ID: "2", Username: "gary", Password: hashed(t, "1234"), Role: models.RoleUser}

	tests := []struct {
		user *models.User
		role string
	}{
		{admin, models.RoleAdmin},
		{gary, models.RoleUser},
	}
	for _, tt := range tests {
		mockRepo.On("GetByUsername", tt.user.Username).Return(tt.user, nil).Once()
		token, err := authService.Login(tt.user.Username, "1234")
		require.NoError(t, err)

		claims, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, tt.user.Username, claims.Subject)
		assert.Equal(t, tt.role, claims.Role)
	}

	// Wrong password
	mockRepo.On("GetByUsername", "gary").Return(gary, nil).Once()
	_, err := authService.Login("gary", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Unknown user gets the same error
	mockRepo.On("GetByUsername", "nonexistentuser").Return(nil, fmt.Errorf("user with username nonexistentuser: %w", repositories.ErrNotFound)).Once()
	_, err = authService.Login("nonexistentuser", "1234")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	mockRepo.AssertExpectations(t)
}

func TestAuthService_ForgotPassword(t *testing.T) {
	ctx := context.Background()
	email := "gary@example.com"

	t.Run("mail sent", func(t *testing.T) {
		store := new(MockOTPStore)
		mailer := new(MockMailer)
		authService, _ := newAuthService(new(MockUserRepository), store, mailer)

		var saved string
		store.On("Save", ctx, email, mock.AnythingOfType("string")).Run(func(args mock.Arguments) {
			saved = args.String(2)
		}).Return(nil).Once()
		mailer.On("Send", email, "Your OTP Code", mock.MatchedBy(func(body string) bool {
			return body == "Your verification code is: "+saved
		})).Return(nil).Once()

		result, err := authService.ForgotPassword(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, services.ForgotPasswordResult{Sent: true}, result)
		assert.Regexp(t, `^[0-9]{6}$`, saved)
		store.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("mail failure falls back to returning the code", func(t *testing.T) {
		store := new(MockOTPStore)
		mailer := new(MockMailer)
		authService, _ := newAuthService(new(MockUserRepository), store, mailer)

		var saved string
		store.On("Save", ctx, email, mock.AnythingOfType("string")).Run(func(args mock.Arguments) {
			saved = args.String(2)
		}).Return(nil).Once()
		mailer.On("Send", email, mock.Anything, mock.Anything).Return(fmt.Errorf("connection refused")).Once()

		result, err := authService.ForgotPassword(ctx, email)
		require.NoError(t, err)
		assert.False(t, result.Sent)
		assert.Equal(t, saved, result.OTP)
	})

	t.Run("store failure", func(t *testing.T) {
		store := new(MockOTPStore)
		authService, _ := newAuthService(new(MockUserRepository), store, new(MockMailer))
		store.On("Save", ctx, email, mock.Anything).Return(fmt.Errorf("redis down")).Once()

		_, err := authService.ForgotPassword(ctx, email)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "redis down")
	})
}

func TestAuthService_VerifyAndReset(t *testing.T) {
	ctx := context.Background()
	store := new(MockOTPStore)
	authService, _ := newAuthService(new(MockUserRepository), store, nil)

	store.On("Get", ctx, "gary@example.com").Return("123456", true, nil)
	store.On("Get", ctx, "nobody@example.com").Return("", false, nil)

	assert.NoError(t, authService.VerifyOTP(ctx, "gary@example.com", "123456"))
	assert.ErrorIs(t, authService.VerifyOTP(ctx, "gary@example.com", "654321"), services.ErrInvalidOTP)
	assert.ErrorIs(t, authService.VerifyOTP(ctx, "nobody@example.com", "123456"), services.ErrInvalidOTP)

	// The code is not consumed by a successful reset.
	assert.NoError(t, authService.ResetPassword(ctx, "gary@example.com", "123456", "newpass"))
	assert.NoError(t, authService.ResetPassword(ctx, "gary@example.com", "123456", "newpass2"))
	assert.ErrorIs(t, authService.ResetPassword(ctx, "gary@example.com", "000000", "newpass"), services.ErrInvalidOTP)
}
