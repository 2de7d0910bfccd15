package handlers

import (
	"errors"
	"log"

	"kbbq/internal/middleware"
	"kbbq/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes. authRequired guards
// the profile route only.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Post("/logout", h.HandleLogout)
	authRoutes.Post("/signup", h.HandleSignup)
	authRoutes.Get("/profile", authRequired, h.HandleProfile)
	authRoutes.Post("/forgot-password", h.HandleForgotPassword)
	authRoutes.Post("/verify-otp", h.HandleVerifyOTP)
	authRoutes.Post("/reset-password", h.HandleResetPassword)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and issues a bearer token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if ok, err := bind(c, h.validate, &req); !ok {
		return err
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			log.Printf("Error during login for user %s: %v", req.Username, err)
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid credentials",
		})
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// HandleLogout acknowledges a logout. Tokens are stateless, so there is
// nothing to revoke.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// SignupRequest represents the request body for signup.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleSignup validates a signup. Accounts are provisioned through
// configuration, so nothing is stored.
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req SignupRequest
	if ok, err := bind(c, h.validate, &req); !ok {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Signup successful",
	})
}

// HandleProfile echoes the identity in the bearer token.
func (h *AuthHandler) HandleProfile(c *fiber.Ctx) error {
	claims := middleware.ClaimsFrom(c)
	return c.JSON(fiber.Map{
		"username": claims.Subject,
		"role":     claims.Role,
	})
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// HandleForgotPassword issues a reset code and mails it.
func (h *AuthHandler) HandleForgotPassword(c *fiber.Ctx) error {
	var req ForgotPasswordRequest
	if ok, err := bind(c, h.validate, &req); !ok {
		return err
	}

	result, err := h.authService.ForgotPassword(c.UserContext(), req.Email)
	if err != nil {
		log.Printf("Error issuing otp for %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not issue verification code",
			"error":   err.Error(),
		})
	}
	return c.JSON(result)
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

func (h *AuthHandler) HandleVerifyOTP(c *fiber.Ctx) error {
	var req VerifyOTPRequest
	if ok, err := bind(c, h.validate, &req); !ok {
		return err
	}

	if err := h.authService.VerifyOTP(c.UserContext(), req.Email, req.Code); err != nil {
		return h.otpFailed(c, err)
	}
	return c.JSON(fiber.Map{
		"verified": true,
	})
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

func (h *AuthHandler) HandleResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if ok, err := bind(c, h.validate, &req); !ok {
		return err
	}

	if err := h.authService.ResetPassword(c.UserContext(), req.Email, req.Code, req.NewPassword); err != nil {
		return h.otpFailed(c, err)
	}
	return c.JSON(fiber.Map{
		"reset": true,
	})
}

func (h *AuthHandler) otpFailed(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrInvalidOTP) {
		return badRequest(c, "Invalid OTP")
	}
	log.Printf("Error checking otp: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Could not verify code",
		"error":   err.Error(),
	})
}
