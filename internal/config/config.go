package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Credential is an account seeded into the user store at startup.
type Credential struct {
	Username string
	Password string
	Email    string
	Role     string
}

// SMTPConfig holds the outgoing mail server settings used for OTP delivery.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Timeout  time.Duration
}

// Config holds all runtime settings of the API.
type Config struct {
	AppPort     string
	JWTSecret   string
	TokenTTL    time.Duration
	OTPTTL      time.Duration
	DatabaseDSN string
	RedisAddr   string
	RabbitMQURL string
	SMTP        SMTPConfig
	Credentials []Credential
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", "2h")
	v.SetDefault("OTP_TTL", "10m")
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", "587")
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PASS", "")
	v.SetDefault("SMTP_TIMEOUT", "10s")
	for _, prefix := range []string{"ADMIN", "USER"} {
		v.SetDefault(prefix+"_USERNAME", "")
		v.SetDefault(prefix+"_PASSWORD", "")
		v.SetDefault(prefix+"_EMAIL", "")
	}
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		AppPort:     v.GetString("APP_PORT"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		DatabaseDSN: v.GetString("DATABASE_DSN"),
		RedisAddr:   v.GetString("REDIS_ADDR"),
		RabbitMQURL: v.GetString("RABBITMQ_URL"),
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			User:     v.GetString("SMTP_USER"),
			Password: v.GetString("SMTP_PASS"),
		},
	}

	var err error
	if cfg.TokenTTL, err = parseDuration(v, "TOKEN_TTL"); err != nil {
		return Config{}, err
	}
	if cfg.OTPTTL, err = parseDuration(v, "OTP_TTL"); err != nil {
		return Config{}, err
	}
	if cfg.SMTP.Timeout, err = parseDuration(v, "SMTP_TIMEOUT"); err != nil {
		return Config{}, err
	}

	port, err := parsePort(v, "SMTP_PORT")
	if err != nil {
		return Config{}, err
	}
	cfg.SMTP.Port = port

	if cfg.JWTSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return Config{}, fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		log.Println("[config] JWT_SECRET not set, using a random secret; tokens will not survive a restart")
		cfg.JWTSecret = secret
	}

	accounts := []struct{ prefix, role string }{
		{"ADMIN", "admin"},
		{"USER", "user"},
	}
	for _, a := range accounts {
		username := v.GetString(a.prefix + "_USERNAME")
		password := v.GetString(a.prefix + "_PASSWORD")
		if username == "" || password == "" {
			log.Printf("[config] %s_USERNAME/%s_PASSWORD not set, %s account disabled", a.prefix, a.prefix, a.role)
			continue
		}
		cfg.Credentials = append(cfg.Credentials, Credential{
			Username: username,
			Password: password,
			Email:    v.GetString(a.prefix + "_EMAIL"),
			Role:     a.role,
		})
	}

	log.Printf("[config] APP_PORT=%s", cfg.AppPort)
	log.Printf("[config] TOKEN_TTL=%s OTP_TTL=%s", cfg.TokenTTL, cfg.OTPTTL)
	return cfg, nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}

func parsePort(v *viper.Viper, key string) (int, error) {
	port, err := strconv.Atoi(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if port <= 0 || port > 65535 {
		return 0, fmt.Errorf("invalid %s: out of range", key)
	}
	return port, nil
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
