package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port string
	Env  string

	// Razorpay gateway credentials. Optional at startup: order creation
	// and verification fail at call time when these are unset.
	RazorpayKeyID     string
	RazorpayKeySecret string

	// Graphy learning-platform credentials, same lazy-failure policy.
	GraphyMID    string
	GraphyAPIKey string

	ComponentsDir string
	ResourcesDir  string

	FrontendURL string

	EnrollmentQueueSize int
	EnrollmentWorkers   int
}

func Load() Config {
	return Config{
		Port:                getEnv("PORT", "5500"),
		Env:                 getEnv("APP_ENV", "development"),
		RazorpayKeyID:       os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret:   os.Getenv("RAZORPAY_KEY_SECRET"),
		GraphyMID:           os.Getenv("GRAPHY_MID"),
		GraphyAPIKey:        os.Getenv("GRAPHY_API_KEY"),
		ComponentsDir:       getEnv("COMPONENTS_DIR", "./components"),
		ResourcesDir:        getEnv("RESOURCES_DIR", "./Resources"),
		FrontendURL:         getEnv("FRONTEND_URL", "http://localhost:3000"),
		EnrollmentQueueSize: getEnvInt("ENROLLMENT_QUEUE_SIZE", 64),
		EnrollmentWorkers:   getEnvInt("ENROLLMENT_WORKERS", 1),
	}
}

// PaymentsConfigured reports whether the Razorpay credentials are present.
func (c Config) PaymentsConfigured() bool {
	return c.RazorpayKeyID != "" && c.RazorpayKeySecret != ""
}

// EnrollmentConfigured reports whether the Graphy credentials are present.
func (c Config) EnrollmentConfigured() bool {
	return c.GraphyMID != "" && c.GraphyAPIKey != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
