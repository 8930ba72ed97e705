// File: /config/config.go
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	FrontendURL string

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string

	// Rate limiting for the optimize endpoint
	OptimizeRatePerMinute int
	OptimizeRateBurst     int
}

func Load() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "2525"))
	ratePerMinute, _ := strconv.Atoi(getEnv("OPTIMIZE_RATE_PER_MINUTE", "30"))
	rateBurst, _ := strconv.Atoi(getEnv("OPTIMIZE_RATE_BURST", "10"))

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/safarplan?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),
		FrontendURL: getEnv("FRONTEND_URL", ""),

		// Email settings
		SMTPHost:     getEnv("SMTP_HOST", "sandbox.smtp.mailtrap.io"),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@safarplan.pk"),
		FromName:     getEnv("FROM_NAME", "SafarPlan"),

		OptimizeRatePerMinute: ratePerMinute,
		OptimizeRateBurst:     rateBurst,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
