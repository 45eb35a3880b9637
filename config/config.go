package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	DatabaseURL   string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	AIServiceURL  string
	AITimeout     time.Duration
	SendGridKey   string
	WelcomeFrom   string
}

func Load() Config {
	timeoutSec := 30
	if v := os.Getenv("AI_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeoutSec = n
		}
	}

	return Config{
		Port:          envOr("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: envOr("MONGO_DB", "nutriplan"),
		JWTSecret:     envOr("JWT_SECRET", "dev-secret-change-me"),
		AIServiceURL:  envOr("AI_SERVICE_URL", "http://localhost:5002"),
		AITimeout:     time.Duration(timeoutSec) * time.Second,
		SendGridKey:   os.Getenv("SENDGRID_API_KEY"),
		WelcomeFrom:   os.Getenv("WELCOME_FROM_EMAIL"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
