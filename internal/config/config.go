package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// DefaultJWTSecret is only acceptable outside production.
const DefaultJWTSecret = "change-me-in-production"

type Config struct {
	MongoURI       string
	RedisURI       string // empty disables Redis-backed rate limiting and caching
	JWTSecret      string
	TokenTTL       time.Duration
	BcryptCost     int
	Port           string
	AllowedOrigins []string // CORS: from ALLOWED_ORIGINS or FRONTEND_URL
	Environment    string   // ENV: production, development, etc.

	// ProfileRequiredFields names the profile fields that must be non-empty on upsert.
	ProfileRequiredFields []string
	ProfileCacheTTL       time.Duration
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))

	allowedOrigins := parseList(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{strings.TrimSpace(getEnv("FRONTEND_URL", "http://localhost:3000"))}
	}

	return &Config{
		MongoURI:              getEnv("MONGODB_URI", getEnv("MONGO_URI", "mongodb://localhost:27017/devconnector")),
		RedisURI:              os.Getenv("REDIS_URI"),
		JWTSecret:             getEnv("JWT_SECRET", DefaultJWTSecret),
		TokenTTL:              getEnvDuration("TOKEN_TTL", 360000*time.Second),
		BcryptCost:            getEnvInt("BCRYPT_COST", 10),
		Port:                  getEnv("PORT", "5000"),
		AllowedOrigins:        allowedOrigins,
		Environment:           env,
		ProfileRequiredFields: parseList(getEnv("PROFILE_REQUIRED_FIELDS", "status,skills")),
		ProfileCacheTTL:       getEnvDuration("PROFILE_CACHE_TTL", time.Minute),
	}
}

// Validate reports settings that would make the services misbehave at runtime.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	for _, f := range c.ProfileRequiredFields {
		if f == "" {
			return fmt.Errorf("PROFILE_REQUIRED_FIELDS contains an empty field name")
		}
	}
	return nil
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return strings.ToLower(strings.TrimSpace(c.Environment)) == "production"
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
