package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"MONGODB_URI", "MONGO_URI", "REDIS_URI", "JWT_SECRET", "TOKEN_TTL", "BCRYPT_COST",
		"PORT", "ENV", "ALLOWED_ORIGINS", "FRONTEND_URL", "PROFILE_REQUIRED_FIELDS", "PROFILE_CACHE_TTL"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "mongodb://localhost:27017/devconnector", cfg.MongoURI)
	assert.Empty(t, cfg.RedisURI)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, 100*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, []string{"status", "skills"}, cfg.ProfileRequiredFields)
	assert.False(t, cfg.IsProduction())
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017/social")
	t.Setenv("TOKEN_TTL", "6m")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("ENV", " Production ")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("PROFILE_REQUIRED_FIELDS", "bio")

	cfg := Load()

	assert.Equal(t, "mongodb://db:27017/social", cfg.MongoURI)
	assert.Equal(t, 6*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, []string{"bio"}, cfg.ProfileRequiredFields)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "soon")
	t.Setenv("BCRYPT_COST", "ten")

	cfg := Load()

	assert.Equal(t, 100*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{JWTSecret: "s", TokenTTL: time.Minute, BcryptCost: 10, ProfileRequiredFields: []string{"status"}}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty secret", func(c *Config) { c.JWTSecret = "" }},
		{"zero ttl", func(c *Config) { c.TokenTTL = 0 }},
		{"cost too low", func(c *Config) { c.BcryptCost = 1 }},
		{"cost too high", func(c *Config) { c.BcryptCost = 99 }},
		{"empty field name", func(c *Config) { c.ProfileRequiredFields = []string{""} }},
	}

	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
