package server

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Lisbooa16/fut-analise/internal/config"
)

func TestValidateStruct_ValidConfig(t *testing.T) {
	cfg := &config.Config{
		Port:              "8080",
		DatabaseURL:       "postgres://localhost/test",
		JWTSecret:         "secret",
		AdminEmail:        "admin@example.com",
		AdminPasswordHash: "hash",
		RedisAddr:         "localhost:6379",
		MigrationsPath:    "migrations",
	}

	errs := ValidateStruct(cfg)
	assert.Empty(t, errs)
}

func TestValidateStruct_MissingAndMalformedFields(t *testing.T) {
	cfg := &config.Config{
		Port:       "8080",
		AdminEmail: "not-an-email",
	}

	errs := ValidateStruct(cfg)
	assert.NotEmpty(t, errs)

	fields := make(map[string]string)
	for _, e := range errs {
		fields[e.Field] = e.Message
	}

	assert.Contains(t, fields, "JWTSecret")
	assert.Equal(t, "JWTSecret is required", fields["JWTSecret"])
	assert.Equal(t, "AdminEmail must be a valid email address", fields["AdminEmail"])
}
