package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"APP_ENV", "PORT", "DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT",
		"DB_NAME", "JWT_SECRET", "TOKEN_TTL_MIN", "BCRYPT_COST",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "5000", cfg.Port)
	require.Equal(t, "login_app_db", cfg.DBName)
	require.Equal(t, InsecureFallbackSecret, cfg.JWTSecret)
	require.Equal(t, 60, cfg.TokenTTLMin)
	require.Equal(t, 10, cfg.BcryptCost)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("TOKEN_TTL_MIN", "15")

	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "prod-secret", cfg.JWTSecret)
	require.Equal(t, 15, cfg.TokenTTLMin)
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("TOKEN_TTL_MIN", "soon")

	cfg := Load()
	require.Equal(t, 60, cfg.TokenTTLMin)
}
