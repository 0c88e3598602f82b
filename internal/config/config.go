package config // package config loads application configuration from environment variables

import (
    "log" // log reports when insecure development defaults are in effect
    "os"  // os provides access to environment variables
    "strconv"
)

// InsecureFallbackSecret is the development-only JWT signing secret
// used when JWT_SECRET is not set.  It is public by definition and
// must never be relied on outside local development.
const InsecureFallbackSecret = "fallback_secret"

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Every value has a local-development default so
// the service starts on a bare machine; production deployments are expected
// to supply all of them explicitly.
type Config struct {
    Env         string // application environment (e.g. "dev", "prod")
    Port        string // HTTP port to listen on
    DBUser      string // database username
    DBPass      string // database password (optional)
    DBHost      string // database host address
    DBPort      string // database port number
    DBName      string // database name
    JWTSecret   string // secret used to sign session tokens
    TokenTTLMin int    // session token time-to-live in minutes
    BcryptCost  int    // bcrypt cost for password hashing
}

// Load reads configuration values from environment variables, falling
// back to local-development defaults.  Using the fallback JWT secret is
// loudly reported because tokens signed with it are forgeable.
func Load() Config {
    cfg := Config{
        Env:         getenv("APP_ENV", "dev"),
        Port:        getenv("PORT", "5000"),
        DBUser:      getenv("DB_USER", "root"),
        DBPass:      os.Getenv("DB_PASSWORD"), // empty allowed
        DBHost:      getenv("DB_HOST", "localhost"),
        DBPort:      getenv("DB_PORT", "3306"),
        DBName:      getenv("DB_NAME", "login_app_db"),
        JWTSecret:   getenv("JWT_SECRET", InsecureFallbackSecret),
        TokenTTLMin: getenvInt("TOKEN_TTL_MIN", 60),
        BcryptCost:  getenvInt("BCRYPT_COST", 10),
    }
    if cfg.JWTSecret == InsecureFallbackSecret {
        log.Printf("WARNING: JWT_SECRET not set, using insecure fallback secret; do not run this in production")
    }
    return cfg
}

// getenv returns the value of an environment variable or a default
// when the variable is unset or empty.
func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

// getenvInt is like getenv but converts the value to an integer,
// keeping the default on conversion failure.
func getenvInt(key string, def int) int {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    n, err := strconv.Atoi(v)
    if err != nil {
        log.Printf("invalid int for %s: %q, using default %d", key, v, def)
        return def
    }
    return n
}
