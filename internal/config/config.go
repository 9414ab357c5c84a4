// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
)

// DefaultSecretKey is the built-in fallback used when WALLETVAULT_SECRET_KEY
// is unset. Storing credentials under it in production triggers a diagnostic
// warning on every write, but is never blocked.
const DefaultSecretKey = "default_secret_key"

// Persistence backend names accepted in WALLETVAULT_BACKEND.
const (
	BackendMemory  = "memory"
	BackendFile    = "file"
	BackendSQLite  = "sqlite"
	BackendKeyring = "keyring"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	SecretKey      string
	IsProduction   bool
	Backend        string
	DBPath         string
	StorePath      string
	KeyringService string
	Insecure       bool
}

// UsesDefaultSecretKey returns true when the secret key still equals the
// built-in fallback. The composition root combines this with IsProduction to
// arm the default-key warning.
func (c *Config) UsesDefaultSecretKey() bool {
	return c.SecretKey == DefaultSecretKey
}

// Load reads configuration from environment variables and returns a validated Config.
// WALLETVAULT_SECRET_KEY falls back to a built-in literal when unset.
// WALLETVAULT_ENV flags production (value "production"); any other value is
// non-production. Optional variables with defaults: WALLETVAULT_BACKEND (file),
// WALLETVAULT_DB_PATH (walletvault.db), WALLETVAULT_STORE_PATH (XDG data dir,
// resolved by the composition root when empty), WALLETVAULT_KEYRING_SERVICE
// (adapter default when empty). WALLETVAULT_INSECURE=1 selects the passthrough
// cipher and is refused in production.
func Load() (*Config, error) {
	secretKey := os.Getenv("WALLETVAULT_SECRET_KEY")
	if secretKey == "" {
		secretKey = DefaultSecretKey
	}

	isProduction := os.Getenv("WALLETVAULT_ENV") == "production"

	backend := BackendFile
	if v, ok := os.LookupEnv("WALLETVAULT_BACKEND"); ok && v != "" {
		backend = v
	}
	switch backend {
	case BackendMemory, BackendFile, BackendSQLite, BackendKeyring:
	default:
		return nil, fmt.Errorf("WALLETVAULT_BACKEND has unknown value %q (want memory, file, sqlite, or keyring)", backend)
	}

	dbPath := "walletvault.db"
	if v, ok := os.LookupEnv("WALLETVAULT_DB_PATH"); ok && v != "" {
		dbPath = v
	}

	insecure := os.Getenv("WALLETVAULT_INSECURE") == "1"
	if insecure && isProduction {
		return nil, fmt.Errorf("WALLETVAULT_INSECURE is not allowed when WALLETVAULT_ENV is production")
	}

	return &Config{
		SecretKey:      secretKey,
		IsProduction:   isProduction,
		Backend:        backend,
		DBPath:         dbPath,
		StorePath:      os.Getenv("WALLETVAULT_STORE_PATH"),
		KeyringService: os.Getenv("WALLETVAULT_KEYRING_SERVICE"),
		Insecure:       insecure,
	}, nil
}
