package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	JWTSecret    string
	RateLimit    string // ulule/limiter formatted rate, e.g. "100-M"

	// StrictTaxIDKey controls what happens when the tax id registered at account
	// creation collides with an existing PIX key: false swallows the conflict
	// with a warning (legacy behavior), true rejects the account creation.
	StrictTaxIDKey bool

	// AllowOwnerScanFallback enables the degraded full-scan path for
	// account-by-owner lookups when the indexed query fails. Off by default;
	// the scan is O(n) in account count.
	AllowOwnerScanFallback bool

	// StatementLimit caps the number of ledger entries a statement returns.
	StatementLimit int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("STRICT_TAX_ID_KEY", false)
	viper.SetDefault("ALLOW_OWNER_SCAN_FALLBACK", false)
	viper.SetDefault("STATEMENT_LIMIT", 30)

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:            viper.GetString("PGSQL_URL"),
		Port:                   viper.GetString("PORT"),
		IsProduction:           viper.GetBool("IS_PRODUCTION"),
		JWTSecret:              viper.GetString("JWT_SECRET"),
		RateLimit:              viper.GetString("RATE_LIMIT"),
		StrictTaxIDKey:         viper.GetBool("STRICT_TAX_ID_KEY"),
		AllowOwnerScanFallback: viper.GetBool("ALLOW_OWNER_SCAN_FALLBACK"),
		StatementLimit:         viper.GetInt("STATEMENT_LIMIT"),
	}

	return cfg, nil
}
