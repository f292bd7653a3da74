package config

import "os"

// parseEnv overlays cfg with values from the environment. The main entry
// point loads .env beforehand, so both real env vars and a local .env
// file land here.
func parseEnv(cfg *Config) {
	cfg.AuthAPIURL = envDefault("WANTMART_AUTH_URL", cfg.AuthAPIURL)
	cfg.ProductAPIURL = envDefault("WANTMART_PRODUCT_URL", cfg.ProductAPIURL)
	cfg.OfferAPIURL = envDefault("WANTMART_OFFER_URL", cfg.OfferAPIURL)
	cfg.DatabasePath = envDefault("WANTMART_DB_PATH", cfg.DatabasePath)
	cfg.LogLevel = envDefault("WANTMART_LOG_LEVEL", cfg.LogLevel)
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
