// Package mockapi is a self-contained implementation of the marketplace
// HTTP contract (auth, products, offers) used for local development and
// integration tests. It serves all three logical backends from one
// process: auth under /api/auth, products and offers at the root.
package mockapi

import "os"

type Config struct {
	Addr         string
	DatabasePath string
	JWTSecret    []byte
	LogLevel     string
}

func LoadConfig() Config {
	return Config{
		Addr:         envDefault("MOCKAPI_ADDR", ":8001"),
		DatabasePath: envDefault("MOCKAPI_DB_PATH", "mockapi.db"),
		JWTSecret:    []byte(envDefault("MOCKAPI_JWT_SECRET", "dev-secret")),
		LogLevel:     envDefault("MOCKAPI_LOG_LEVEL", "info"),
	}
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
