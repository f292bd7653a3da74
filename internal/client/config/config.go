// Package config loads the client's runtime settings. Sources are
// layered, later ones overriding earlier ones:
//
//	defaults → JSON file (-c/-config) → environment (.env aware) → flags
package config

// Config holds runtime settings for the wantmart client.
//
// The three API base URLs point at the auth, product, and offer backends;
// they are independent services with independent endpoints. DatabasePath
// is the local sqlite file holding session state.
type Config struct {
	AuthAPIURL    string
	ProductAPIURL string
	OfferAPIURL   string
	DatabasePath  string
	LogLevel      string
}

// LoadDefaults populates c with the development defaults.
func (c *Config) LoadDefaults() {
	c.AuthAPIURL = "http://localhost:8001/api"
	c.ProductAPIURL = "http://localhost:8082"
	c.OfferAPIURL = "http://localhost:8083"
	c.DatabasePath = "wantmart.db"
	c.LogLevel = "info"
}

// LoadConfig builds the effective configuration from all sources.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
