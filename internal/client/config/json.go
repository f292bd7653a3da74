package config

import (
	"encoding/json"
	"os"

	"github.com/mertsakar/wantmart/internal/flagx"
)

// jsonConfig is the DTO for the optional JSON config file. Only fields
// present in the file override the current values.
type jsonConfig struct {
	AuthAPIURL    string `json:"auth_api_url"`
	ProductAPIURL string `json:"product_api_url"`
	OfferAPIURL   string `json:"offer_api_url"`
	DatabasePath  string `json:"database_path"`
	LogLevel      string `json:"log_level"`
}

// parseJSON overlays cfg with values from the file named by -c/-config.
// No flag, no file, nothing happens. A file that cannot be read or parsed
// panics: a config file that is present but broken should not be ignored.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.AuthAPIURL != "" {
		cfg.AuthAPIURL = jc.AuthAPIURL
	}
	if jc.ProductAPIURL != "" {
		cfg.ProductAPIURL = jc.ProductAPIURL
	}
	if jc.OfferAPIURL != "" {
		cfg.OfferAPIURL = jc.OfferAPIURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
