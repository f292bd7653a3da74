package config

import (
	"flag"
	"os"

	"github.com/mertsakar/wantmart/internal/flagx"
)

// parseFlags overlays cfg with command-line flags. Only the flags owned
// here are parsed; everything else in os.Args is filtered out first so
// other components' flags do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-auth", "-product", "-offer", "-db", "-log"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&cfg.AuthAPIURL, "auth", cfg.AuthAPIURL, "auth API base URL")
	fs.StringVar(&cfg.ProductAPIURL, "product", cfg.ProductAPIURL, "product API base URL")
	fs.StringVar(&cfg.OfferAPIURL, "offer", cfg.OfferAPIURL, "offer API base URL")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "path to the local session database")
	fs.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
